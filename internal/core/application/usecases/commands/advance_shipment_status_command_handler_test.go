package commands_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdvanceShipmentStatusCommandHandler_Handle_Dispatched(t *testing.T) {
	ctx := t.Context()
	c := newCustomer(t)
	v := newVehicle(t, vehicle.Idle)
	d := newDriver(t, true)
	s := newShipment(t, c.ID(), shipmentOpts{status: shipment.Confirmed, vehicleID: ptr(v.ID()), driverID: ptr(d.ID())})

	uow := newMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.Shipments.On("Get", ctx, s.ID()).Return(s, nil).Once(),
		uow.Customers.On("Get", ctx, c.ID()).Return(c, nil).Once(),
		uow.Vehicles.On("Get", ctx, v.ID()).Return(v, nil).Once(),
		uow.Drivers.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		uow.Shipments.On("Update", ctx, s).Return(nil).Once(),
		uow.Vehicles.On("Update", ctx, v).Return(nil).Once(),
		uow.Drivers.On("Update", ctx, d).Return(nil).Once(),
		uow.History.On("Append", ctx, mock.MatchedBy(func(e shipment.HistoryEntry) bool {
			return e.ShipmentID().IsEqual(s.ID()) && e.Status() == shipment.Dispatched && e.Actor() == actor
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	notifier.On("Notify", ctx, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Title == "shipment status updated" && n.RelatedID == s.ID().String() && !n.CreatedAt.IsZero()
	})).Return(nil).Once()
	auditor := new(MockAuditor)
	auditor.On("Record", ctx, mock.MatchedBy(func(r ports.AuditRecord) bool {
		return r.Changes["from"] == "Confirmed" && r.Changes["to"] == "Dispatched"
	})).Return(nil).Once()
	cache := new(MockTrackingCache)
	cache.On("Invalidate", ctx, s.TrackingToken().String()).Return(nil).Once()

	cmd, err := commands.NewAdvanceShipmentStatusCommand(s.ID(), "dispatched", actor, "left depot", nil, "", "")
	require.NoError(t, err)
	handler := commands.NewAdvanceShipmentStatusCommandHandler(shipmentFactory{uow}, cache, notifier, auditor, nil)

	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.Dispatched, updated.Status())
	assert.Equal(t, vehicle.Transit, v.Status())
	assert.False(t, d.IsAvailable())
	uow.Customers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.assertExpectations(t)
	notifier.AssertExpectations(t)
	auditor.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestAdvanceShipmentStatusCommandHandler_Handle_Delivered(t *testing.T) {
	ctx := t.Context()
	c := newCustomer(t)
	v := newVehicle(t, vehicle.Transit)
	d := newDriver(t, false)
	s := newShipment(t, c.ID(), shipmentOpts{status: shipment.InTransit, vehicleID: ptr(v.ID()), driverID: ptr(d.ID())})
	shipmentsBefore := c.TotalShipments()
	revenueBefore := c.TotalRevenue()

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.Shipments.On("Get", ctx, s.ID()).Return(s, nil).Once()
	uow.Customers.On("Get", ctx, c.ID()).Return(c, nil).Once()
	uow.Vehicles.On("Get", ctx, v.ID()).Return(v, nil).Once()
	uow.Drivers.On("Get", ctx, d.ID()).Return(d, nil).Once()
	uow.Shipments.On("Update", ctx, s).Return(nil).Once()
	uow.Vehicles.On("Update", ctx, v).Return(nil).Once()
	uow.Drivers.On("Update", ctx, d).Return(nil).Once()
	uow.Customers.On("Update", ctx, c).Return(nil).Once()
	uow.History.On("Append", ctx, mock.AnythingOfType("shipment.HistoryEntry")).Return(nil).Once()

	cmd, err := commands.NewAdvanceShipmentStatusCommand(s.ID(), "Delivered", actor, "", nil, "", "Ali Veli")
	require.NoError(t, err)
	handler := commands.NewAdvanceShipmentStatusCommandHandler(shipmentFactory{uow}, nil, nil, nil, nil)

	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.Delivered, updated.Status())
	assert.NotNil(t, updated.ActualDelivery())
	assert.Equal(t, "Ali Veli", updated.RecipientName())
	assert.Equal(t, vehicle.Idle, v.Status())
	assert.False(t, d.IsAvailable())
	assert.Equal(t, 5, d.TotalDeliveries())
	assert.Equal(t, 4, d.SuccessfulDeliveries())
	assert.Equal(t, shipmentsBefore+1, c.TotalShipments())
	assert.True(t, c.TotalRevenue().IsEqual(revenueBefore.Add(s.TotalPrice())))
	uow.assertExpectations(t)
}

func TestAdvanceShipmentStatusCommandHandler_Handle_DisallowedTransition(t *testing.T) {
	ctx := t.Context()
	c := newCustomer(t)
	s := newShipment(t, c.ID(), shipmentOpts{status: shipment.Pending})

	uow := newMockUoW()
	uow.expectTx(ctx, false)
	uow.Shipments.On("Get", ctx, s.ID()).Return(s, nil).Once()
	uow.Customers.On("Get", ctx, c.ID()).Return(c, nil).Once()

	cmd, err := commands.NewAdvanceShipmentStatusCommand(s.ID(), "Delivered", actor, "", nil, "", "")
	require.NoError(t, err)
	handler := commands.NewAdvanceShipmentStatusCommandHandler(shipmentFactory{uow}, nil, nil, nil, nil)

	_, err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, shipment.Pending, s.Status())
	assert.Equal(t, 2, c.TotalShipments())
	uow.History.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	uow.assertExpectations(t)
}

func TestAdvanceShipmentStatusCommandHandler_Handle_SideEffectFailuresAreSwallowed(t *testing.T) {
	ctx := t.Context()
	c := newCustomer(t)
	s := newShipment(t, c.ID(), shipmentOpts{status: shipment.Pending})

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.Shipments.On("Get", ctx, s.ID()).Return(s, nil).Once()
	uow.Customers.On("Get", ctx, c.ID()).Return(c, nil).Once()
	uow.Shipments.On("Update", ctx, s).Return(nil).Once()
	uow.History.On("Append", ctx, mock.Anything).Return(nil).Once()

	notifier := new(MockNotifier)
	notifier.On("Notify", ctx, mock.Anything).Return(errors.New("smtp down")).Once()
	auditor := new(MockAuditor)
	auditor.On("Record", ctx, mock.Anything).Return(errors.New("kafka down")).Once()
	cache := new(MockTrackingCache)
	cache.On("Invalidate", ctx, mock.Anything).Return(errors.New("redis down")).Once()

	cmd, err := commands.NewAdvanceShipmentStatusCommand(s.ID(), "CONFIRMED", actor, "", nil, "", "")
	require.NoError(t, err)
	handler := commands.NewAdvanceShipmentStatusCommandHandler(shipmentFactory{uow}, cache, notifier, auditor, nil)

	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.Confirmed, updated.Status())
	notifier.AssertExpectations(t)
	auditor.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestAdvanceShipmentStatusCommandHandler_Handle_HistoryFailureRollsBack(t *testing.T) {
	ctx := t.Context()
	c := newCustomer(t)
	s := newShipment(t, c.ID(), shipmentOpts{status: shipment.Pending})
	appendErr := errors.New("insert failed")

	uow := newMockUoW()
	uow.expectTx(ctx, false)
	uow.Shipments.On("Get", ctx, s.ID()).Return(s, nil).Once()
	uow.Customers.On("Get", ctx, c.ID()).Return(c, nil).Once()
	uow.Shipments.On("Update", ctx, s).Return(nil).Once()
	uow.History.On("Append", ctx, mock.Anything).Return(appendErr).Once()

	notifier := new(MockNotifier)

	cmd, err := commands.NewAdvanceShipmentStatusCommand(s.ID(), "Cancelled", actor, "", nil, "", "")
	require.NoError(t, err)
	handler := commands.NewAdvanceShipmentStatusCommandHandler(shipmentFactory{uow}, nil, notifier, nil, nil)

	_, err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, appendErr)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	uow.assertExpectations(t)
}

func TestNewAdvanceShipmentStatusCommand_UnknownTarget(t *testing.T) {
	c := newCustomer(t)
	s := newShipment(t, c.ID(), shipmentOpts{})

	_, err := commands.NewAdvanceShipmentStatusCommand(s.ID(), "teleported", actor, "", nil, "", "")

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}
