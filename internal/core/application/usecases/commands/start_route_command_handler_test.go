package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartRouteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	v := newVehicle(t, vehicle.Idle)
	d := newDriver(t, true)
	r := newRoute(t, route.Planned, ptr(v.ID()), ptr(d.ID()), 2, 0)

	uow := newMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.Routes.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		uow.Vehicles.On("Get", ctx, v.ID()).Return(v, nil).Once(),
		uow.Drivers.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		uow.Routes.On("Update", ctx, r).Return(nil).Once(),
		uow.Vehicles.On("Update", ctx, v).Return(nil).Once(),
		uow.Drivers.On("Update", ctx, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	auditor := new(MockAuditor)
	auditor.On("Record", ctx, mock.Anything).Return(nil).Once()

	cmd, err := commands.NewStartRouteCommand(r.ID(), actor)
	require.NoError(t, err)
	handler := commands.NewStartRouteCommandHandler(routeFactory{uow}, auditor, nil)

	started, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, route.InProgress, started.Status())
	assert.NotNil(t, started.ActualStart())
	assert.Equal(t, vehicle.Transit, v.Status())
	assert.False(t, d.IsAvailable())
	uow.assertExpectations(t)
	auditor.AssertExpectations(t)
}

func TestStartRouteCommandHandler_Handle_WithoutDriver(t *testing.T) {
	ctx := t.Context()
	v := newVehicle(t, vehicle.Idle)
	r := newRoute(t, route.Planned, ptr(v.ID()), nil, 1, 0)

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.Routes.On("Get", ctx, r.ID()).Return(r, nil).Once()
	uow.Vehicles.On("Get", ctx, v.ID()).Return(v, nil).Once()
	uow.Routes.On("Update", ctx, r).Return(nil).Once()
	uow.Vehicles.On("Update", ctx, v).Return(nil).Once()

	cmd, err := commands.NewStartRouteCommand(r.ID(), actor)
	require.NoError(t, err)
	handler := commands.NewStartRouteCommandHandler(routeFactory{uow}, nil, nil)

	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.Drivers.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	uow.assertExpectations(t)
}

func TestStartRouteCommandHandler_Handle_VehicleInMaintenance(t *testing.T) {
	ctx := t.Context()
	v := newVehicle(t, vehicle.Maintenance)
	d := newDriver(t, true)
	r := newRoute(t, route.Planned, ptr(v.ID()), ptr(d.ID()), 1, 0)

	uow := newMockUoW()
	uow.expectTx(ctx, false)
	uow.Routes.On("Get", ctx, r.ID()).Return(r, nil).Once()
	uow.Vehicles.On("Get", ctx, v.ID()).Return(v, nil).Once()
	uow.Drivers.On("Get", ctx, d.ID()).Return(d, nil).Once()

	cmd, err := commands.NewStartRouteCommand(r.ID(), actor)
	require.NoError(t, err)
	handler := commands.NewStartRouteCommandHandler(routeFactory{uow}, nil, nil)

	_, err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, vehicle.Maintenance, v.Status())
	assert.True(t, d.IsAvailable())
	uow.Routes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.assertExpectations(t)
}

func TestStartRouteCommandHandler_Handle_RouteNotPlanned(t *testing.T) {
	for _, status := range []route.Status{route.Draft, route.InProgress, route.Completed, route.Cancelled} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			r := newRoute(t, status, nil, nil, 1, 0)

			uow := newMockUoW()
			uow.expectTx(ctx, false)
			uow.Routes.On("Get", ctx, r.ID()).Return(r, nil).Once()

			cmd, err := commands.NewStartRouteCommand(r.ID(), actor)
			require.NoError(t, err)
			handler := commands.NewStartRouteCommandHandler(routeFactory{uow}, nil, nil)

			_, err = handler.Handle(ctx, cmd)

			assert.ErrorIs(t, err, errs.ErrInvalidState)
			assert.Equal(t, status, r.Status())
			uow.assertExpectations(t)
		})
	}
}

func TestStartRouteCommandHandler_Handle_RouteNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	uow := newMockUoW()
	uow.expectTx(ctx, false)
	uow.Routes.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("route", id)).Once()

	cmd, err := commands.NewStartRouteCommand(id, actor)
	require.NoError(t, err)
	handler := commands.NewStartRouteCommandHandler(routeFactory{uow}, nil, nil)

	_, err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.assertExpectations(t)
}

func TestStartRouteCommandHandler_Handle_StaleVersion(t *testing.T) {
	ctx := t.Context()
	r := newRoute(t, route.Planned, nil, nil, 1, 0)

	uow := newMockUoW()
	uow.expectTx(ctx, false)
	uow.Routes.On("Get", ctx, r.ID()).Return(r, nil).Once()
	uow.Routes.On("Update", ctx, r).Return(errs.NewConflictError("route", r.ID().String())).Once()

	cmd, err := commands.NewStartRouteCommand(r.ID(), actor)
	require.NoError(t, err)
	handler := commands.NewStartRouteCommandHandler(routeFactory{uow}, nil, nil)

	_, err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrConflict)
	uow.assertExpectations(t)
}

func TestStartRouteCommandHandler_Handle_ResourcesBusy(t *testing.T) {
	tests := []struct {
		name            string
		vehicleStatus   vehicle.Status
		driverAvailable bool
	}{
		{name: "vehicle already in transit", vehicleStatus: vehicle.Transit, driverAvailable: true},
		{name: "driver unavailable", vehicleStatus: vehicle.Idle, driverAvailable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			v := newVehicle(t, tt.vehicleStatus)
			d := newDriver(t, tt.driverAvailable)
			r := newRoute(t, route.Planned, ptr(v.ID()), ptr(d.ID()), 1, 0)

			uow := newMockUoW()
			uow.expectTx(ctx, false)
			uow.Routes.On("Get", ctx, r.ID()).Return(r, nil).Once()
			uow.Vehicles.On("Get", ctx, v.ID()).Return(v, nil).Once()
			uow.Drivers.On("Get", ctx, d.ID()).Return(d, nil).Once()
			auditor := new(MockAuditor)

			cmd, err := commands.NewStartRouteCommand(r.ID(), actor)
			require.NoError(t, err)
			handler := commands.NewStartRouteCommandHandler(routeFactory{uow}, auditor, nil)

			_, err = handler.Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrInvalidState)
			assert.Equal(t, route.Planned, r.Status())
			assert.Nil(t, r.ActualStart())
			assert.Equal(t, tt.vehicleStatus, v.Status())
			assert.Equal(t, tt.driverAvailable, d.IsAvailable())
			uow.Routes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			uow.Vehicles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			uow.Drivers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			auditor.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
			uow.assertExpectations(t)
		})
	}
}
