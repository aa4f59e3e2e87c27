package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetVehicleMaintenanceCommandHandler_Handle(t *testing.T) {
	tests := map[string]struct {
		from          vehicle.Status
		inMaintenance bool
		want          vehicle.Status
		wantErr       error
	}{
		"idle into maintenance":      {from: vehicle.Idle, inMaintenance: true, want: vehicle.Maintenance},
		"maintenance back to idle":   {from: vehicle.Maintenance, inMaintenance: false, want: vehicle.Idle},
		"transit cannot be serviced": {from: vehicle.Transit, inMaintenance: true, wantErr: errs.ErrInvalidState},
		"idle is not in maintenance": {from: vehicle.Idle, inMaintenance: false, wantErr: errs.ErrInvalidState},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()
			v := newVehicle(t, tt.from)

			uow := newMockUoW()
			uow.expectTx(ctx, tt.wantErr == nil)
			uow.Vehicles.On("Get", ctx, v.ID()).Return(v, nil).Once()
			if tt.wantErr == nil {
				uow.Vehicles.On("Update", ctx, v).Return(nil).Once()
			}

			cmd, err := commands.NewSetVehicleMaintenanceCommand(v.ID(), tt.inMaintenance, actor)
			require.NoError(t, err)
			handler := commands.NewSetVehicleMaintenanceCommandHandler(fleetFactory{uow}, nil, nil)

			updated, err := handler.Handle(ctx, cmd)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, v.Status())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, updated.Status())
			}
			uow.assertExpectations(t)
		})
	}
}

func TestToggleDriverAvailabilityCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	d := newDriver(t, true)

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.Drivers.On("Get", ctx, d.ID()).Return(d, nil).Once()
	uow.Drivers.On("Update", ctx, d).Return(nil).Once()

	cmd, err := commands.NewToggleDriverAvailabilityCommand(d.ID(), actor)
	require.NoError(t, err)
	handler := commands.NewToggleDriverAvailabilityCommandHandler(fleetFactory{uow}, nil, nil)

	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, updated.IsAvailable())
	uow.assertExpectations(t)
}

func TestRegisterVehicleCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.Vehicles.On("Add", ctx, mock.AnythingOfType("*vehicle.Vehicle")).Return(nil).Once()

	auditor := new(MockAuditor)
	auditor.On("Record", ctx, mock.Anything).Return(nil).Once()

	cmd, err := commands.NewRegisterVehicleCommand(id, " 34 abc 123 ", 1500, actor)
	require.NoError(t, err)
	handler := commands.NewRegisterVehicleCommandHandler(fleetFactory{uow}, auditor, nil)

	v, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, v.ID().IsEqual(id))
	assert.Equal(t, "34 ABC 123", v.PlateNumber())
	assert.Equal(t, vehicle.Idle, v.Status())
	uow.assertExpectations(t)
	auditor.AssertExpectations(t)
}

func TestRegisterVehicleCommandHandler_Handle_InvalidCapacityNeverOpensTransaction(t *testing.T) {
	uow := newMockUoW()

	cmd, err := commands.NewRegisterVehicleCommand(kernel.NewUUID(), "34 ABC 123", 0, actor)
	require.NoError(t, err)
	handler := commands.NewRegisterVehicleCommandHandler(fleetFactory{uow}, nil, nil)

	_, err = handler.Handle(t.Context(), cmd)

	assert.True(t, errs.IsValidation(err))
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestRegisterDriverCommandHandler_Handle_DuplicateLicense(t *testing.T) {
	ctx := t.Context()

	uow := newMockUoW()
	uow.expectTx(ctx, false)
	uow.Drivers.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).
		Return(errs.NewConflictError("driver", "B-100200")).Once()

	cmd, err := commands.NewRegisterDriverCommand(kernel.NewUUID(), "Deniz Kaya", "B-100200", actor)
	require.NoError(t, err)
	handler := commands.NewRegisterDriverCommandHandler(fleetFactory{uow}, nil, nil)

	_, err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrConflict)
	uow.assertExpectations(t)
}

func TestRegisterCustomerCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.Customers.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once()

	cmd, err := commands.NewRegisterCustomerCommand(kernel.NewUUID(), "Acme Ltd", "ops@acme.test", actor)
	require.NoError(t, err)
	handler := commands.NewRegisterCustomerCommandHandler(fleetFactory{uow}, nil, nil)

	c, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, c.TotalShipments())
	assert.True(t, c.TotalRevenue().IsZero())
	uow.assertExpectations(t)
}
