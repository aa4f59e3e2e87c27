package commands_test

import (
	"context"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/invoice"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByTrackingToken(
	ctx context.Context,
	token shipment.TrackingToken,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Append(ctx context.Context, entry shipment.HistoryEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockHistoryRepository) ListByShipment(ctx context.Context, id kernel.UUID) ([]shipment.HistoryEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipment.HistoryEntry), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, r *route.Route) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRouteRepository) Update(ctx context.Context, r *route.Route) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, inv *invoice.Invoice) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *MockInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) GetSentDueBefore(ctx context.Context, day time.Time) ([]*invoice.Invoice, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*invoice.Invoice), args.Error(1)
}

type MockSequenceGenerator struct{ mock.Mock }

func (m *MockSequenceGenerator) Next(ctx context.Context, name string, year int) (int64, error) {
	args := m.Called(ctx, name, year)
	return args.Get(0).(int64), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, n ports.Notification) error {
	return m.Called(ctx, n).Error(0)
}

type MockAuditor struct{ mock.Mock }

func (m *MockAuditor) Record(ctx context.Context, r ports.AuditRecord) error {
	return m.Called(ctx, r).Error(0)
}

type MockTrackingCache struct{ mock.Mock }

func (m *MockTrackingCache) Get(ctx context.Context, token string) ([]byte, bool, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockTrackingCache) Generation(ctx context.Context, token string) (int64, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTrackingCache) Set(ctx context.Context, token string, generation int64, value []byte) (bool, error) {
	args := m.Called(ctx, token, generation, value)
	return args.Bool(0), args.Error(1)
}

func (m *MockTrackingCache) Invalidate(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

// MockUoW satisfies every narrowed unit of work. Repository accessors return
// the repositories set on the struct; only the transaction calls are mocked.
type MockUoW struct {
	mock.Mock

	Vehicles  *MockVehicleRepository
	Drivers   *MockDriverRepository
	Customers *MockCustomerRepository
	Shipments *MockShipmentRepository
	History   *MockHistoryRepository
	Routes    *MockRouteRepository
	Invoices  *MockInvoiceRepository
	Sequences *MockSequenceGenerator
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		Vehicles:  new(MockVehicleRepository),
		Drivers:   new(MockDriverRepository),
		Customers: new(MockCustomerRepository),
		Shipments: new(MockShipmentRepository),
		History:   new(MockHistoryRepository),
		Routes:    new(MockRouteRepository),
		Invoices:  new(MockInvoiceRepository),
		Sequences: new(MockSequenceGenerator),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository                 { return m.Vehicles }
func (m *MockUoW) DriverRepository() ports.DriverRepository                   { return m.Drivers }
func (m *MockUoW) CustomerRepository() ports.CustomerRepository               { return m.Customers }
func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository               { return m.Shipments }
func (m *MockUoW) ShipmentHistoryRepository() ports.ShipmentHistoryRepository { return m.History }
func (m *MockUoW) RouteRepository() ports.RouteRepository                     { return m.Routes }
func (m *MockUoW) InvoiceRepository() ports.InvoiceRepository                 { return m.Invoices }
func (m *MockUoW) SequenceGenerator() ports.SequenceGenerator                 { return m.Sequences }

// expectTx registers Begin, an optional Commit and the deferred Rollback.
func (m *MockUoW) expectTx(ctx context.Context, commit bool) {
	m.On("Begin", ctx).Return(nil).Once()
	if commit {
		m.On("Commit", ctx).Return(nil).Once()
	}
	m.On("Rollback", ctx).Return(nil).Once()
}

func (m *MockUoW) assertExpectations(t mock.TestingT) {
	m.AssertExpectations(t)
	m.Vehicles.AssertExpectations(t)
	m.Drivers.AssertExpectations(t)
	m.Customers.AssertExpectations(t)
	m.Shipments.AssertExpectations(t)
	m.History.AssertExpectations(t)
	m.Routes.AssertExpectations(t)
	m.Invoices.AssertExpectations(t)
	m.Sequences.AssertExpectations(t)
}

type fleetFactory struct{ uow *MockUoW }

func (f fleetFactory) Create() commands.FleetUoW { return f.uow }

type routeFactory struct{ uow *MockUoW }

func (f routeFactory) Create() commands.RouteUoW { return f.uow }

type shipmentFactory struct{ uow *MockUoW }

func (f shipmentFactory) Create() commands.ShipmentUoW { return f.uow }

type invoiceFactory struct{ uow *MockUoW }

func (f invoiceFactory) Create() commands.InvoiceUoW { return f.uow }
