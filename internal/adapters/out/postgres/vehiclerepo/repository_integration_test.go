package vehiclerepo_test

import (
	"context"
	"testing"

	postgres_adapter "logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/adapters/out/postgres/vehiclerepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type VehicleRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *vehiclerepo.GormVehicleRepository
	tracker    *MockAggregateTracker
}

func (suite *VehicleRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), postgres_adapter.Migrate)
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *VehicleRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate("vehicles"))
	suite.tracker = new(MockAggregateTracker)
	suite.repository = vehiclerepo.NewGormVehicleRepository(suite.database.DB, suite.tracker)
}

func (suite *VehicleRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestAdd_ValidVehicle_Success() {
	ctx := context.Background()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "34 abc 123", 1500)
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", v.ID(), v).Once()

	suite.Require().NoError(suite.repository.Add(ctx, v))

	stored, err := suite.repository.Get(ctx, v.ID())
	suite.Require().NoError(err)
	suite.Equal("34 ABC 123", stored.PlateNumber())
	suite.Equal(1500, stored.CapacityKg())
	suite.Equal(vehicle.Idle, stored.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestAdd_DuplicatePlate_Conflict() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	first, err := vehicle.NewVehicle(kernel.NewUUID(), "06 XY 99", 800)
	suite.Require().NoError(err)
	second, err := vehicle.NewVehicle(kernel.NewUUID(), "06 xy 99", 900)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, first))
	err = suite.repository.Add(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.tracker.AssertNumberOfCalls(suite.T(), "TrackAggregate", 1)
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestAdd_NotConstructed_Rejected() {
	err := suite.repository.Add(context.Background(), &vehicle.Vehicle{})

	suite.Require().ErrorIs(err, vehicle.ErrVehicleIsNotConstructed)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestUpdate_BumpsVersion() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "35 KL 700", 1000)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, v))

	suite.Require().NoError(v.StartMaintenance())
	suite.Require().NoError(suite.repository.Update(ctx, v))
	suite.Require().NoError(v.EndMaintenance())
	suite.Require().NoError(suite.repository.Update(ctx, v))

	stored, err := suite.repository.Get(ctx, v.ID())
	suite.Require().NoError(err)
	suite.Equal(vehicle.Idle, stored.Status())
	suite.Equal(2, stored.Version())
	suite.Equal(2, v.Version())
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestGet_Unknown_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestVehicleRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(VehicleRepositoryIntegrationTestSuite))
}
