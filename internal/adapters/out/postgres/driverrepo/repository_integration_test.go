package driverrepo_test

import (
	"context"
	"testing"

	postgres_adapter "logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
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

type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *driverrepo.GormDriverRepository
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), postgres_adapter.Migrate)
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate("drivers"))
	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = driverrepo.NewGormDriverRepository(suite.database.DB, tracker)
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) TestRoundTrip_KeepsAvailabilityAndCounters() {
	ctx := context.Background()
	d, err := driver.NewDriver(kernel.NewUUID(), "Mehmet Demir", "B-123456")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, d))

	d.Assign()
	d.RecordDelivery(true)
	d.RecordDelivery(false)
	suite.Require().NoError(suite.repository.Update(ctx, d))

	stored, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.False(stored.IsAvailable())
	suite.Equal(2, stored.TotalDeliveries())
	suite.Equal(1, stored.SuccessfulDeliveries())
	suite.InDelta(50.0, stored.SuccessRate(), 1e-9)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_DuplicateLicense_Conflict() {
	ctx := context.Background()
	first, err := driver.NewDriver(kernel.NewUUID(), "A", "B-000001")
	suite.Require().NoError(err)
	second, err := driver.NewDriver(kernel.NewUUID(), "B", "B-000001")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().ErrorIs(suite.repository.Add(ctx, second), errs.ErrConflict)
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
