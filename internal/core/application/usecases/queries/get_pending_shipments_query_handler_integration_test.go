package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/suite"
)

type GetPendingShipmentsQueryHandlerTestSuite struct {
	suite.Suite
	database  *pgtest.Database
	shipments *shipmentrepo.GormShipmentRepository
	handler   queries.GetPendingShipmentsQueryHandler
	sequence  int64
}

func (suite *GetPendingShipmentsQueryHandlerTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), postgres_adapter.Migrate)
	suite.Require().NoError(err)
	suite.database = database
	suite.shipments = shipmentrepo.NewGormShipmentRepository(database.DB, &mockAggregateTracker{})
	suite.handler = queries.NewGetPendingShipmentsQueryHandler(database.DB)
}

func (suite *GetPendingShipmentsQueryHandlerTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *GetPendingShipmentsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate("shipment_history", "shipments"))
}

func (suite *GetPendingShipmentsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetPendingShipmentsQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetPendingShipmentsQueryHandlerTestSuite) TestHandle_ReturnsUndispatchedOldestFirst() {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	confirmed := suite.storeShipment(base, shipment.Confirmed)
	suite.storeShipment(base.Add(time.Hour), shipment.Dispatched)
	suite.storeShipment(base.Add(2*time.Hour), shipment.Cancelled)
	pending := suite.storeShipment(base.Add(3*time.Hour), shipment.Pending)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetPendingShipmentsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(confirmed.ID(), result[0].ID)
	suite.Equal("Confirmed", result[0].Status)
	suite.Equal(pending.ID(), result[1].ID)
	suite.Equal("Pending", result[1].Status)

	first := result[0]
	suite.Equal(confirmed.Reference().String(), first.Reference)
	suite.Equal(confirmed.CustomerID(), first.CustomerID)
	suite.Equal("Tuzla Depo, Istanbul", first.Origin)
	suite.Equal("Levent, Istanbul", first.Destination)
	suite.Require().NotNil(first.DestinationPoint)
	suite.InDelta(41.08, first.DestinationPoint.Lat(), 1e-9)
	suite.Equal("110.00", first.TotalPrice.String())
	suite.True(first.CreatedAt.Equal(base))
	suite.Nil(first.VehicleID)
}

func (suite *GetPendingShipmentsQueryHandlerTestSuite) TestHandle_InvalidQuery() {
	_, err := suite.handler.Handle(context.Background(), queries.GetPendingShipmentsQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetPendingShipmentsQueryIsNotConstructed)
}

func (suite *GetPendingShipmentsQueryHandlerTestSuite) storeShipment(createdAt time.Time, status shipment.Status) *shipment.Shipment {
	suite.sequence++
	ref, err := shipment.NewReference(2025, suite.sequence)
	suite.Require().NoError(err)
	token, err := shipment.NewTrackingToken()
	suite.Require().NoError(err)
	origin, err := shipment.NewAddress("Tuzla Depo, Istanbul", nil)
	suite.Require().NoError(err)
	levent, err := kernel.NewGeoPoint(41.08, 29.01)
	suite.Require().NoError(err)
	destination, err := shipment.NewAddress("Levent, Istanbul", &levent)
	suite.Require().NoError(err)
	price, _ := kernel.NewMoneyFromString("100.00")
	extra, _ := kernel.NewMoneyFromString("15.00")
	discount, _ := kernel.NewMoneyFromString("5.00")
	pricing, err := shipment.NewPricing(price, extra, discount)
	suite.Require().NoError(err)

	s, err := shipment.NewShipment(kernel.NewUUID(), ref, token, kernel.NewUUID(),
		origin, destination, pricing, nil, createdAt)
	suite.Require().NoError(err)
	for _, next := range pathTo(status) {
		suite.Require().NoError(s.TransitionTo(next, "", createdAt))
	}
	suite.Require().NoError(suite.shipments.Add(context.Background(), s))
	return s
}

func pathTo(status shipment.Status) []shipment.Status {
	switch status { //nolint:exhaustive // only the statuses used above
	case shipment.Confirmed:
		return []shipment.Status{shipment.Confirmed}
	case shipment.Dispatched:
		return []shipment.Status{shipment.Confirmed, shipment.Dispatched}
	case shipment.Cancelled:
		return []shipment.Status{shipment.Cancelled}
	default:
		return nil
	}
}

func TestGetPendingShipmentsQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(GetPendingShipmentsQueryHandlerTestSuite))
}
