package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/adapters/out/postgres/routerepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type GetRouteQueryHandlerTestSuite struct {
	suite.Suite
	database  *pgtest.Database
	routes    *routerepo.GormRouteRepository
	shipments *shipmentrepo.GormShipmentRepository
	handler   queries.GetRouteQueryHandler
	sequence  int64
}

func (suite *GetRouteQueryHandlerTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), postgres_adapter.Migrate)
	suite.Require().NoError(err)
	suite.database = database
	suite.routes = routerepo.NewGormRouteRepository(database.DB, &mockAggregateTracker{})
	suite.shipments = shipmentrepo.NewGormShipmentRepository(database.DB, &mockAggregateTracker{})
	suite.handler = queries.NewGetRouteQueryHandler(database.DB)
}

func (suite *GetRouteQueryHandlerTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *GetRouteQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate("route_stops", "routes", "shipment_history", "shipments"))
}

func (suite *GetRouteQueryHandlerTestSuite) TestHandle_ReturnsRouteWithOrderedStops() {
	ctx := context.Background()
	first := suite.storeShipment()
	second := suite.storeShipment()
	vehicleID := kernel.NewUUID()
	start, err := kernel.NewGeoPoint(40.99, 29.03)
	suite.Require().NoError(err)

	r, err := route.NewRoute(kernel.NewUUID(), "Anatolian side morning", &vehicleID, nil,
		"Kadikoy depot", start, time.Date(2025, 3, 1, 6, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	for i, s := range []*shipment.Shipment{first, second} {
		eta := time.Date(2025, 3, 1, 8, 10*(i+1), 0, 0, time.UTC)
		stop, stopErr := route.NewStop(kernel.NewUUID(), s.ID(), i+1, route.Delivery, nil, &eta, route.DefaultServiceTimeMinutes)
		suite.Require().NoError(stopErr)
		suite.Require().NoError(r.AddStop(stop))
	}
	plannedStart := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	suite.Require().NoError(r.Plan(route.Metrics{TotalDistanceKm: 12.346, DurationMinutes: 58}, &plannedStart))
	suite.Require().NoError(suite.routes.Add(ctx, r))

	resp, err := suite.handler.Handle(ctx, suite.query(r.ID()))

	suite.Require().NoError(err)
	suite.Equal(r.ID(), resp.ID)
	suite.Equal("Anatolian side morning", resp.Name)
	suite.Equal("Planned", resp.Status)
	suite.Require().NotNil(resp.VehicleID)
	suite.Equal(vehicleID, *resp.VehicleID)
	suite.Nil(resp.DriverID)
	suite.Equal("Kadikoy depot", resp.StartLocation)
	suite.InDelta(40.99, resp.StartPoint.Lat(), 1e-9)
	suite.InDelta(12.35, resp.TotalDistanceKm, 1e-9)
	suite.Equal(58, resp.DurationMinutes)
	suite.Require().NotNil(resp.PlannedEnd)
	suite.True(resp.PlannedEnd.Equal(plannedStart.Add(58 * time.Minute)))

	suite.Require().Len(resp.Stops, 2)
	suite.Equal(1, resp.Stops[0].Sequence)
	suite.Equal(first.ID(), resp.Stops[0].ShipmentID)
	suite.Equal(first.Reference().String(), resp.Stops[0].ShipmentReference)
	suite.Equal("Delivery", resp.Stops[0].Type)
	suite.Equal(route.DefaultServiceTimeMinutes, resp.Stops[0].ServiceTimeMinutes)
	suite.False(resp.Stops[0].Completed)
	suite.Equal(2, resp.Stops[1].Sequence)
	suite.Equal(second.Reference().String(), resp.Stops[1].ShipmentReference)
}

func (suite *GetRouteQueryHandlerTestSuite) TestHandle_DraftRouteWithoutStops() {
	ctx := context.Background()
	start, err := kernel.NewGeoPoint(41.0, 29.0)
	suite.Require().NoError(err)
	r, err := route.NewRoute(kernel.NewUUID(), "empty", nil, nil, "", start, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.routes.Add(ctx, r))

	resp, err := suite.handler.Handle(ctx, suite.query(r.ID()))

	suite.Require().NoError(err)
	suite.Equal("Draft", resp.Status)
	suite.NotNil(resp.Stops)
	suite.Empty(resp.Stops)
	suite.Nil(resp.PlannedStart)
}

func (suite *GetRouteQueryHandlerTestSuite) TestHandle_UnknownRoute_NotFound() {
	resp, err := suite.handler.Handle(context.Background(), suite.query(kernel.NewUUID()))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(resp)
}

func (suite *GetRouteQueryHandlerTestSuite) TestHandle_ContextCancelled_ReturnsError() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := suite.handler.Handle(ctx, suite.query(kernel.NewUUID()))

	suite.Require().Error(err)
	suite.Nil(resp)
}

func (suite *GetRouteQueryHandlerTestSuite) query(id kernel.UUID) queries.GetRouteQuery {
	query, err := queries.NewGetRouteQuery(id)
	suite.Require().NoError(err)
	return query
}

func (suite *GetRouteQueryHandlerTestSuite) storeShipment() *shipment.Shipment {
	suite.sequence++
	ref, err := shipment.NewReference(2025, suite.sequence)
	suite.Require().NoError(err)
	token, err := shipment.NewTrackingToken()
	suite.Require().NoError(err)
	origin, err := shipment.NewAddress("Tuzla Depo, Istanbul", nil)
	suite.Require().NoError(err)
	destination, err := shipment.NewAddress("Moda, Istanbul", nil)
	suite.Require().NoError(err)
	price, _ := kernel.NewMoneyFromString("80.00")
	pricing, err := shipment.NewPricing(price, kernel.ZeroMoney(), kernel.ZeroMoney())
	suite.Require().NoError(err)

	s, err := shipment.NewShipment(kernel.NewUUID(), ref, token, kernel.NewUUID(),
		origin, destination, pricing, nil, time.Date(2025, 3, 1, 5, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.shipments.Add(context.Background(), s))
	return s
}

func TestGetRouteQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(GetRouteQueryHandlerTestSuite))
}
