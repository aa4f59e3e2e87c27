package queries_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validToken = "0123456789abcdef0123456789abcdef"

type MockTrackingCache struct {
	mock.Mock
}

func (m *MockTrackingCache) Get(ctx context.Context, token string) ([]byte, bool, error) {
	args := m.Called(ctx, token)
	raw, _ := args.Get(0).([]byte)
	return raw, args.Bool(1), args.Error(2)
}

func (m *MockTrackingCache) Generation(ctx context.Context, token string) (int64, error) {
	args := m.Called(ctx, token)
	gen, _ := args.Get(0).(int64)
	return gen, args.Error(1)
}

func (m *MockTrackingCache) Set(ctx context.Context, token string, generation int64, value []byte) (bool, error) {
	args := m.Called(ctx, token, generation, value)
	return args.Bool(0), args.Error(1)
}

func (m *MockTrackingCache) Invalidate(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func TestNewTrackShipmentQuery_Valid(t *testing.T) {
	query, err := queries.NewTrackShipmentQuery(validToken)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, validToken, query.Token().String())
}

func TestNewTrackShipmentQuery_MalformedToken(t *testing.T) {
	tests := map[string]string{
		"empty":       "",
		"too short":   "0123456789abcdef",
		"upper case":  "0123456789ABCDEF0123456789ABCDEF",
		"non hex":     "0123456789abcdef0123456789abcdeg",
		"with dashes": "01234567-89ab-cdef-0123-456789abcdef",
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := queries.NewTrackShipmentQuery(token)
			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
		})
	}
}

func TestTrackShipmentQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.TrackShipmentQuery{}.Validate()
	require.ErrorIs(t, err, queries.ErrTrackShipmentQueryIsNotConstructed)
}

func TestNewGetRouteQuery(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetRouteQuery(id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, id, query.RouteID())

	_, err = queries.NewGetRouteQuery(kernel.UUID{})
	require.Error(t, err)

	require.ErrorIs(t, queries.GetRouteQuery{}.Validate(), queries.ErrGetRouteQueryIsNotConstructed)
}

func TestTrackShipmentQueryHandler_CacheHit_SkipsDatabase(t *testing.T) {
	ctx := t.Context()
	cached := queries.TrackShipmentResponse{
		Reference:   "SHP-2025-00007",
		Origin:      "Tuzla Depo, Istanbul",
		Destination: "Levent, Istanbul",
		Status:      "InTransit",
		StatusHistory: []queries.TrackingEvent{
			{Status: "Pending", Notes: "shipment created"},
			{Status: "InTransit"},
		},
	}
	raw, err := json.Marshal(cached)
	require.NoError(t, err)

	cache := new(MockTrackingCache)
	cache.On("Get", ctx, validToken).Return(raw, true, nil).Once()

	// A nil database proves the handler never falls through on a hit.
	handler := queries.NewTrackShipmentQueryHandler(nil, cache, nil)
	query, err := queries.NewTrackShipmentQuery(validToken)
	require.NoError(t, err)

	view, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, "SHP-2025-00007", view.Reference)
	assert.Equal(t, "InTransit", view.Status)
	require.Len(t, view.StatusHistory, 2)
	assert.Equal(t, "shipment created", view.StatusHistory[0].Notes)
	cache.AssertExpectations(t)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTrackShipmentQueryHandler_InvalidQuery(t *testing.T) {
	cache := new(MockTrackingCache)
	handler := queries.NewTrackShipmentQueryHandler(nil, cache, nil)

	view, err := handler.Handle(t.Context(), queries.TrackShipmentQuery{})

	require.ErrorIs(t, err, queries.ErrTrackShipmentQueryIsNotConstructed)
	assert.Nil(t, view)
	cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestGetRouteQueryHandler_InvalidQuery(t *testing.T) {
	handler := queries.NewGetRouteQueryHandler(nil)

	resp, err := handler.Handle(t.Context(), queries.GetRouteQuery{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, queries.ErrGetRouteQueryIsNotConstructed))
	assert.Nil(t, resp)
}

func TestListQueries_ConstructorGuard(t *testing.T) {
	require.NoError(t, queries.NewGetAvailableVehiclesQuery().Validate())
	require.NoError(t, queries.NewGetAvailableDriversQuery().Validate())
	require.NoError(t, queries.NewGetPendingShipmentsQuery().Validate())

	assert.ErrorIs(t, queries.GetAvailableVehiclesQuery{}.Validate(), queries.ErrGetAvailableVehiclesQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetAvailableDriversQuery{}.Validate(), queries.ErrGetAvailableDriversQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetPendingShipmentsQuery{}.Validate(), queries.ErrGetPendingShipmentsQueryIsNotConstructed)
}
