package market

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMarketRepository struct {
	mock.Mock
}

func (m *mockMarketRepository) ActiveListings(ctx context.Context, limit, offset int) ([]ActiveListing, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]ActiveListing), args.Get(1).(int64), args.Error(2)
}

func (m *mockMarketRepository) Stats(ctx context.Context) (Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(Stats), args.Error(1)
}

func TestMarketService_ActiveListings_PaginationDefaults(t *testing.T) {
	repo := new(mockMarketRepository)
	service := NewMarketService(repo)

	repo.On("ActiveListings", mock.Anything, 20, 0).Return([]ActiveListing{}, int64(0), nil)

	_, _, err := service.ActiveListings(context.Background(), 0, 0)
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestMarketService_ActiveListings_Offset(t *testing.T) {
	repo := new(mockMarketRepository)
	service := NewMarketService(repo)

	items := []ActiveListing{{ListingID: 11, TokenID: 21, Price: decimal.NewFromInt(3)}}
	repo.On("ActiveListings", mock.Anything, 5, 10).Return(items, int64(11), nil)

	got, total, err := service.ActiveListings(context.Background(), 3, 5)
	require.NoError(t, err)
	require.Equal(t, items, got)
	require.EqualValues(t, 11, total)
}
