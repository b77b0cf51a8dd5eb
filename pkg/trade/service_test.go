package trade

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTradeRepository struct {
	mock.Mock
}

func (m *mockTradeRepository) Purchase(ctx context.Context, tokenID int64, buyerUUID string, amount decimal.Decimal) (Receipt, error) {
	args := m.Called(ctx, tokenID, buyerUUID, amount)
	return args.Get(0).(Receipt), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) PurchaseCompleted(ctx context.Context, receipt Receipt) {
	m.Called(ctx, receipt)
}

func TestTradeService_Purchase_NotifiesAfterSettlement(t *testing.T) {
	repo := new(mockTradeRepository)
	notifier := new(mockNotifier)
	service := NewTradeService(repo, notifier)

	price := decimal.NewFromInt(10)
	receipt := Receipt{ID: 1, TokenID: 3, ListingID: 2, SellerUUID: "alice", BuyerUUID: "bob", Price: price}

	repo.On("Purchase", mock.Anything, int64(3), "bob", price).Return(receipt, nil)
	notifier.On("PurchaseCompleted", mock.Anything, receipt).Return()

	got, err := service.Purchase(context.Background(), 3, "bob", price)
	require.NoError(t, err)
	require.Equal(t, receipt, got)

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestTradeService_Purchase_NoNotificationOnFailure(t *testing.T) {
	repo := new(mockTradeRepository)
	notifier := new(mockNotifier)
	service := NewTradeService(repo, notifier)

	repo.On("Purchase", mock.Anything, int64(3), "bob", mock.Anything).Return(Receipt{}, ErrInsufficientFunds)

	_, err := service.Purchase(context.Background(), 3, "bob", decimal.NewFromInt(10))
	require.ErrorIs(t, err, ErrInsufficientFunds)

	notifier.AssertNotCalled(t, "PurchaseCompleted", mock.Anything, mock.Anything)
}

func TestTradeService_Purchase_NilNotifier(t *testing.T) {
	repo := new(mockTradeRepository)
	service := NewTradeService(repo, nil)

	price := decimal.NewFromInt(10)
	receipt := Receipt{ID: 1, TokenID: 3, ListingID: 2, SellerUUID: "alice", BuyerUUID: "bob", Price: price}
	repo.On("Purchase", mock.Anything, int64(3), "bob", price).Return(receipt, nil)

	got, err := service.Purchase(context.Background(), 3, "bob", price)
	require.NoError(t, err)
	require.Equal(t, receipt, got)
}
