package receipts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockReceiptRepository struct {
	mock.Mock
}

func (m *mockReceiptRepository) ListReceipts(ctx context.Context, limit, offset int) ([]Receipt, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]Receipt), args.Get(1).(int64), args.Error(2)
}

func (m *mockReceiptRepository) ListReceiptsByToken(ctx context.Context, tokenID int64) ([]Receipt, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).([]Receipt), args.Error(1)
}

func (m *mockReceiptRepository) ListReceiptsByAccount(ctx context.Context, accountUUID string, limit, offset int) ([]Receipt, int64, error) {
	args := m.Called(ctx, accountUUID, limit, offset)
	return args.Get(0).([]Receipt), args.Get(1).(int64), args.Error(2)
}

func (m *mockReceiptRepository) TokenExists(ctx context.Context, tokenID int64) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func TestReceiptService_ListReceipts_PaginationDefaults(t *testing.T) {
	repo := new(mockReceiptRepository)
	service := NewReceiptService(repo)

	repo.On("ListReceipts", mock.Anything, 10, 0).Return([]Receipt{}, int64(0), nil)

	_, _, err := service.ListReceipts(context.Background(), 0, 0)
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestReceiptService_ListReceiptsByToken(t *testing.T) {
	repo := new(mockReceiptRepository)
	service := NewReceiptService(repo)

	history := []Receipt{{ID: 1, TokenID: 7}, {ID: 4, TokenID: 7}}
	repo.On("TokenExists", mock.Anything, int64(7)).Return(true, nil)
	repo.On("ListReceiptsByToken", mock.Anything, int64(7)).Return(history, nil)

	got, err := service.ListReceiptsByToken(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, history, got)
}

func TestReceiptService_ListReceiptsByToken_UnknownToken(t *testing.T) {
	repo := new(mockReceiptRepository)
	service := NewReceiptService(repo)

	repo.On("TokenExists", mock.Anything, int64(9)).Return(false, nil)

	_, err := service.ListReceiptsByToken(context.Background(), 9)
	require.ErrorIs(t, err, ErrTokenNotFound)

	repo.AssertNotCalled(t, "ListReceiptsByToken", mock.Anything, mock.Anything)
}

func TestReceiptService_ListReceiptsByAccount(t *testing.T) {
	repo := new(mockReceiptRepository)
	service := NewReceiptService(repo)

	repo.On("ListReceiptsByAccount", mock.Anything, "some-uuid", 5, 5).Return([]Receipt{}, int64(0), nil)

	_, _, err := service.ListReceiptsByAccount(context.Background(), "some-uuid", 2, 5)
	require.NoError(t, err)

	repo.AssertExpectations(t)
}
