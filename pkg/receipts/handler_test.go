package receipts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tokenbay/pkg/response"
)

type mockReceiptService struct {
	mock.Mock
}

func (m *mockReceiptService) ListReceipts(ctx context.Context, page, limit int) ([]Receipt, int64, error) {
	args := m.Called(ctx, page, limit)
	return args.Get(0).([]Receipt), args.Get(1).(int64), args.Error(2)
}

func (m *mockReceiptService) ListReceiptsByToken(ctx context.Context, tokenID int64) ([]Receipt, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).([]Receipt), args.Error(1)
}

func (m *mockReceiptService) ListReceiptsByAccount(ctx context.Context, accountUUID string, page, limit int) ([]Receipt, int64, error) {
	args := m.Called(ctx, accountUUID, page, limit)
	return args.Get(0).([]Receipt), args.Get(1).(int64), args.Error(2)
}

func setupReceiptRouter(service ReceiptService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewReceiptHandler(service)
	handler.RegisterRoutes(router)
	return router
}

func TestReceiptHandler_ListReceipts(t *testing.T) {
	service := new(mockReceiptService)
	router := setupReceiptRouter(service)

	items := []Receipt{{ID: 2, TokenID: 1, Price: decimal.NewFromInt(5)}}
	service.On("ListReceipts", mock.Anything, 1, 10).Return(items, int64(1), nil)

	req := httptest.NewRequest(http.MethodGet, "/receipts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
}

func TestReceiptHandler_ListReceiptsByToken_NotFound(t *testing.T) {
	service := new(mockReceiptService)
	router := setupReceiptRouter(service)

	service.On("ListReceiptsByToken", mock.Anything, int64(9)).Return([]Receipt(nil), ErrTokenNotFound)

	req := httptest.NewRequest(http.MethodGet, "/tokens/9/receipts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestReceiptHandler_ListReceiptsByToken_InvalidID(t *testing.T) {
	service := new(mockReceiptService)
	router := setupReceiptRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/tokens/abc/receipts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "ListReceiptsByToken", mock.Anything, mock.Anything)
}

func TestReceiptHandler_ListReceiptsByAccount(t *testing.T) {
	service := new(mockReceiptService)
	router := setupReceiptRouter(service)

	service.On("ListReceiptsByAccount", mock.Anything, "some-uuid", 1, 10).Return([]Receipt{}, int64(0), nil)

	req := httptest.NewRequest(http.MethodGet, "/accounts/some-uuid/receipts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}
