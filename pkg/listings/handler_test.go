package listings

import (
	"bytes"
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

type mockListingService struct {
	mock.Mock
}

func (m *mockListingService) CreateListing(ctx context.Context, tokenID int64, sellerUUID string, price decimal.Decimal) (Listing, error) {
	args := m.Called(ctx, tokenID, sellerUUID, price)
	return args.Get(0).(Listing), args.Error(1)
}

func (m *mockListingService) CancelListing(ctx context.Context, listingID int64, callerUUID string) error {
	args := m.Called(ctx, listingID, callerUUID)
	return args.Error(0)
}

func (m *mockListingService) GetListingByID(ctx context.Context, listingID int64) (Listing, error) {
	args := m.Called(ctx, listingID)
	return args.Get(0).(Listing), args.Error(1)
}

func (m *mockListingService) ActiveListingForToken(ctx context.Context, tokenID int64) (Listing, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(Listing), args.Error(1)
}

func setupListingRouter(service ListingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewListingHandler(service, nil)
	handler.RegisterRoutes(router)
	return router
}

func TestListingHandler_CreateListing(t *testing.T) {
	service := new(mockListingService)
	router := setupListingRouter(service)

	price := decimal.NewFromInt(5)
	created := Listing{ID: 1, TokenID: 3, SellerUUID: "alice", Price: price, Active: true}
	service.On("CreateListing", mock.Anything, int64(3), "alice", price).Return(created, nil)

	body, _ := json.Marshal(gin.H{"token_id": 3, "seller_uuid": "alice", "price": "5"})
	req := httptest.NewRequest(http.MethodPost, "/listings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
}

func TestListingHandler_CreateListing_NotOwner(t *testing.T) {
	service := new(mockListingService)
	router := setupListingRouter(service)

	service.On("CreateListing", mock.Anything, int64(3), "bob", mock.Anything).Return(Listing{}, ErrNotOwner)

	body, _ := json.Marshal(gin.H{"token_id": 3, "seller_uuid": "bob", "price": "5"})
	req := httptest.NewRequest(http.MethodPost, "/listings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestListingHandler_CreateListing_AlreadyListed(t *testing.T) {
	service := new(mockListingService)
	router := setupListingRouter(service)

	service.On("CreateListing", mock.Anything, int64(3), "alice", mock.Anything).Return(Listing{}, ErrAlreadyListed)

	body, _ := json.Marshal(gin.H{"token_id": 3, "seller_uuid": "alice", "price": "5"})
	req := httptest.NewRequest(http.MethodPost, "/listings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestListingHandler_CreateListing_InvalidPayload(t *testing.T) {
	service := new(mockListingService)
	router := setupListingRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/listings", bytes.NewReader([]byte(`{"token_id": 3}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "CreateListing", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListingHandler_CancelListing(t *testing.T) {
	service := new(mockListingService)
	router := setupListingRouter(service)

	service.On("CancelListing", mock.Anything, int64(7), "alice").Return(nil)

	body, _ := json.Marshal(gin.H{"caller_uuid": "alice"})
	req := httptest.NewRequest(http.MethodPatch, "/listings/7/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestListingHandler_CancelListing_NotSeller(t *testing.T) {
	service := new(mockListingService)
	router := setupListingRouter(service)

	service.On("CancelListing", mock.Anything, int64(7), "mallory").Return(ErrNotSeller)

	body, _ := json.Marshal(gin.H{"caller_uuid": "mallory"})
	req := httptest.NewRequest(http.MethodPatch, "/listings/7/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestListingHandler_CancelListing_NotActive(t *testing.T) {
	service := new(mockListingService)
	router := setupListingRouter(service)

	service.On("CancelListing", mock.Anything, int64(7), "alice").Return(ErrNotActive)

	body, _ := json.Marshal(gin.H{"caller_uuid": "alice"})
	req := httptest.NewRequest(http.MethodPatch, "/listings/7/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestListingHandler_GetListingByID_NotFound(t *testing.T) {
	service := new(mockListingService)
	router := setupListingRouter(service)

	service.On("GetListingByID", mock.Anything, int64(99)).Return(Listing{}, ErrListingNotFound)

	req := httptest.NewRequest(http.MethodGet, "/listings/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListingHandler_ActiveListingForToken(t *testing.T) {
	service := new(mockListingService)
	router := setupListingRouter(service)

	l := Listing{ID: 4, TokenID: 2, SellerUUID: "alice", Price: decimal.NewFromInt(9), Active: true}
	service.On("ActiveListingForToken", mock.Anything, int64(2)).Return(l, nil)

	req := httptest.NewRequest(http.MethodGet, "/tokens/2/listing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
}
