package listings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"tokenbay/pkg/response"
)

// EventPublisher pushes marketplace events to live subscribers.
type EventPublisher interface {
	Broadcast(eventType string, payload any)
}

type ListingHandler struct {
	service   ListingService
	publisher EventPublisher
}

func NewListingHandler(service ListingService, publisher EventPublisher) *ListingHandler {
	return &ListingHandler{service: service, publisher: publisher}
}

func (h *ListingHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/listings", h.createListing)
	router.PATCH("/listings/:id/cancel", h.cancelListing)
	router.GET("/listings/:id", h.getListingByID)
	router.GET("/tokens/:id/listing", h.activeListingForToken)
}

type createListingRequest struct {
	TokenID    int64           `json:"token_id" binding:"required"`
	SellerUUID string          `json:"seller_uuid" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
}

type cancelListingRequest struct {
	CallerUUID string `json:"caller_uuid" binding:"required"`
}

// @Summary      Create a listing
// @Description  Offers a token for sale at a fixed price. Fails if the seller does not own the token or the token already has an active listing.
// @Tags         listings
// @Accept       json
// @Produce      json
// @Param        request body createListingRequest true "Listing creation request"
// @Success      201  {object}  response.APIResponse{data=Listing} "Listing created"
// @Failure      400  {object}  response.APIResponse "Invalid request payload or price"
// @Failure      403  {object}  response.APIResponse "Seller does not own the token"
// @Failure      404  {object}  response.APIResponse "Token not found"
// @Failure      409  {object}  response.APIResponse "Token already listed"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /listings [post]
func (h *ListingHandler) createListing(c *gin.Context) {
	var req createListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	if req.TokenID <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "token_id must be positive", nil)
		return
	}

	l, err := h.service.CreateListing(c.Request.Context(), req.TokenID, req.SellerUUID, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, ErrTokenNotFound):
			response.SendAPIResponse(c, http.StatusNotFound, false, "token not found", nil)
		case errors.Is(err, ErrNotOwner):
			response.SendAPIResponse(c, http.StatusForbidden, false, "seller does not own the token", nil)
		case errors.Is(err, ErrInvalidPrice):
			response.SendAPIResponse(c, http.StatusBadRequest, false, "price must be positive", nil)
		case errors.Is(err, ErrAlreadyListed):
			response.SendAPIResponse(c, http.StatusConflict, false, "token already has an active listing", nil)
		default:
			response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		}
		return
	}

	if h.publisher != nil {
		h.publisher.Broadcast("token_listed", l)
	}

	response.SendAPIResponse(c, http.StatusCreated, true, "listing created", l)
}

// @Summary      Cancel a listing
// @Description  Deactivates an active listing. Only the seller may cancel; no funds move.
// @Tags         listings
// @Accept       json
// @Produce      json
// @Param        id      path int                  true "Listing ID"
// @Param        request body cancelListingRequest true "Cancel request"
// @Success      200  {object}  response.APIResponse "Listing cancelled"
// @Failure      400  {object}  response.APIResponse "Invalid listing ID"
// @Failure      403  {object}  response.APIResponse "Caller is not the seller"
// @Failure      404  {object}  response.APIResponse "Listing not found"
// @Failure      409  {object}  response.APIResponse "Listing is not active"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /listings/{id}/cancel [patch]
func (h *ListingHandler) cancelListing(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid listing id", nil)
		return
	}

	var req cancelListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	if err := h.service.CancelListing(c.Request.Context(), id, req.CallerUUID); err != nil {
		switch {
		case errors.Is(err, ErrListingNotFound):
			response.SendAPIResponse(c, http.StatusNotFound, false, "listing not found", nil)
		case errors.Is(err, ErrNotSeller):
			response.SendAPIResponse(c, http.StatusForbidden, false, "caller is not the listing seller", nil)
		case errors.Is(err, ErrNotActive):
			response.SendAPIResponse(c, http.StatusConflict, false, "listing is not active", nil)
		default:
			response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		}
		return
	}

	if h.publisher != nil {
		h.publisher.Broadcast("listing_cancelled", gin.H{"listing_id": id})
	}

	response.SendAPIResponse(c, http.StatusOK, true, "listing cancelled", nil)
}

// @Summary      Get listing by ID
// @Tags         listings
// @Produce      json
// @Param        id path int true "Listing ID"
// @Success      200  {object}  response.APIResponse{data=Listing}
// @Failure      400  {object}  response.APIResponse "Invalid listing ID"
// @Failure      404  {object}  response.APIResponse "Listing not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /listings/{id} [get]
func (h *ListingHandler) getListingByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid listing id", nil)
		return
	}

	l, err := h.service.GetListingByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrListingNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "listing not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}
	response.SendAPIResponse(c, http.StatusOK, true, "listing fetched", l)
}

// @Summary      Get the active listing for a token
// @Tags         listings
// @Produce      json
// @Param        id path int true "Token ID"
// @Success      200  {object}  response.APIResponse{data=Listing}
// @Failure      400  {object}  response.APIResponse "Invalid token ID"
// @Failure      404  {object}  response.APIResponse "No active listing"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /tokens/{id}/listing [get]
func (h *ListingHandler) activeListingForToken(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid token id", nil)
		return
	}

	l, err := h.service.ActiveListingForToken(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrListingNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "no active listing for token", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}
	response.SendAPIResponse(c, http.StatusOK, true, "listing fetched", l)
}
