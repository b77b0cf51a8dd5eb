package trade

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"tokenbay/pkg/response"
)

// EventPublisher pushes marketplace events to live subscribers.
type EventPublisher interface {
	Broadcast(eventType string, payload any)
}

type TradeHandler struct {
	service   TradeService
	publisher EventPublisher
}

func NewTradeHandler(service TradeService, publisher EventPublisher) *TradeHandler {
	return &TradeHandler{service: service, publisher: publisher}
}

func (h *TradeHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/purchases", h.purchase)
}

type purchaseRequest struct {
	TokenID   int64           `json:"token_id" binding:"required"`
	BuyerUUID string          `json:"buyer_uuid" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

// @Summary      Purchase a listed token
// @Description  Atomically closes the listing, transfers ownership to the buyer and moves exactly the listing price from buyer to seller. Payment must match the price to the unit.
// @Tags         trade
// @Accept       json
// @Produce      json
// @Param        request body purchaseRequest true "Purchase request"
// @Success      201  {object}  response.APIResponse{data=Receipt} "Purchase settled"
// @Failure      400  {object}  response.APIResponse "Invalid payload or wrong amount"
// @Failure      404  {object}  response.APIResponse "Buyer account not found"
// @Failure      409  {object}  response.APIResponse "Not listed, self purchase or insufficient funds"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /purchases [post]
func (h *TradeHandler) purchase(c *gin.Context) {
	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	if req.TokenID <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "token_id must be positive", nil)
		return
	}

	receipt, err := h.service.Purchase(c.Request.Context(), req.TokenID, req.BuyerUUID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotListed):
			response.SendAPIResponse(c, http.StatusConflict, false, "token has no active listing", nil)
		case errors.Is(err, ErrSelfPurchase):
			response.SendAPIResponse(c, http.StatusConflict, false, "buyer already owns the token", nil)
		case errors.Is(err, ErrWrongAmount):
			response.SendAPIResponse(c, http.StatusBadRequest, false, "amount must equal the listing price", nil)
		case errors.Is(err, ErrInsufficientFunds):
			response.SendAPIResponse(c, http.StatusConflict, false, "buyer balance cannot cover the price", nil)
		case errors.Is(err, ErrBuyerNotFound):
			response.SendAPIResponse(c, http.StatusNotFound, false, "buyer account not found", nil)
		default:
			response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		}
		return
	}

	if h.publisher != nil {
		h.publisher.Broadcast("token_sold", receipt)
	}

	response.SendAPIResponse(c, http.StatusCreated, true, "purchase settled", receipt)
}
