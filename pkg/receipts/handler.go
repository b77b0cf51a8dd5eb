package receipts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tokenbay/pkg/response"
)

type ReceiptHandler struct {
	service ReceiptService
}

func NewReceiptHandler(service ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{service: service}
}

func (h *ReceiptHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/receipts", h.listReceipts)
	router.GET("/tokens/:id/receipts", h.listReceiptsByToken)
	router.GET("/accounts/:uuid/receipts", h.listReceiptsByAccount)
}

// @Summary      List settlement receipts
// @Tags         receipts
// @Produce      json
// @Param        page  query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  response.APIResponse{data=ReceiptList}
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /receipts [get]
func (h *ReceiptHandler) listReceipts(c *gin.Context) {
	page := parseIntQuery(c, "page", 1)
	limit := parseIntQuery(c, "limit", 10)

	items, total, err := h.service.ListReceipts(c.Request.Context(), page, limit)
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "receipts fetched", ReceiptList{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary      Token provenance
// @Description  Every settled sale of the token, oldest first.
// @Tags         receipts
// @Produce      json
// @Param        id path int true "Token ID"
// @Success      200  {object}  response.APIResponse{data=[]Receipt}
// @Failure      400  {object}  response.APIResponse "Invalid token ID"
// @Failure      404  {object}  response.APIResponse "Token not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /tokens/{id}/receipts [get]
func (h *ReceiptHandler) listReceiptsByToken(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid token id", nil)
		return
	}

	items, err := h.service.ListReceiptsByToken(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "token not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}
	response.SendAPIResponse(c, http.StatusOK, true, "receipts fetched", items)
}

// @Summary      List an account's settlements
// @Description  Settlements in which the account was buyer or seller, newest first.
// @Tags         receipts
// @Produce      json
// @Param        uuid  path  string true "Account UUID"
// @Param        page  query int    false "Page number"
// @Param        limit query int    false "Page size"
// @Success      200  {object}  response.APIResponse{data=ReceiptList}
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /accounts/{uuid}/receipts [get]
func (h *ReceiptHandler) listReceiptsByAccount(c *gin.Context) {
	page := parseIntQuery(c, "page", 1)
	limit := parseIntQuery(c, "limit", 10)

	items, total, err := h.service.ListReceiptsByAccount(c.Request.Context(), c.Param("uuid"), page, limit)
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "receipts fetched", ReceiptList{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

func parseIntQuery(c *gin.Context, key string, defaultValue int) int {
	v := c.Query(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}
