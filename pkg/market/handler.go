package market

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tokenbay/pkg/response"
)

type MarketHandler struct {
	service MarketService
}

func NewMarketHandler(service MarketService) *MarketHandler {
	return &MarketHandler{service: service}
}

func (h *MarketHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/market/listings", h.activeListings)
	router.GET("/market/stats", h.stats)
}

// @Summary      Browse active listings
// @Description  Pages through every active listing joined with its token, ordered by ascending token id. Restartable, so indexers can resume anywhere.
// @Tags         market
// @Produce      json
// @Param        page  query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  response.APIResponse{data=ActiveListingPage}
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /market/listings [get]
func (h *MarketHandler) activeListings(c *gin.Context) {
	page := parseIntQuery(c, "page", 1)
	limit := parseIntQuery(c, "limit", 20)

	items, total, err := h.service.ActiveListings(c.Request.Context(), page, limit)
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "active listings fetched", ActiveListingPage{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary      Marketplace stats
// @Description  Token count (highest assigned id), active listings and settled volume.
// @Tags         market
// @Produce      json
// @Success      200  {object}  response.APIResponse{data=Stats}
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /market/stats [get]
func (h *MarketHandler) stats(c *gin.Context) {
	s, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}
	response.SendAPIResponse(c, http.StatusOK, true, "stats fetched", s)
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
