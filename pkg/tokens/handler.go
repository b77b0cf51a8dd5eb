package tokens

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tokenbay/pkg/response"
)

// EventPublisher pushes marketplace events to live subscribers.
// Wired to the feed connection manager; may be nil in tests.
type EventPublisher interface {
	Broadcast(eventType string, payload any)
}

type TokenHandler struct {
	service   TokenService
	publisher EventPublisher
}

func NewTokenHandler(service TokenService, publisher EventPublisher) *TokenHandler {
	return &TokenHandler{service: service, publisher: publisher}
}

func (h *TokenHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/tokens", h.mintToken)
	router.GET("/tokens", h.listTokens)
	router.GET("/tokens/:id", h.getTokenByID)
	router.GET("/accounts/:uuid/tokens", h.listTokensByOwner)
}

type mintTokenRequest struct {
	CreatorUUID string `json:"creator_uuid" binding:"required"`
	TokenURI    string `json:"token_uri" binding:"required"`
}

// @Summary      Mint a token
// @Description  Registers a new unique token owned by its creator. The token URI points at off-ledger metadata and is stored verbatim.
// @Tags         tokens
// @Accept       json
// @Produce      json
// @Param        request body mintTokenRequest true "Mint request"
// @Success      201  {object}  response.APIResponse{data=Token} "Token minted"
// @Failure      400  {object}  response.APIResponse "Invalid request payload"
// @Failure      404  {object}  response.APIResponse "Creator account not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /tokens [post]
func (h *TokenHandler) mintToken(c *gin.Context) {
	var req mintTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	t, err := h.service.Mint(c.Request.Context(), req.CreatorUUID, req.TokenURI)
	if err != nil {
		if errors.Is(err, ErrInvalidTokenURI) {
			response.SendAPIResponse(c, http.StatusBadRequest, false, "token_uri must not be empty", nil)
			return
		}
		if errors.Is(err, ErrCreatorNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "creator account not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	if h.publisher != nil {
		h.publisher.Broadcast("token_minted", t)
	}

	response.SendAPIResponse(c, http.StatusCreated, true, "token minted", t)
}

// @Summary      Get token by ID
// @Tags         tokens
// @Produce      json
// @Param        id path int true "Token ID"
// @Success      200  {object}  response.APIResponse{data=Token}
// @Failure      400  {object}  response.APIResponse "Invalid token ID"
// @Failure      404  {object}  response.APIResponse "Token not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /tokens/{id} [get]
func (h *TokenHandler) getTokenByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid token id", nil)
		return
	}

	t, err := h.service.GetTokenByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "token not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}
	response.SendAPIResponse(c, http.StatusOK, true, "token fetched", t)
}

// @Summary      List tokens
// @Tags         tokens
// @Produce      json
// @Param        page  query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  response.APIResponse{data=TokenList}
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /tokens [get]
func (h *TokenHandler) listTokens(c *gin.Context) {
	page := parseIntQuery(c, "page", 1)
	limit := parseIntQuery(c, "limit", 10)

	items, total, err := h.service.ListTokens(c.Request.Context(), page, limit)
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "tokens fetched", TokenList{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary      List tokens owned by an account
// @Tags         tokens
// @Produce      json
// @Param        uuid  path  string true "Owner account UUID"
// @Param        page  query int    false "Page number"
// @Param        limit query int    false "Page size"
// @Success      200  {object}  response.APIResponse{data=TokenList}
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /accounts/{uuid}/tokens [get]
func (h *TokenHandler) listTokensByOwner(c *gin.Context) {
	page := parseIntQuery(c, "page", 1)
	limit := parseIntQuery(c, "limit", 10)

	items, total, err := h.service.ListTokensByOwner(c.Request.Context(), c.Param("uuid"), page, limit)
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "tokens fetched", TokenList{
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
