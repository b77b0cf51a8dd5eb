package accounts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"tokenbay/pkg/response"
)

type AccountHandler struct {
	service AccountService
}

func NewAccountHandler(service AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

func (h *AccountHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/accounts", h.register)
	router.POST("/accounts/login", h.login)
	router.GET("/accounts", h.listAccounts)
	router.GET("/accounts/:uuid", h.getAccountByUUID)
	router.GET("/accounts/:uuid/balance", h.getBalance)
	router.POST("/accounts/:uuid/deposit", h.deposit)
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type depositRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// @Summary      Register account
// @Description  Creates a trading account. The returned uuid identifies the account in every ledger operation.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        request body registerRequest true "Register account request"
// @Success      201 {object} response.APIResponse{data=Account}
// @Failure      400 {object} response.APIResponse
// @Failure      500 {object} response.APIResponse
// @Router       /accounts [post]
func (h *AccountHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	a, err := h.service.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
		return
	}
	response.SendAPIResponse(c, http.StatusCreated, true, "account created", a)
}

// @Summary      Login
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        request body loginRequest true "Login request"
// @Success      200 {object} response.APIResponse{data=Account}
// @Failure      400 {object} response.APIResponse
// @Failure      401 {object} response.APIResponse
// @Router       /accounts/login [post]
func (h *AccountHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	a, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.SendAPIResponse(c, http.StatusUnauthorized, false, err.Error(), nil)
		return
	}
	response.SendAPIResponse(c, http.StatusOK, true, "login successful", a)
}

// @Summary      List accounts
// @Tags         accounts
// @Produce      json
// @Param        page  query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200 {object} response.APIResponse{data=AccountList}
// @Failure      500 {object} response.APIResponse
// @Router       /accounts [get]
func (h *AccountHandler) listAccounts(c *gin.Context) {
	page := parseIntQuery(c, "page", 1)
	limit := parseIntQuery(c, "limit", 10)

	items, total, err := h.service.ListAccounts(c.Request.Context(), page, limit)
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "accounts fetched", AccountList{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary      Get account by UUID
// @Tags         accounts
// @Produce      json
// @Param        uuid path string true "Account UUID"
// @Success      200 {object} response.APIResponse{data=Account}
// @Failure      404 {object} response.APIResponse
// @Failure      500 {object} response.APIResponse
// @Router       /accounts/{uuid} [get]
func (h *AccountHandler) getAccountByUUID(c *gin.Context) {
	a, err := h.service.GetAccountByUUID(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "account not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}
	response.SendAPIResponse(c, http.StatusOK, true, "account fetched", a)
}

// @Summary      Get account balance
// @Tags         accounts
// @Produce      json
// @Param        uuid path string true "Account UUID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      500 {object} response.APIResponse
// @Router       /accounts/{uuid}/balance [get]
func (h *AccountHandler) getBalance(c *gin.Context) {
	balance, err := h.service.GetBalance(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "account not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}
	response.SendAPIResponse(c, http.StatusOK, true, "balance fetched", gin.H{"balance": balance})
}

// @Summary      Deposit funds
// @Description  Credits the account balance. Funding is how buyers cover purchases.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        uuid    path string         true "Account UUID"
// @Param        request body depositRequest true "Deposit request"
// @Success      200 {object} response.APIResponse{data=Account}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      500 {object} response.APIResponse
// @Router       /accounts/{uuid}/deposit [post]
func (h *AccountHandler) deposit(c *gin.Context) {
	var req depositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	a, err := h.service.Deposit(c.Request.Context(), c.Param("uuid"), req.Amount)
	if err != nil {
		if errors.Is(err, ErrInvalidAmount) {
			response.SendAPIResponse(c, http.StatusBadRequest, false, "deposit amount must be positive", nil)
			return
		}
		if errors.Is(err, ErrAccountNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "account not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}
	response.SendAPIResponse(c, http.StatusOK, true, "deposit successful", a)
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
