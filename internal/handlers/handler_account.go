package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/protecfeu/erp_backend/internal/core/ports/services"
	"github.com/protecfeu/erp_backend/internal/dto"
	"github.com/protecfeu/erp_backend/internal/middleware"
)

// accountHandler handles HTTP requests related to ledger accounts.
type accountHandler struct {
	accountService portssvc.AccountService
}

func newAccountHandler(as portssvc.AccountService) *accountHandler {
	return &accountHandler{accountService: as}
}

// registerAccountRoutes registers routes related to ledger accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountService) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/ledger/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
	}
}

// createAccount godoc
// @Summary Create a ledger account
// @Description Creates a general ledger account of one of the five types
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Account label already in use"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Security BearerAuth
// @Router /ledger/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary Get a ledger account by ID
// @Description Retrieves one general ledger account
// @Tags accounts
// @Produce json
// @Param accountID path int true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Security BearerAuth
// @Router /ledger/accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	accountID, ok := parseIDParam(c, "accountID")
	if !ok {
		return
	}
	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List ledger accounts
// @Description Lists accounts ordered by type then label
// @Tags accounts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {array} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /ledger/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	var pagination dto.PaginationQuery
	if err := c.ShouldBindQuery(&pagination); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters: " + err.Error()})
		return
	}
	limit, offset := pagination.LimitOffset()

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}
