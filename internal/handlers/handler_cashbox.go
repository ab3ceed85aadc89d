package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/protecfeu/erp_backend/internal/core/ports/services"
	"github.com/protecfeu/erp_backend/internal/dto"
	"github.com/protecfeu/erp_backend/internal/middleware"
)

// cashBoxHandler handles the project cash box endpoints.
type cashBoxHandler struct {
	cashBoxService portssvc.CashBoxService
}

func newCashBoxHandler(cs portssvc.CashBoxService) *cashBoxHandler {
	return &cashBoxHandler{cashBoxService: cs}
}

// registerCashBoxRoutes registers cash box routes under /projects/:projectID/cash.
func registerCashBoxRoutes(projects *gin.RouterGroup, cashBoxService portssvc.CashBoxService) {
	h := newCashBoxHandler(cashBoxService)

	cash := projects.Group("/:projectID/cash")
	{
		cash.POST("", h.createCashBox)
		cash.GET("/balance", h.getBalance)
		cash.POST("/top-up", h.topUp)
		cash.POST("/expense", h.expense)
		cash.GET("/ledger", h.getStatement)
	}
}

// createCashBox godoc
// @Summary Create a project cash box
// @Description Binds a cash box and its backing ASSET account to a project
// @Tags cash
// @Accept json
// @Produce json
// @Param projectID path int true "Project ID"
// @Param cashBox body dto.CreateCashBoxRequest true "Cash box details"
// @Success 201 {object} dto.CashBoxResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 409 {object} map[string]string "Project already has a cash box"
// @Failure 500 {object} map[string]string "Failed to create cash box"
// @Security BearerAuth
// @Router /projects/{projectID}/cash [post]
func (h *cashBoxHandler) createCashBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID, ok := parseIDParam(c, "projectID")
	if !ok {
		return
	}
	var req dto.CreateCashBoxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCashBox", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	box, err := h.cashBoxService.CreateCashBox(c.Request.Context(), projectID, req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create cash box")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCashBoxResponse(box))
}

// getBalance godoc
// @Summary Get the cash box balance
// @Description Derives the box balance from its ledger lines; nothing is stored
// @Tags cash
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} dto.CashBalanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Cash box not found"
// @Failure 500 {object} map[string]string "Failed to derive balance"
// @Security BearerAuth
// @Router /projects/{projectID}/cash/balance [get]
func (h *cashBoxHandler) getBalance(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectID")
	if !ok {
		return
	}
	balance, err := h.cashBoxService.Balance(c.Request.Context(), projectID)
	if err != nil {
		respondServiceError(c, err, "Failed to derive balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashBalanceResponse(balance))
}

// topUp godoc
// @Summary Top up the cash box
// @Description Posts a ledger line debiting the box account and crediting the funding account
// @Tags cash
// @Accept json
// @Produce json
// @Param projectID path int true "Project ID"
// @Param topUp body dto.CashTopUpRequest true "Top-up details"
// @Success 201 {object} dto.LedgerLineResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Cash box or currency not found"
// @Failure 500 {object} map[string]string "Failed to post top-up"
// @Security BearerAuth
// @Router /projects/{projectID}/cash/top-up [post]
func (h *cashBoxHandler) topUp(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID, ok := parseIDParam(c, "projectID")
	if !ok {
		return
	}
	var req dto.CashTopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for topUp", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	line, err := h.cashBoxService.TopUp(c.Request.Context(), projectID, req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to post top-up")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLedgerLineResponse(line))
}

// expense godoc
// @Summary Record a cash expense
// @Description Posts a ledger line crediting the box account and debiting the category's expense account
// @Tags cash
// @Accept json
// @Produce json
// @Param projectID path int true "Project ID"
// @Param expense body dto.CashExpenseRequest true "Expense details"
// @Success 201 {object} dto.LedgerLineResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Cash box, currency or category not found"
// @Failure 500 {object} map[string]string "Failed to post expense"
// @Security BearerAuth
// @Router /projects/{projectID}/cash/expense [post]
func (h *cashBoxHandler) expense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID, ok := parseIDParam(c, "projectID")
	if !ok {
		return
	}
	var req dto.CashExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for expense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	line, err := h.cashBoxService.Expense(c.Request.Context(), projectID, req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to post expense")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLedgerLineResponse(line))
}

// getStatement godoc
// @Summary Get the cash box statement
// @Description Returns the box's ledger lines newest first, tagged IN/OUT with running balances
// @Tags cash
// @Produce json
// @Param projectID path int true "Project ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {array} dto.CashStatementEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Cash box not found"
// @Failure 500 {object} map[string]string "Failed to build statement"
// @Security BearerAuth
// @Router /projects/{projectID}/cash/ledger [get]
func (h *cashBoxHandler) getStatement(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectID")
	if !ok {
		return
	}
	var pagination dto.PaginationQuery
	if err := c.ShouldBindQuery(&pagination); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters: " + err.Error()})
		return
	}
	limit, offset := pagination.LimitOffset()

	statement, err := h.cashBoxService.Statement(c.Request.Context(), projectID, limit, offset)
	if err != nil {
		respondServiceError(c, err, "Failed to build statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashStatementResponses(statement))
}
