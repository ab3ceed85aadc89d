package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/protecfeu/erp_backend/internal/core/ports/services"
	"github.com/protecfeu/erp_backend/internal/dto"
	"github.com/protecfeu/erp_backend/internal/middleware"
)

// ledgerHandler handles HTTP requests for the double-entry ledger.
type ledgerHandler struct {
	ledgerService portssvc.LedgerService
}

func newLedgerHandler(ls portssvc.LedgerService) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers ledger line and report routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerService, reportingService portssvc.ReportingService) {
	h := newLedgerHandler(ledgerService)
	rh := newReportingHandler(reportingService)

	ledger := rg.Group("/ledger")
	{
		ledger.POST("/lines", h.postLine)
		ledger.GET("/lines", h.listLines)
		ledger.GET("/lines/:lineID", h.getLine)
		ledger.GET("/balance", rh.trialBalance)
		ledger.GET("/profit-loss", rh.profitAndLoss)
	}
}

// postLine godoc
// @Summary Post a ledger line
// @Description Appends one double-entry line debiting one account and crediting another
// @Tags ledger
// @Accept json
// @Produce json
// @Param line body dto.CreateLedgerLineRequest true "Ledger line details"
// @Success 201 {object} dto.LedgerLineResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account, currency or category not found"
// @Failure 500 {object} map[string]string "Failed to post ledger line"
// @Security BearerAuth
// @Router /ledger/lines [post]
func (h *ledgerHandler) postLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLedgerLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for postLine", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	line, err := h.ledgerService.PostLine(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to post ledger line")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLedgerLineResponse(line))
}

// getLine godoc
// @Summary Get a ledger line by ID
// @Description Retrieves one immutable ledger line
// @Tags ledger
// @Produce json
// @Param lineID path int true "Ledger line ID"
// @Success 200 {object} dto.LedgerLineResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Ledger line not found"
// @Failure 500 {object} map[string]string "Failed to retrieve ledger line"
// @Security BearerAuth
// @Router /ledger/lines/{lineID} [get]
func (h *ledgerHandler) getLine(c *gin.Context) {
	lineID, ok := parseIDParam(c, "lineID")
	if !ok {
		return
	}
	line, err := h.ledgerService.GetLineByID(c.Request.Context(), lineID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve ledger line")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerLineResponse(line))
}

// listLines godoc
// @Summary List ledger lines
// @Description Lists ledger lines newest first, optionally filtered to one account
// @Tags ledger
// @Produce json
// @Param accountID query int false "Filter to lines touching this account on either side"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {array} dto.LedgerLineResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list ledger lines"
// @Security BearerAuth
// @Router /ledger/lines [get]
func (h *ledgerHandler) listLines(c *gin.Context) {
	var pagination dto.PaginationQuery
	if err := c.ShouldBindQuery(&pagination); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters: " + err.Error()})
		return
	}
	limit, offset := pagination.LimitOffset()

	var accountID *int64
	if raw := c.Query("accountID"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid accountID parameter"})
			return
		}
		accountID = &parsed
	}

	lines, err := h.ledgerService.ListLines(c.Request.Context(), accountID, limit, offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list ledger lines")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerLineResponses(lines))
}
