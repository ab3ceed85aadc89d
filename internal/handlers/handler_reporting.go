package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/protecfeu/erp_backend/internal/core/ports/services"
	"github.com/protecfeu/erp_backend/internal/dto"
)

// reportingHandler handles the derived financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// trialBalance godoc
// @Summary Trial balance
// @Description Derives every account's debit-minus-credit balance from the full ledger
// @Tags reporting
// @Produce json
// @Success 200 {array} dto.TrialBalanceRowResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute trial balance"
// @Security BearerAuth
// @Router /ledger/balance [get]
func (h *reportingHandler) trialBalance(c *gin.Context) {
	report, err := h.reportingService.TrialBalance(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to compute trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponses(report))
}

// profitAndLoss godoc
// @Summary Profit and loss
// @Description Aggregates income and expense account activity into a simplified income statement
// @Tags reporting
// @Produce json
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute profit and loss"
// @Security BearerAuth
// @Router /ledger/profit-loss [get]
func (h *reportingHandler) profitAndLoss(c *gin.Context) {
	report, err := h.reportingService.ProfitAndLoss(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to compute profit and loss")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report))
}
