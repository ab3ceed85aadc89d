package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/protecfeu/erp_backend/internal/core/ports/services"
	"github.com/protecfeu/erp_backend/internal/dto"
	"github.com/protecfeu/erp_backend/internal/middleware"
)

// referenceHandler handles the reference-data lookup tables.
type referenceHandler struct {
	referenceService portssvc.ReferenceService
}

func newReferenceHandler(rs portssvc.ReferenceService) *referenceHandler {
	return &referenceHandler{referenceService: rs}
}

// registerReferenceRoutes registers currency, expense category and delivery
// status routes.
func registerReferenceRoutes(rg *gin.RouterGroup, referenceService portssvc.ReferenceService) {
	h := newReferenceHandler(referenceService)

	currencies := rg.Group("/currencies")
	{
		currencies.POST("", h.createCurrency)
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:currencyCode", h.getCurrency)
	}

	categories := rg.Group("/expense-categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
	}

	statuses := rg.Group("/delivery-statuses")
	{
		statuses.POST("", h.createDeliveryStatus)
		statuses.GET("", h.listDeliveryStatuses)
	}
}

// createCurrency godoc
// @Summary Register a currency
// @Tags reference
// @Accept json
// @Produce json
// @Param currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Security BearerAuth
// @Router /currencies [post]
func (h *referenceHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	currency, err := h.referenceService.CreateCurrency(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to save currency")
		return
	}
	c.JSON(http.StatusCreated, dto.CurrencyResponse(*currency))
}

// getCurrency godoc
// @Summary Get a currency by code
// @Tags reference
// @Produce json
// @Param currencyCode path string true "ISO-4217 code"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} map[string]string "Currency not found"
// @Security BearerAuth
// @Router /currencies/{currencyCode} [get]
func (h *referenceHandler) getCurrency(c *gin.Context) {
	currency, err := h.referenceService.GetCurrencyByCode(c.Request.Context(), c.Param("currencyCode"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve currency")
		return
	}
	c.JSON(http.StatusOK, dto.CurrencyResponse(*currency))
}

// listCurrencies godoc
// @Summary List currencies
// @Tags reference
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *referenceHandler) listCurrencies(c *gin.Context) {
	currencies, err := h.referenceService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list currencies")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponses(currencies))
}

// createCategory godoc
// @Summary Create an expense category
// @Description Creates a category, optionally bound to the EXPENSE account its cash expenses post against
// @Tags reference
// @Accept json
// @Produce json
// @Param category body dto.CreateExpenseCategoryRequest true "Category details"
// @Success 201 {object} dto.ExpenseCategoryResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /expense-categories [post]
func (h *referenceHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	category, err := h.referenceService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create expense category")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenseCategoryResponse(category))
}

// listCategories godoc
// @Summary List expense categories
// @Tags reference
// @Produce json
// @Success 200 {array} dto.ExpenseCategoryResponse
// @Security BearerAuth
// @Router /expense-categories [get]
func (h *referenceHandler) listCategories(c *gin.Context) {
	categories, err := h.referenceService.ListCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list expense categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseCategoryResponses(categories))
}

// createDeliveryStatus godoc
// @Summary Create a delivery status
// @Tags reference
// @Accept json
// @Produce json
// @Param status body dto.CreateDeliveryStatusRequest true "Status details"
// @Success 201 {object} dto.DeliveryStatusResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Security BearerAuth
// @Router /delivery-statuses [post]
func (h *referenceHandler) createDeliveryStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDeliveryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createDeliveryStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	status, err := h.referenceService.CreateDeliveryStatus(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create delivery status")
		return
	}
	c.JSON(http.StatusCreated, dto.DeliveryStatusResponse(*status))
}

// listDeliveryStatuses godoc
// @Summary List delivery statuses
// @Tags reference
// @Produce json
// @Success 200 {array} dto.DeliveryStatusResponse
// @Security BearerAuth
// @Router /delivery-statuses [get]
func (h *referenceHandler) listDeliveryStatuses(c *gin.Context) {
	statuses, err := h.referenceService.ListDeliveryStatuses(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list delivery statuses")
		return
	}
	c.JSON(http.StatusOK, dto.ToDeliveryStatusResponses(statuses))
}
