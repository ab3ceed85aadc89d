package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/protecfeu/erp_backend/internal/core/ports/services"
	"github.com/protecfeu/erp_backend/internal/dto"
	"github.com/protecfeu/erp_backend/internal/middleware"
)

// deliveryHandler handles HTTP requests related to deliveries.
type deliveryHandler struct {
	deliveryService portssvc.DeliveryService
}

func newDeliveryHandler(ds portssvc.DeliveryService) *deliveryHandler {
	return &deliveryHandler{deliveryService: ds}
}

// registerDeliveryRoutes registers routes related to deliveries.
func registerDeliveryRoutes(rg *gin.RouterGroup, deliveryService portssvc.DeliveryService) {
	h := newDeliveryHandler(deliveryService)

	deliveries := rg.Group("/deliveries")
	{
		deliveries.POST("", h.createDelivery)
		deliveries.GET("", h.listDeliveries)
		deliveries.GET("/:deliveryID", h.getDelivery)
		deliveries.PATCH("/:deliveryID/status", h.updateStatus)
	}
}

// createDelivery godoc
// @Summary Create a delivery
// @Description Creates a delivery wrapping optional outbound/inbound stock moves
// @Tags deliveries
// @Accept json
// @Produce json
// @Param delivery body dto.CreateDeliveryRequest true "Delivery details"
// @Success 201 {object} dto.DeliveryResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Move or status not found"
// @Failure 500 {object} map[string]string "Failed to create delivery"
// @Security BearerAuth
// @Router /deliveries [post]
func (h *deliveryHandler) createDelivery(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createDelivery", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	delivery, err := h.deliveryService.CreateDelivery(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create delivery")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDeliveryResponse(delivery))
}

// getDelivery godoc
// @Summary Get a delivery by ID
// @Tags deliveries
// @Produce json
// @Param deliveryID path int true "Delivery ID"
// @Success 200 {object} dto.DeliveryResponse
// @Failure 404 {object} map[string]string "Delivery not found"
// @Security BearerAuth
// @Router /deliveries/{deliveryID} [get]
func (h *deliveryHandler) getDelivery(c *gin.Context) {
	deliveryID, ok := parseIDParam(c, "deliveryID")
	if !ok {
		return
	}
	delivery, err := h.deliveryService.GetDeliveryByID(c.Request.Context(), deliveryID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve delivery")
		return
	}
	c.JSON(http.StatusOK, dto.ToDeliveryResponse(delivery))
}

// listDeliveries godoc
// @Summary List deliveries
// @Tags deliveries
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {array} dto.DeliveryResponse
// @Security BearerAuth
// @Router /deliveries [get]
func (h *deliveryHandler) listDeliveries(c *gin.Context) {
	var pagination dto.PaginationQuery
	if err := c.ShouldBindQuery(&pagination); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters: " + err.Error()})
		return
	}
	limit, offset := pagination.LimitOffset()

	deliveries, err := h.deliveryService.ListDeliveries(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list deliveries")
		return
	}
	c.JSON(http.StatusOK, dto.ToDeliveryResponses(deliveries))
}

// updateStatus godoc
// @Summary Update a delivery's status
// @Description Overwrites the status pointer; any known status may replace any other
// @Tags deliveries
// @Accept json
// @Produce json
// @Param deliveryID path int true "Delivery ID"
// @Param status body dto.UpdateDeliveryStatusRequest true "New status"
// @Success 200 {object} dto.ResponseMessage
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "Delivery or status not found"
// @Security BearerAuth
// @Router /deliveries/{deliveryID}/status [patch]
func (h *deliveryHandler) updateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	deliveryID, ok := parseIDParam(c, "deliveryID")
	if !ok {
		return
	}
	var req dto.UpdateDeliveryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.deliveryService.UpdateDeliveryStatus(c.Request.Context(), deliveryID, req); err != nil {
		respondServiceError(c, err, "Failed to update delivery status")
		return
	}
	c.JSON(http.StatusOK, dto.ResponseMessage{Message: "Delivery status updated", Success: true})
}
