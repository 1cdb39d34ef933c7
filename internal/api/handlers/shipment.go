package handlers

import (
	"fmt"

	"nsbridge/internal/integration"
	"nsbridge/internal/logger"
	"nsbridge/internal/models"

	"github.com/gin-gonic/gin"
)

type ShipmentHandler struct {
	coordinator *integration.Coordinator
	logger      *logger.Logger
}

func NewShipmentHandler(coordinator *integration.Coordinator, logger *logger.Logger) *ShipmentHandler {
	return &ShipmentHandler{coordinator: coordinator, logger: logger}
}

// Create fulfills and, when the order reaches pending billing, invoices the
// sales order a storefront shipment points at.
func (h *ShipmentHandler) Create(c *gin.Context) {
	var event models.ShipmentEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		respondError(c, h.logger, fmt.Errorf("invalid shipment payload: %w", err))
		return
	}
	if event.Shipment.OrderRef() == "" {
		respondError(c, h.logger, fmt.Errorf("shipment payload is missing its order reference"))
		return
	}

	result, err := h.coordinator.ImportShipment(event)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	result.Notices = append(result.Notices, models.Notification{Type: "info", Message: result.Summary})
	respond(c, result)
}
