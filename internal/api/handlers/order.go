package handlers

import (
	"fmt"

	"nsbridge/internal/integration"
	"nsbridge/internal/logger"
	"nsbridge/internal/models"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	coordinator *integration.Coordinator
	logger      *logger.Logger
}

func NewOrderHandler(coordinator *integration.Coordinator, logger *logger.Logger) *OrderHandler {
	return &OrderHandler{coordinator: coordinator, logger: logger}
}

// AddOrder imports a storefront order, or reconciles the paid state when the
// order was already imported.
func (h *OrderHandler) AddOrder(c *gin.Context) {
	event, err := h.bind(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	result, err := h.coordinator.ImportOrder(event)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respond(c, result)
}

// UpdateOrder cancels the order when the event is marked cancelled,
// otherwise behaves like AddOrder.
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	event, err := h.bind(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	result, err := h.coordinator.UpdateOrder(event)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respond(c, result)
}

func (h *OrderHandler) bind(c *gin.Context) (models.OrderEvent, error) {
	var event models.OrderEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		return event, fmt.Errorf("invalid order payload: %w", err)
	}
	if event.Order.Number == "" {
		return event, fmt.Errorf("order payload is missing its number")
	}
	return event, nil
}
