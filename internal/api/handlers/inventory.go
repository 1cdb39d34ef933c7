package handlers

import (
	"fmt"

	"nsbridge/internal/integration"
	"nsbridge/internal/logger"
	"nsbridge/internal/models"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	coordinator *integration.Coordinator
	logger      *logger.Logger
}

func NewInventoryHandler(coordinator *integration.Coordinator, logger *logger.Logger) *InventoryHandler {
	return &InventoryHandler{coordinator: coordinator, logger: logger}
}

// Stock answers an inventory poll with a stock:actual message. Unknown skus
// are a 200 with no message.
func (h *InventoryHandler) Stock(c *gin.Context) {
	var query models.InventoryQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		respondError(c, h.logger, fmt.Errorf("invalid inventory payload: %w", err))
		return
	}

	result, err := h.coordinator.QueryInventory(query)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respond(c, result)
}
