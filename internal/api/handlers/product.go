package handlers

import (
	"nsbridge/internal/integration"
	"nsbridge/internal/logger"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	coordinator *integration.Coordinator
	logger      *logger.Logger
}

func NewProductHandler(coordinator *integration.Coordinator, logger *logger.Logger) *ProductHandler {
	return &ProductHandler{coordinator: coordinator, logger: logger}
}

// Pull lists items modified since the configured watermark and returns the
// advanced watermark in the response parameters.
func (h *ProductHandler) Pull(c *gin.Context) {
	result, err := h.coordinator.PullProducts()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respond(c, result)
}
