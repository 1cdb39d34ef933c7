package handlers

import (
	"net/http"

	"nsbridge/internal/api/middleware"
	"nsbridge/internal/logger"
	"nsbridge/internal/models"

	"github.com/gin-gonic/gin"
)

func respond(c *gin.Context, result *models.Result) {
	c.JSON(http.StatusOK, result.Response())
}

// respondError maps any flow failure to the 500 envelope: the error message
// as the summary and an error notification whose detail carries the request
// id for log correlation.
func respondError(c *gin.Context, logger *logger.Logger, err error) {
	logger.Error("%s failed: %v request_id=%s", c.Request.URL.Path, err, middleware.GetRequestID(c))

	c.JSON(http.StatusInternalServerError, models.Response{
		Summary: err.Error(),
		Notifications: []models.Notification{{
			Type:    "error",
			Message: err.Error(),
			Detail:  "request_id=" + middleware.GetRequestID(c),
		}},
	})
}
