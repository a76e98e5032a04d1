package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"video-tube/domain/model"
	"video-tube/infrastructure/logger"
)

func respond(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, model.NewResponse(status, data, message))
}

// respondError renders an AppError with its own status code. Anything else is
// an unexpected failure and becomes an opaque 500.
func respondError(c *gin.Context, err error) {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, model.NewResponse(appErr.Code, nil, appErr.Message))
		return
	}
	logger.GetLogger().WithField("error", err).Error("Unhandled error")
	c.JSON(http.StatusInternalServerError,
		model.NewResponse(http.StatusInternalServerError, nil, "Internal server error"))
}

// callerID returns the authenticated user id set by the auth middleware,
// or "" when the request is unauthenticated.
func callerID(c *gin.Context) string {
	return c.GetString("user_id")
}
