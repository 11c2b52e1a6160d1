package api

import (
	"errors"
	"net/http"

	"MatchOdds/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// statusFor 业务错误 → HTTP 状态码
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError 4xx 记 Warn，5xx 记 Error
func respondError(c *gin.Context, logger *logrus.Logger, op string, err error) {
	status := statusFor(err)
	entry := logger.WithError(err).WithField("path", c.FullPath())
	if status >= http.StatusInternalServerError {
		entry.Error(op + " failed")
	} else {
		entry.Warn(op + " rejected")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
