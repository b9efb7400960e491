package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fraudwatch-risk-engine/internal/api/middleware"
)

type errorBody struct {
	Error         string `json:"error"`
	Code          string `json:"code,omitempty"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, errorBody{
		Error:         message,
		Code:          code,
		CorrelationID: c.GetString(middleware.CorrelationIDKey),
	})
}

func respondBadRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func respondNotFound(c *gin.Context, message string) {
	respondError(c, http.StatusNotFound, "NOT_FOUND", message)
}

func respondServiceUnavailable(c *gin.Context, code, message string) {
	respondError(c, http.StatusServiceUnavailable, code, message)
}

func respondInternalError(c *gin.Context) {
	respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}
