package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/fraudwatch-risk-engine/internal/api/service"
	"github.com/fraudwatch-risk-engine/internal/domain/transaction"
	"github.com/fraudwatch-risk-engine/internal/engine"
)

// CheckHandler serves the transaction check endpoint.
type CheckHandler struct {
	checker service.Checker
	logger  *slog.Logger
}

// NewCheckHandler creates a check handler over the given checker.
func NewCheckHandler(checker service.Checker, logger *slog.Logger) *CheckHandler {
	return &CheckHandler{checker: checker, logger: logger}
}

// Check scores a submitted transaction and returns the verdict.
func (h *CheckHandler) Check(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	tx, v, err := h.checker.Check(c.Request.Context(), req.Input())
	if err != nil {
		h.respondCheckError(c, err)
		return
	}

	message := messageApproved
	if v.IsFraud {
		message = messageBlocked
	}

	respondOK(c, CheckResponse{
		TransactionID: tx.ID,
		IsFraud:       v.IsFraud,
		IsValid:       !v.IsFraud,
		Score:         v.Score,
		Confidence:    v.Confidence,
		Severity:      string(v.Severity),
		Reasons:       v.Reasons,
		Message:       message,
	})
}

func (h *CheckHandler) respondCheckError(c *gin.Context, err error) {
	var vErr *transaction.ValidationError
	if errors.As(err, &vErr) {
		respondBadRequest(c, vErr.Error())
		return
	}

	var nrErr *engine.NotRecordedError
	if errors.As(err, &nrErr) {
		respondServiceUnavailable(c, "NOT_RECORDED", "verdict could not be recorded, retry the check")
		return
	}

	var sErr *engine.StoreUnavailableError
	if errors.As(err, &sErr) {
		respondServiceUnavailable(c, "STORE_UNAVAILABLE", "risk store unavailable, transaction not evaluated")
		return
	}

	h.logger.Error("check failed", "error", err)
	respondInternalError(c)
}
