package handler

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fraudwatch-risk-engine/internal/api/service"
)

// ReportHandler serves the read-only reporting endpoints.
type ReportHandler struct {
	reporter service.Reporter
	logger   *slog.Logger
}

// NewReportHandler creates a report handler over the given reporter.
func NewReportHandler(reporter service.Reporter, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{reporter: reporter, logger: logger}
}

// History lists the most recent transactions.
func (h *ReportHandler) History(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondBadRequest(c, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	transactions, err := h.reporter.History(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list transactions", "error", err)
		respondInternalError(c)
		return
	}

	out := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, toTransactionResponse(t))
	}
	respondOK(c, gin.H{"transactions": out, "count": len(out)})
}

// Transaction retrieves one transaction by its token.
func (h *ReportHandler) Transaction(c *gin.Context) {
	id := c.Param("id")

	t, err := h.reporter.Transaction(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to get transaction", "transaction_id", id, "error", err)
		respondInternalError(c)
		return
	}
	if t == nil {
		respondNotFound(c, "transaction not found")
		return
	}
	respondOK(c, toTransactionResponse(t))
}

// FlaggedAccounts lists every flagged account.
func (h *ReportHandler) FlaggedAccounts(c *gin.Context) {
	profiles, err := h.reporter.FlaggedAccounts(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list flagged accounts", "error", err)
		respondInternalError(c)
		return
	}

	out := make([]FlaggedAccountResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, toFlaggedAccountResponse(p))
	}
	respondOK(c, gin.H{"flagged_accounts": out, "count": len(out)})
}

// Stats summarizes the ledger.
func (h *ReportHandler) Stats(c *gin.Context) {
	stats, err := h.reporter.Stats(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to compute stats", "error", err)
		respondInternalError(c)
		return
	}

	respondOK(c, StatsResponse{
		TotalTransactions: stats.TotalTransactions,
		FraudDetected:     stats.FraudDetected,
		FraudRate:         stats.FraudRate,
		FlaggedAccounts:   stats.FlaggedAccounts,
	})
}
