package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fraudwatch-risk-engine/internal/api/service"
	"github.com/fraudwatch-risk-engine/internal/domain/profile"
	"github.com/fraudwatch-risk-engine/internal/domain/transaction"
)

type mockReporter struct {
	mock.Mock
}

func (m *mockReporter) History(ctx context.Context, limit int) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, limit)
	if ts, ok := args.Get(0).([]*transaction.Transaction); ok {
		return ts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReporter) Transaction(ctx context.Context, id string) (*transaction.Transaction, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*transaction.Transaction); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReporter) FlaggedAccounts(ctx context.Context) ([]*profile.Profile, error) {
	args := m.Called(ctx)
	if ps, ok := args.Get(0).([]*profile.Profile); ok {
		return ps, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReporter) Stats(ctx context.Context) (*service.Stats, error) {
	args := m.Called(ctx)
	if s, ok := args.Get(0).(*service.Stats); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func reportRouter(reporter *mockReporter) *gin.Engine {
	router := gin.New()
	h := NewReportHandler(reporter, slog.Default())
	router.GET("/api/v1/transactions", h.History)
	router.GET("/api/v1/transactions/:id", h.Transaction)
	router.GET("/api/v1/accounts/flagged", h.FlaggedAccounts)
	router.GET("/api/v1/stats", h.Stats)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHistory(t *testing.T) {
	reporter := new(mockReporter)
	reporter.On("History", mock.Anything, 0).Return([]*transaction.Transaction{
		{ID: "ab12cd34", AccountID: "acct-1", CreatedAt: time.Now().UTC()},
	}, nil)

	w := get(reportRouter(reporter), "/api/v1/transactions")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
	assert.Contains(t, w.Body.String(), "ab12cd34")
}

func TestHistoryWithLimit(t *testing.T) {
	reporter := new(mockReporter)
	reporter.On("History", mock.Anything, 5).Return([]*transaction.Transaction{}, nil)

	w := get(reportRouter(reporter), "/api/v1/transactions?limit=5")

	assert.Equal(t, http.StatusOK, w.Code)
	reporter.AssertExpectations(t)
}

func TestHistoryInvalidLimit(t *testing.T) {
	reporter := new(mockReporter)

	w := get(reportRouter(reporter), "/api/v1/transactions?limit=abc")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	reporter.AssertNotCalled(t, "History", mock.Anything, mock.Anything)
}

func TestTransactionFound(t *testing.T) {
	reporter := new(mockReporter)
	reporter.On("Transaction", mock.Anything, "ab12cd34").
		Return(&transaction.Transaction{ID: "ab12cd34", IsFraud: true, FraudReason: "r"}, nil)

	w := get(reportRouter(reporter), "/api/v1/transactions/ab12cd34")

	require.Equal(t, http.StatusOK, w.Code)
	var resp TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsFraud)
}

func TestTransactionNotFound(t *testing.T) {
	reporter := new(mockReporter)
	reporter.On("Transaction", mock.Anything, "missing1").Return(nil, nil)

	w := get(reportRouter(reporter), "/api/v1/transactions/missing1")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFlaggedAccounts(t *testing.T) {
	reporter := new(mockReporter)
	reporter.On("FlaggedAccounts", mock.Anything).Return([]*profile.Profile{
		{AccountName: "acct-1", FraudCount: 4, Flagged: true, FlagReason: "r"},
	}, nil)

	w := get(reportRouter(reporter), "/api/v1/accounts/flagged")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "acct-1")
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestStatsEndpoint(t *testing.T) {
	reporter := new(mockReporter)
	reporter.On("Stats", mock.Anything).Return(&service.Stats{
		TotalTransactions: 100,
		FraudDetected:     15,
		FraudRate:         0.15,
		FlaggedAccounts:   2,
	}, nil)

	w := get(reportRouter(reporter), "/api/v1/stats")

	require.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(100), resp.TotalTransactions)
	assert.InDelta(t, 0.15, resp.FraudRate, 1e-9)
}

func TestStatsError(t *testing.T) {
	reporter := new(mockReporter)
	reporter.On("Stats", mock.Anything).Return(nil, errors.New("boom"))

	w := get(reportRouter(reporter), "/api/v1/stats")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
