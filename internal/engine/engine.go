// Package engine runs the fraud scoring pipeline: validate the input,
// evaluate every rule against a consistent snapshot of account history,
// decide, then record the outcome atomically.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fraudwatch-risk-engine/internal/config"
	"github.com/fraudwatch-risk-engine/internal/domain/alert"
	"github.com/fraudwatch-risk-engine/internal/domain/locationpair"
	"github.com/fraudwatch-risk-engine/internal/domain/profile"
	"github.com/fraudwatch-risk-engine/internal/domain/transaction"
	"github.com/fraudwatch-risk-engine/internal/domain/verdict"
	"github.com/fraudwatch-risk-engine/internal/engine/rules"
	"github.com/fraudwatch-risk-engine/internal/platform/persistence"
)

// Engine scores transactions and records verdicts.
type Engine struct {
	db           persistence.TxStarter
	transactions transaction.Repository
	profiles     profile.Repository
	pairs        locationpair.Repository
	outbox       alert.OutboxRepository

	corridors      rules.CorridorSet
	fraudThreshold int
	flagThreshold  int
	rotationWindow time.Duration
	rotationMax    int
	fanoutWindow   time.Duration
	storeTimeout   time.Duration

	logger *slog.Logger
	now    func() time.Time
}

// New creates an engine over the given store and repositories, tuned by
// the rules configuration.
func New(
	db persistence.TxStarter,
	transactions transaction.Repository,
	profiles profile.Repository,
	pairs locationpair.Repository,
	outbox alert.OutboxRepository,
	cfg *config.RulesConfig,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		db:             db,
		transactions:   transactions,
		profiles:       profiles,
		pairs:          pairs,
		outbox:         outbox,
		corridors:      rules.NewCorridorSet(cfg.HighRiskCorridors),
		fraudThreshold: cfg.FraudScoreThreshold,
		flagThreshold:  cfg.FlagThreshold,
		rotationWindow: cfg.RotationWindow,
		rotationMax:    cfg.RotationMaxDistinct,
		fanoutWindow:   cfg.FanoutWindow,
		storeTimeout:   cfg.StoreTimeout,
		logger:         logger,
		now:            time.Now,
	}
}

// WithClock overrides the time source. Tests use this to pin windows and
// timestamps.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Check normalizes and validates the input, scores it against the
// account's history and records the verdict. The recorded transaction and
// the verdict are returned together; an error means nothing was recorded.
func (e *Engine) Check(ctx context.Context, in *transaction.Input) (*transaction.Transaction, *verdict.Verdict, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, nil, err
	}

	sum, reasons, err := e.snapshotEvaluate(ctx, in)
	if err != nil {
		return nil, nil, err
	}

	v := verdict.New(sum, reasons, e.fraudThreshold)

	// The stored reasons are the triggered ones only, which may be none.
	t := transaction.New(in, v.IsFraud, reasons, e.now())

	commitCtx, cancel := context.WithTimeout(ctx, e.storeTimeout)
	defer cancel()

	if err := e.commit(commitCtx, t, v); err != nil {
		e.logger.Error("verdict not recorded",
			"transaction_id", t.ID,
			"account", t.SenderName,
			"error", err)
		return nil, nil, err
	}

	e.logger.Info("transaction checked",
		"transaction_id", t.ID,
		"account", t.SenderName,
		"is_fraud", v.IsFraud,
		"score", v.Score,
		"severity", v.Severity)

	return t, v, nil
}

// snapshotEvaluate runs every rule inside one read-only database
// transaction so all history reads observe the same snapshot.
func (e *Engine) snapshotEvaluate(ctx context.Context, in *transaction.Input) (int, []string, error) {
	evalCtx, cancel := context.WithTimeout(ctx, e.storeTimeout)
	defer cancel()

	tx, err := e.db.BeginTx(evalCtx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return 0, nil, &StoreUnavailableError{Op: "snapshot begin", Err: err}
	}
	defer func() {
		_ = tx.Rollback(evalCtx)
	}()

	hist := rules.NewHistory(
		e.transactions.WithTx(tx),
		e.profiles.WithTx(tx),
		e.pairs.WithTx(tx),
		e.rotationWindow,
		e.rotationMax,
		e.fanoutWindow,
	).WithClock(e.now)

	return evaluate(evalCtx, e.corridors, hist, in)
}
