package domain

import (
	"context"
	"time"

	"github.com/TsikyLalaina/miharina-hub-development/internal/metrics"
	"github.com/TsikyLalaina/miharina-hub-development/internal/notify"
	"github.com/TsikyLalaina/miharina-hub-development/internal/repository"
	"github.com/TsikyLalaina/miharina-hub-development/internal/scoring"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx      context.Context
	log      *zap.SugaredLogger
	repo     repository.Repository
	strat    scoring.Strategy
	notifier notify.Notifier
	metrics  *metrics.Metrics
	timeout  time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	strat scoring.Strategy,
	notifier notify.Notifier,
	m *metrics.Metrics,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:      ctx,
		log:      log,
		repo:     repo,
		strat:    strat,
		notifier: notifier,
		metrics:  m,
		timeout:  timeout,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
