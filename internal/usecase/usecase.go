package usecase

import (
	"context"
	"time"

	"github.com/TsikyLalaina/miharina-hub-development/internal/metrics"
	"github.com/TsikyLalaina/miharina-hub-development/internal/notify"
	"github.com/TsikyLalaina/miharina-hub-development/internal/repository"
	"github.com/TsikyLalaina/miharina-hub-development/internal/scoring"
	"github.com/TsikyLalaina/miharina-hub-development/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	CandidateUsecaseInterface
	MatchUsecaseInterface
	StatsUsecaseInterface
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
) InterfaceUsecase {
	return domain.New(log, ctx, repo, strat, notifier, m, timeout)
}
