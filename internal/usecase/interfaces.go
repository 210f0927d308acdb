package usecase

import (
	"context"

	"github.com/TsikyLalaina/miharina-hub-development/internal/entities"
)

// CandidateUsecaseInterface abstracts discovery for the delivery layer.
type CandidateUsecaseInterface interface {
	FindCandidates(ctx context.Context, externalUID string, kind entities.CandidateKind, sectors []string, limit int) ([]entities.Candidate, error)
}

// MatchUsecaseInterface abstracts match lifecycle operations.
type MatchUsecaseInterface interface {
	CreateMatch(ctx context.Context, externalUID, targetUserID string, opportunityID *string, score *int, reasons []string) (*entities.Match, error)
	ListMatches(ctx context.Context, externalUID string, direction entities.MatchDirection, statusFilter string) ([]entities.MatchWithCounterpart, error)
	UpdateMatchStatus(ctx context.Context, externalUID, matchID, status string) (*entities.Match, error)
}

// StatsUsecaseInterface abstracts statistics operations.
type StatsUsecaseInterface interface {
	MatchStats(ctx context.Context, externalUID string) (entities.MatchStats, error)
}
