// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/TsikyLalaina/miharina-hub-development/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ProfileInterface resolves identities and business profiles. Pure reads.
type ProfileInterface interface {
	ResolveUser(ctx context.Context, externalUID string) (string, error)
	GetBusinessProfile(ctx context.Context, userID string) (*entities.BusinessProfile, error)
}

// CandidateInterface exposes discovery queries over profiles and opportunities.
type CandidateInterface interface {
	ListBusinessCandidates(ctx context.Context, requesterUserID string, sectors []string, limit int) ([]entities.BusinessProfile, error)
	ListOpportunityCandidates(ctx context.Context, requesterUserID string, sectors []string, limit int) ([]entities.OpportunityCandidate, error)
}

// MatchInterface owns the persisted match lifecycle.
type MatchInterface interface {
	CreateMatch(ctx context.Context, m entities.Match) (*entities.Match, error)
	ListMatches(ctx context.Context, userID string, direction entities.MatchDirection, status *entities.MatchStatus) ([]entities.MatchWithCounterpart, error)
	UpdateMatchStatus(ctx context.Context, matchID, callerUserID string, status entities.MatchStatus) (*entities.Match, error)
}

// StatsInterface exposes aggregated match statistics.
type StatsInterface interface {
	MatchStats(ctx context.Context, userID string) (entities.MatchStats, error)
}
