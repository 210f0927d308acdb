// Package domain contains application services orchestrating the matching core.
package domain

import (
	"context"
	"fmt"

	"github.com/TsikyLalaina/miharina-hub-development/internal/entities"
)

const (
	defaultMatchScore = 75
)

var defaultMatchReasons = []string{"Manual match"}

// CreateMatch persists a pending match on behalf of the resolved caller and
// notifies the target best-effort after commit.
func (u *Usecase) CreateMatch(ctx context.Context, externalUID, targetUserID string, opportunityID *string, score *int, reasons []string) (*entities.Match, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if targetUserID == "" {
		return nil, fmt.Errorf("%w: targetUserId is required", entities.ErrInvalidArgument)
	}

	matchScore := defaultMatchScore
	if score != nil {
		if *score < 0 || *score > 100 {
			return nil, fmt.Errorf("%w: matchScore must be between 0 and 100", entities.ErrInvalidArgument)
		}
		matchScore = *score
	}
	matchReasons := reasons
	if len(matchReasons) == 0 {
		matchReasons = defaultMatchReasons
	}

	requesterID, err := u.repo.ResolveUser(ctx, externalUID)
	if err != nil {
		return nil, err
	}

	created, err := u.repo.CreateMatch(ctx, entities.Match{
		RequesterID:   requesterID,
		TargetUserID:  targetUserID,
		OpportunityID: opportunityID,
		Score:         matchScore,
		Reasons:       matchReasons,
	})
	if err != nil {
		return nil, err
	}

	u.metrics.MatchesCreated.Inc()
	u.notifyMatchCreated(*created)
	return created, nil
}

// notifyMatchCreated fires the notification on the base context so a closed
// request cannot cancel it. Failures are logged, never propagated.
func (u *Usecase) notifyMatchCreated(m entities.Match) {
	go func() {
		ctx, cancel := withTimeout(u.ctx, u.timeout)
		defer cancel()
		if err := u.notifier.MatchCreated(ctx, m); err != nil {
			u.log.Warnw("match notification failed", "error", err, "match_id", m.ID)
		}
	}()
}

// ListMatches returns the caller's matches for one direction, optionally
// narrowed to a single status.
func (u *Usecase) ListMatches(ctx context.Context, externalUID string, direction entities.MatchDirection, statusFilter string) ([]entities.MatchWithCounterpart, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if direction == "" {
		direction = entities.DirectionSent
	}
	if direction != entities.DirectionSent && direction != entities.DirectionReceived {
		return nil, fmt.Errorf("%w: unknown direction %q", entities.ErrInvalidArgument, direction)
	}

	var status *entities.MatchStatus
	if statusFilter != "" {
		s := entities.MatchStatus(statusFilter)
		if s != entities.StatusPending && s != entities.StatusAccepted && s != entities.StatusRejected {
			return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, statusFilter)
		}
		status = &s
	}

	userID, err := u.repo.ResolveUser(ctx, externalUID)
	if err != nil {
		return nil, err
	}

	return u.repo.ListMatches(ctx, userID, direction, status)
}

// UpdateMatchStatus applies a terminal transition on behalf of the caller.
// Only accepted and rejected are reachable; pending is never a target.
func (u *Usecase) UpdateMatchStatus(ctx context.Context, externalUID, matchID, status string) (*entities.Match, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", entities.ErrInvalidArgument)
	}
	s := entities.MatchStatus(status)
	if s != entities.StatusAccepted && s != entities.StatusRejected {
		return nil, fmt.Errorf("%w: status must be accepted or rejected", entities.ErrInvalidArgument)
	}

	userID, err := u.repo.ResolveUser(ctx, externalUID)
	if err != nil {
		return nil, err
	}

	updated, err := u.repo.UpdateMatchStatus(ctx, matchID, userID, s)
	if err != nil {
		return nil, err
	}

	u.metrics.StatusTransitions.WithLabelValues(status).Inc()
	return updated, nil
}
