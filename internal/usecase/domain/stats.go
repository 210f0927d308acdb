// Package domain contains application services orchestrating the matching core.
package domain

import (
	"context"

	"github.com/TsikyLalaina/miharina-hub-development/internal/entities"
)

// MatchStats returns the caller's aggregated match counters.
func (u *Usecase) MatchStats(ctx context.Context, externalUID string) (entities.MatchStats, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	userID, err := u.repo.ResolveUser(ctx, externalUID)
	if err != nil {
		return entities.MatchStats{}, err
	}

	return u.repo.MatchStats(ctx, userID)
}
