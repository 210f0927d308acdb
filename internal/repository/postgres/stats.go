package postgres

import (
	"context"
	"fmt"

	"github.com/TsikyLalaina/miharina-hub-development/internal/entities"
)

const matchStatsQuery = `
SELECT COUNT(*) FILTER (WHERE status = 'pending'),
       COUNT(*) FILTER (WHERE status = 'accepted'),
       COUNT(*) FILTER (WHERE status = 'rejected'),
       COALESCE(AVG(match_score), 0)::float8
FROM matches
WHERE requester_id = $1 OR target_user_id = $1`

// MatchStats aggregates the user's matches across both directions. The
// COALESCE keeps the average at zero for users with no matches.
func (p *Postgres) MatchStats(ctx context.Context, userID string) (entities.MatchStats, error) {
	var res entities.MatchStats
	if err := p.db.QueryRow(ctx, matchStatsQuery, userID).Scan(
		&res.Pending, &res.Accepted, &res.Rejected, &res.AverageScore,
	); err != nil {
		p.log.Errorw("failed to query match stats", "error", err, "user_id", userID)
		return res, fmt.Errorf("match stats: %w", err)
	}
	return res, nil
}
