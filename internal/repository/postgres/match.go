package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/TsikyLalaina/miharina-hub-development/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	matchExistsQuery = `
SELECT id FROM matches
WHERE requester_id = $1 AND target_user_id = $2 AND opportunity_id IS NOT DISTINCT FROM $3`

	insertMatchQuery = `
INSERT INTO matches (id, requester_id, target_user_id, opportunity_id, match_score, match_reasons, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, 'pending', NOW(), NOW())
RETURNING created_at, updated_at`

	// One query for both directions: the counterpart is the target on sent
	// matches and the requester on received ones.
	listMatchesQuery = `
SELECT m.id, m.requester_id, m.target_user_id, m.opportunity_id, m.match_score, m.match_reasons, m.status, m.created_at, m.updated_at,
       bp.business_name, bp.business_type, bp.region, bp.logo_url,
       o.title
FROM matches m
JOIN business_profiles bp
  ON bp.user_id = CASE WHEN $2 = 'sent' THEN m.target_user_id ELSE m.requester_id END
LEFT JOIN opportunities o ON o.id = m.opportunity_id
WHERE CASE WHEN $2 = 'sent' THEN m.requester_id ELSE m.target_user_id END = $1
  AND ($3::text IS NULL OR m.status = $3)
ORDER BY m.created_at DESC`

	selectMatchForUpdateQuery = `
SELECT id, requester_id, target_user_id, opportunity_id, match_score, match_reasons, status, created_at, updated_at
FROM matches
WHERE id = $1 AND (requester_id = $2 OR target_user_id = $2)
FOR UPDATE`

	updateMatchStatusQuery = `UPDATE matches SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING updated_at`
)

// CreateMatch inserts a pending match. The existence check and insert run in
// one transaction; the partial unique indexes settle the concurrent-create
// race, so a losing insert surfaces as ErrMatchExists rather than a duplicate.
func (p *Postgres) CreateMatch(ctx context.Context, m entities.Match) (*entities.Match, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var existingID string
	err = tx.QueryRow(ctx, matchExistsQuery, m.RequesterID, m.TargetUserID, m.OpportunityID).Scan(&existingID)
	switch {
	case err == nil:
		return nil, entities.ErrMatchExists
	case !errors.Is(err, pgx.ErrNoRows):
		p.log.Errorw("failed to check existing match", "error", err)
		return nil, fmt.Errorf("check existing match: %w", err)
	}

	m.ID = uuid.NewString()
	m.Status = entities.StatusPending
	if err := tx.QueryRow(ctx, insertMatchQuery,
		m.ID, m.RequesterID, m.TargetUserID, m.OpportunityID, m.Score, m.Reasons,
	).Scan(&m.CreatedAt, &m.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, entities.ErrMatchExists
			case "23503":
				if pgErr.ConstraintName == "matches_opportunity_id_fkey" {
					return nil, entities.ErrOpportunityNotFound
				}
				return nil, entities.ErrUserNotFound
			}
		}
		p.log.Errorw("failed to insert match", "error", err, "requester_id", m.RequesterID)
		return nil, fmt.Errorf("insert match: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("match created", "match_id", m.ID, "requester_id", m.RequesterID, "target_user_id", m.TargetUserID)
	return &m, nil
}

// ListMatches returns matches anchored on one side of the user, newest first,
// enriched with the counterpart's display data.
func (p *Postgres) ListMatches(ctx context.Context, userID string, direction entities.MatchDirection, status *entities.MatchStatus) ([]entities.MatchWithCounterpart, error) {
	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}

	rows, err := p.db.Query(ctx, listMatchesQuery, userID, string(direction), statusArg)
	if err != nil {
		p.log.Errorw("failed to query matches", "error", err, "user_id", userID, "direction", direction)
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	res := make([]entities.MatchWithCounterpart, 0)
	for rows.Next() {
		var m entities.MatchWithCounterpart
		if err := rows.Scan(
			&m.ID, &m.RequesterID, &m.TargetUserID, &m.OpportunityID, &m.Score, &m.Reasons, &m.Status, &m.CreatedAt, &m.UpdatedAt,
			&m.BusinessName, &m.BusinessType, &m.Region, &m.LogoURL,
			&m.OpportunityTitle,
		); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		res = append(res, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate matches: %w", err)
	}
	return res, nil
}

// UpdateMatchStatus applies a terminal transition. The caller must be a party
// to the match and the match must still be pending.
func (p *Postgres) UpdateMatchStatus(ctx context.Context, matchID, callerUserID string, status entities.MatchStatus) (*entities.Match, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var m entities.Match
	if err := tx.QueryRow(ctx, selectMatchForUpdateQuery, matchID, callerUserID).Scan(
		&m.ID, &m.RequesterID, &m.TargetUserID, &m.OpportunityID, &m.Score, &m.Reasons, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMatchNotFound
		}
		p.log.Errorw("failed to select match for update", "error", err, "match_id", matchID)
		return nil, fmt.Errorf("get match: %w", err)
	}

	if m.Status.Terminal() {
		return nil, entities.ErrMatchDecided
	}

	if err := tx.QueryRow(ctx, updateMatchStatusQuery, matchID, string(status)).Scan(&m.UpdatedAt); err != nil {
		p.log.Errorw("failed to update match status", "error", err, "match_id", matchID)
		return nil, fmt.Errorf("update match status: %w", err)
	}
	m.Status = status

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("match status updated", "match_id", matchID, "status", status)
	return &m, nil
}
