package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/TsikyLalaina/miharina-hub-development/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	resolveUserQuery = `SELECT id FROM users WHERE external_uid = $1`

	profileByUserQuery = `
SELECT id, user_id, business_name, business_type, region, sectors, description, logo_url, created_at
FROM business_profiles
WHERE user_id = $1`
)

// ResolveUser maps an external identity to the internal user id.
func (p *Postgres) ResolveUser(ctx context.Context, externalUID string) (string, error) {
	var id string
	if err := p.db.QueryRow(ctx, resolveUserQuery, externalUID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", entities.ErrUserNotFound
		}
		p.log.Errorw("failed to resolve user", "error", err)
		return "", fmt.Errorf("resolve user: %w", err)
	}
	return id, nil
}

// GetBusinessProfile returns the profile owned by the user.
func (p *Postgres) GetBusinessProfile(ctx context.Context, userID string) (*entities.BusinessProfile, error) {
	var bp entities.BusinessProfile
	err := p.db.QueryRow(ctx, profileByUserQuery, userID).Scan(
		&bp.ID, &bp.UserID, &bp.BusinessName, &bp.BusinessType, &bp.Region,
		&bp.Sectors, &bp.Description, &bp.LogoURL, &bp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProfileNotFound
		}
		p.log.Errorw("failed to get business profile", "error", err, "user_id", userID)
		return nil, fmt.Errorf("get business profile: %w", err)
	}
	return &bp, nil
}
