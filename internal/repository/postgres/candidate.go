package postgres

import (
	"context"
	"fmt"

	"github.com/TsikyLalaina/miharina-hub-development/internal/entities"
)

const (
	// && is the array overlap operator; an empty filter overlaps nothing,
	// so an empty sector set never degenerates into an unfiltered scan.
	businessCandidatesQuery = `
SELECT bp.id, bp.user_id, bp.business_name, bp.business_type, bp.region, bp.sectors, bp.description, bp.logo_url, bp.created_at
FROM business_profiles bp
WHERE bp.user_id <> $1
  AND bp.sectors && $2::text[]
ORDER BY bp.created_at DESC
LIMIT $3`

	opportunityCandidatesQuery = `
SELECT o.id, o.business_id, o.title, o.sectors, o.countries, o.amount, o.currency, o.description, o.deadline, o.created_at,
       bp.business_name, bp.business_type, bp.region, bp.logo_url
FROM opportunities o
JOIN business_profiles bp ON bp.id = o.business_id
WHERE o.is_active = true
  AND bp.user_id <> $1
  AND o.sectors && $2::text[]
ORDER BY o.created_at DESC
LIMIT $3`
)

// ListBusinessCandidates returns profiles with sector overlap, excluding the requester's own.
func (p *Postgres) ListBusinessCandidates(ctx context.Context, requesterUserID string, sectors []string, limit int) ([]entities.BusinessProfile, error) {
	rows, err := p.db.Query(ctx, businessCandidatesQuery, requesterUserID, sectors, limit)
	if err != nil {
		p.log.Errorw("failed to query business candidates", "error", err, "user_id", requesterUserID)
		return nil, fmt.Errorf("list business candidates: %w", err)
	}
	defer rows.Close()

	res := make([]entities.BusinessProfile, 0)
	for rows.Next() {
		var bp entities.BusinessProfile
		if err := rows.Scan(
			&bp.ID, &bp.UserID, &bp.BusinessName, &bp.BusinessType, &bp.Region,
			&bp.Sectors, &bp.Description, &bp.LogoURL, &bp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan business candidate: %w", err)
		}
		res = append(res, bp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate business candidates: %w", err)
	}
	return res, nil
}

// ListOpportunityCandidates returns active opportunities with sector overlap,
// excluding those posted by the requester's own business.
func (p *Postgres) ListOpportunityCandidates(ctx context.Context, requesterUserID string, sectors []string, limit int) ([]entities.OpportunityCandidate, error) {
	rows, err := p.db.Query(ctx, opportunityCandidatesQuery, requesterUserID, sectors, limit)
	if err != nil {
		p.log.Errorw("failed to query opportunity candidates", "error", err, "user_id", requesterUserID)
		return nil, fmt.Errorf("list opportunity candidates: %w", err)
	}
	defer rows.Close()

	res := make([]entities.OpportunityCandidate, 0)
	for rows.Next() {
		var oc entities.OpportunityCandidate
		if err := rows.Scan(
			&oc.ID, &oc.BusinessID, &oc.Title, &oc.Sectors, &oc.Countries,
			&oc.Amount, &oc.Currency, &oc.Description, &oc.Deadline, &oc.CreatedAt,
			&oc.BusinessName, &oc.BusinessType, &oc.Region, &oc.LogoURL,
		); err != nil {
			return nil, fmt.Errorf("scan opportunity candidate: %w", err)
		}
		oc.IsActive = true
		res = append(res, oc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate opportunity candidates: %w", err)
	}
	return res, nil
}
