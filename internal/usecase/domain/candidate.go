// Package domain contains application services orchestrating the matching core.
package domain

import (
	"context"
	"fmt"

	"github.com/TsikyLalaina/miharina-hub-development/internal/entities"
)

// FindCandidates resolves the caller's profile and returns scored discovery
// results. Read-only: no match records are created.
func (u *Usecase) FindCandidates(ctx context.Context, externalUID string, kind entities.CandidateKind, sectors []string, limit int) ([]entities.Candidate, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", entities.ErrInvalidArgument)
	}
	if kind != entities.KindBusinesses && kind != entities.KindOpportunities {
		return nil, fmt.Errorf("%w: unknown candidate kind %q", entities.ErrInvalidArgument, kind)
	}

	userID, err := u.repo.ResolveUser(ctx, externalUID)
	if err != nil {
		return nil, err
	}
	profile, err := u.repo.GetBusinessProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Caller-supplied sectors win, even when empty; nil means "use mine".
	effective := sectors
	if effective == nil {
		effective = profile.Sectors
	}
	u.metrics.CandidateSearches.WithLabelValues(string(kind)).Inc()
	if len(effective) == 0 {
		return []entities.Candidate{}, nil
	}

	if kind == entities.KindOpportunities {
		rows, err := u.repo.ListOpportunityCandidates(ctx, userID, effective, limit)
		if err != nil {
			return nil, err
		}
		res := make([]entities.Candidate, 0, len(rows))
		for _, oc := range rows {
			score, reasons := u.strat.ScoreOpportunity(*profile, oc)
			amount := oc.Amount
			res = append(res, entities.Candidate{
				ID:           oc.ID,
				BusinessName: oc.BusinessName,
				BusinessType: oc.BusinessType,
				Region:       oc.Region,
				LogoURL:      oc.LogoURL,
				Description:  oc.Description,
				Sectors:      oc.Sectors,
				Countries:    oc.Countries,
				Amount:       &amount,
				Currency:     oc.Currency,
				Deadline:     oc.Deadline,
				Score:        score,
				Reasons:      reasons,
			})
		}
		return res, nil
	}

	rows, err := u.repo.ListBusinessCandidates(ctx, userID, effective, limit)
	if err != nil {
		return nil, err
	}
	res := make([]entities.Candidate, 0, len(rows))
	for _, bp := range rows {
		score, reasons := u.strat.ScoreBusiness(*profile, bp)
		res = append(res, entities.Candidate{
			ID:           bp.ID,
			BusinessName: bp.BusinessName,
			BusinessType: bp.BusinessType,
			Region:       bp.Region,
			LogoURL:      bp.LogoURL,
			Description:  bp.Description,
			Sectors:      bp.Sectors,
			Score:        score,
			Reasons:      reasons,
		})
	}
	return res, nil
}
