// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/TsikyLalaina/miharina-hub-development/internal/api"
	"github.com/TsikyLalaina/miharina-hub-development/internal/entities"
)

// ToAPICandidate maps a scored candidate to its transport model.
func ToAPICandidate(c entities.Candidate) api.CandidateMatch {
	return api.CandidateMatch{
		ID:           c.ID,
		BusinessName: c.BusinessName,
		BusinessType: c.BusinessType,
		Region:       c.Region,
		LogoURL:      c.LogoURL,
		Description:  c.Description,
		MatchScore:   c.Score,
		MatchReasons: c.Reasons,
		Sectors:      c.Sectors,
		Countries:    c.Countries,
		Amount:       c.Amount,
		Currency:     c.Currency,
		Deadline:     c.Deadline,
	}
}

// ToAPICandidateList maps a slice of candidates.
func ToAPICandidateList(list []entities.Candidate) []api.CandidateMatch {
	res := make([]api.CandidateMatch, 0, len(list))
	for _, c := range list {
		res = append(res, ToAPICandidate(c))
	}
	return res
}

// ToAPIMatch maps a persisted match to its transport model.
func ToAPIMatch(m entities.Match) api.Match {
	return api.Match{
		ID:            m.ID,
		UserID:        m.RequesterID,
		TargetUserID:  m.TargetUserID,
		OpportunityID: m.OpportunityID,
		MatchScore:    m.Score,
		MatchReasons:  m.Reasons,
		Status:        string(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ToAPIMatchListItem maps an enriched match row.
func ToAPIMatchListItem(m entities.MatchWithCounterpart) api.MatchListItem {
	return api.MatchListItem{
		ID:               m.ID,
		BusinessName:     m.BusinessName,
		BusinessType:     m.BusinessType,
		Region:           m.Region,
		LogoURL:          m.LogoURL,
		OpportunityTitle: m.OpportunityTitle,
		MatchScore:       m.Score,
		MatchReasons:     m.Reasons,
		Status:           string(m.Status),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// ToAPIMatchList maps a slice of enriched matches.
func ToAPIMatchList(list []entities.MatchWithCounterpart) []api.MatchListItem {
	res := make([]api.MatchListItem, 0, len(list))
	for _, m := range list {
		res = append(res, ToAPIMatchListItem(m))
	}
	return res
}

// ToAPIStats maps aggregate counters.
func ToAPIStats(s entities.MatchStats) api.MatchStats {
	return api.MatchStats{
		PendingMatches:    s.Pending,
		AcceptedMatches:   s.Accepted,
		RejectedMatches:   s.Rejected,
		AverageMatchScore: s.AverageScore,
	}
}
