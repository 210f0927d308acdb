// Package scoring turns raw discovery rows into scored candidates. The
// strategy is pluggable so a weighted metric can replace the default without
// touching the finder or ledger contracts.
package scoring

import "github.com/TsikyLalaina/miharina-hub-development/internal/entities"

// Strategy computes a 0-100 score and ordered reason strings for a candidate
// relative to the requesting profile.
type Strategy interface {
	ScoreBusiness(requester entities.BusinessProfile, candidate entities.BusinessProfile) (int, []string)
	ScoreOpportunity(requester entities.BusinessProfile, candidate entities.OpportunityCandidate) (int, []string)
}

const (
	businessScore    = 80
	opportunityScore = 85
)

// Constant is the default strategy: fixed score and reasons per kind.
type Constant struct{}

// NewConstant returns the default constant strategy.
func NewConstant() Constant { return Constant{} }

// ScoreBusiness returns the fixed business-candidate score and reasons.
func (Constant) ScoreBusiness(_ entities.BusinessProfile, _ entities.BusinessProfile) (int, []string) {
	return businessScore, []string{"Sector overlap", "Regional proximity", "Business synergy"}
}

// ScoreOpportunity returns the fixed opportunity-candidate score and reasons.
func (Constant) ScoreOpportunity(_ entities.BusinessProfile, _ entities.OpportunityCandidate) (int, []string) {
	return opportunityScore, []string{"Sector alignment", "Geographic match", "Business type compatibility"}
}
