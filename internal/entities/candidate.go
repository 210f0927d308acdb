// Package entities contains core business entities.
package entities

import "time"

// CandidateKind selects the entity type surfaced by discovery.
type CandidateKind string

const (
	// KindBusinesses discovers counterpart business profiles.
	KindBusinesses CandidateKind = "businesses"
	// KindOpportunities discovers active opportunities.
	KindOpportunities CandidateKind = "opportunities"
)

// Candidate is a scored discovery result. Not persisted; creating a Match
// from one is a separate, explicit operation.
type Candidate struct {
	ID           string
	BusinessName string
	BusinessType string
	Region       string
	LogoURL      string
	Description  string
	Sectors      []string
	Countries    []string
	Amount       *float64
	Currency     string
	Deadline     *time.Time
	Score        int
	Reasons      []string
}
