// Package entities contains core business entities.
package entities

import "time"

// Opportunity is a funding or partnership offer posted by a business.
type Opportunity struct {
	ID          string
	BusinessID  string
	Title       string
	IsActive    bool
	Sectors     []string
	Countries   []string
	Amount      float64
	Currency    string
	Description string
	Deadline    *time.Time
	CreatedAt   time.Time
}

// OpportunityCandidate pairs an opportunity with display data of the
// business that posted it.
type OpportunityCandidate struct {
	Opportunity
	BusinessName string
	BusinessType string
	Region       string
	LogoURL      string
}
