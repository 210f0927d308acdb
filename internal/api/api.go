// Package api defines the JSON transport models. Field names follow the
// platform's camelCase wire format.
package api

import "time"

// ErrorResponse is the uniform failure body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CandidateMatch is one discovery result. Opportunity-only fields are
// omitted for business candidates.
type CandidateMatch struct {
	ID           string     `json:"id"`
	BusinessName string     `json:"businessName"`
	BusinessType string     `json:"businessType"`
	Region       string     `json:"region"`
	LogoURL      string     `json:"logoUrl"`
	Description  string     `json:"description"`
	MatchScore   int        `json:"matchScore"`
	MatchReasons []string   `json:"matchReasons"`
	Sectors      []string   `json:"sectors"`
	Countries    []string   `json:"countries,omitempty"`
	Amount       *float64   `json:"amount,omitempty"`
	Currency     string     `json:"currency,omitempty"`
	Deadline     *time.Time `json:"deadline,omitempty"`
}

// FindMatchesResponse wraps discovery results.
type FindMatchesResponse struct {
	Success bool             `json:"success"`
	Matches []CandidateMatch `json:"matches"`
}

// CreateMatchRequest is the body of POST /matches.
type CreateMatchRequest struct {
	TargetUserID  string   `json:"targetUserId"`
	OpportunityID *string  `json:"opportunityId,omitempty"`
	MatchScore    *int     `json:"matchScore,omitempty"`
	MatchReasons  []string `json:"matchReasons,omitempty"`
}

// Match is the full persisted match record.
type Match struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	TargetUserID  string    `json:"targetUserId"`
	OpportunityID *string   `json:"opportunityId"`
	MatchScore    int       `json:"matchScore"`
	MatchReasons  []string  `json:"matchReasons"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateMatchResponse wraps a created match.
type CreateMatchResponse struct {
	Success bool  `json:"success"`
	Match   Match `json:"match"`
}

// MatchListItem is a match enriched with counterpart display data.
type MatchListItem struct {
	ID               string    `json:"id"`
	BusinessName     string    `json:"businessName"`
	BusinessType     string    `json:"businessType"`
	Region           string    `json:"region"`
	LogoURL          string    `json:"logoUrl"`
	OpportunityTitle *string   `json:"opportunityTitle"`
	MatchScore       int       `json:"matchScore"`
	MatchReasons     []string  `json:"matchReasons"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ListMatchesResponse wraps a match listing.
type ListMatchesResponse struct {
	Success bool            `json:"success"`
	Matches []MatchListItem `json:"matches"`
}

// UpdateMatchStatusRequest is the body of PUT /matches/:id/status.
type UpdateMatchStatusRequest struct {
	Status string `json:"status"`
}

// MatchStatusUpdate echoes the applied transition.
type MatchStatusUpdate struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpdateMatchStatusResponse wraps a transition result.
type UpdateMatchStatusResponse struct {
	Success bool              `json:"success"`
	Match   MatchStatusUpdate `json:"match"`
}

// MatchStats carries per-user aggregate counters.
type MatchStats struct {
	PendingMatches    int64   `json:"pendingMatches"`
	AcceptedMatches   int64   `json:"acceptedMatches"`
	RejectedMatches   int64   `json:"rejectedMatches"`
	AverageMatchScore float64 `json:"averageMatchScore"`
}

// StatsResponse wraps the aggregate counters.
type StatsResponse struct {
	Success bool       `json:"success"`
	Stats   MatchStats `json:"stats"`
}
