// Package entities contains core business entities.
package entities

import "time"

// MatchStatus enumerates match lifecycle states.
type MatchStatus string

const (
	// StatusPending is the initial state of every match.
	StatusPending MatchStatus = "pending"
	// StatusAccepted is a terminal state.
	StatusAccepted MatchStatus = "accepted"
	// StatusRejected is a terminal state.
	StatusRejected MatchStatus = "rejected"
)

// Terminal reports whether the status permits no further transitions.
func (s MatchStatus) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// MatchDirection selects which side of a match a listing is anchored on.
type MatchDirection string

const (
	// DirectionSent lists matches where the user is the requester.
	DirectionSent MatchDirection = "sent"
	// DirectionReceived lists matches where the user is the target.
	DirectionReceived MatchDirection = "received"
)

// Match is a persisted, directional pairing between two users, optionally
// scoped to an opportunity.
type Match struct {
	ID            string
	RequesterID   string
	TargetUserID  string
	OpportunityID *string
	Score         int
	Reasons       []string
	Status        MatchStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MatchWithCounterpart enriches a match with the counterpart's business
// display data for listings. Read-side denormalization only.
type MatchWithCounterpart struct {
	Match
	BusinessName     string
	BusinessType     string
	Region           string
	LogoURL          string
	OpportunityTitle *string
}

// MatchStats aggregates a user's matches across both directions.
type MatchStats struct {
	Pending      int64
	Accepted     int64
	Rejected     int64
	AverageScore float64
}
