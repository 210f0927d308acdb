// Package entities contains core business entities.
package entities

import "time"

// BusinessProfile describes the business owned by a user. A user holds at
// most one profile; users without one cannot participate in matching.
type BusinessProfile struct {
	ID           string
	UserID       string
	BusinessName string
	BusinessType string
	Region       string
	Sectors      []string
	Description  string
	LogoURL      string
	CreatedAt    time.Time
}
