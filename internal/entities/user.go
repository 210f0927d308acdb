// Package entities contains core business entities.
package entities

import "time"

// User is the internal identity behind an external auth token.
type User struct {
	ID          string
	ExternalUID string
	CreatedAt   time.Time
}
