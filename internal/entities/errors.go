// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the given identity.
	ErrUserNotFound = errors.New("user not found")
	// ErrProfileNotFound signals a user without a business profile.
	ErrProfileNotFound = errors.New("business profile not found")
	// ErrOpportunityNotFound signals a missing opportunity reference.
	ErrOpportunityNotFound = errors.New("opportunity not found")
	// ErrMatchNotFound signals a missing match or a caller that is not a party to it.
	ErrMatchNotFound = errors.New("match not found")
	// ErrMatchExists signals a duplicate (requester, target, opportunity) key.
	ErrMatchExists = errors.New("match exists")
	// ErrMatchDecided signals a transition attempt on a match that already left pending.
	ErrMatchDecided = errors.New("match already decided")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
)
