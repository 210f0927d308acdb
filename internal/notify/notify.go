// Package notify delivers best-effort notifications about match activity.
// Delivery failures are reported to the caller for logging but must never
// fail the operation that triggered them.
package notify

import (
	"context"

	"github.com/TsikyLalaina/miharina-hub-development/internal/entities"
)

// Notifier announces ledger events to interested parties.
type Notifier interface {
	MatchCreated(ctx context.Context, m entities.Match) error
}

// Noop discards all notifications. Used when no sink is configured.
type Noop struct{}

// MatchCreated does nothing.
func (Noop) MatchCreated(_ context.Context, _ entities.Match) error { return nil }
