package service

import (
	"context"
	"time"

	"github.com/sidereusnuntius/profilechecker/internal/domain"
)

// LookupService gives every visitor their own lookup widget. Visitors are identified by opaque strings handed
// out by NewVisitor; an identifier the service does not know about starts with a blank widget.
type LookupService interface {
	NewVisitor(ctx context.Context) string
	// SetIdentifier stores the text typed by the visitor, verbatim.
	SetIdentifier(ctx context.Context, visitor, text string)
	// PerformLookup looks up the visitor's stored identifier and returns the widget's state once settled.
	PerformLookup(ctx context.Context, visitor string) domain.State
	View(ctx context.Context, visitor string) domain.State
}

type Service interface {
	LookupService
	// Sweep forgets the widgets of visitors idle since before now minus the configured TTL, returning how many
	// were removed.
	Sweep(now time.Time) int
	// Janitor calls Sweep every interval until ctx is done.
	Janitor(ctx context.Context, interval time.Duration) error
}
