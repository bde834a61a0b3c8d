// Package lookup holds the profile lookup widget: the identifier typed by the user, the status of the last lookup
// and, when it succeeded, the profile summary.
package lookup

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/profilechecker/internal/client"
	"github.com/sidereusnuntius/profilechecker/internal/domain"
	"github.com/sidereusnuntius/profilechecker/internal/validate"
)

//go:generate mockgen -destination=../mocks/fetcher.go -package=mock_lookup . Fetcher

// Fetcher retrieves a user object from the remote directory. Implementations return client.ErrNotFound when the
// account does not exist and a *client.StatusError for any other unexpected status.
type Fetcher interface {
	User(ctx context.Context, identifier string) (domain.UserRecord, error)
}

// Widget is safe for concurrent use. When lookups overlap, only the most recently triggered one is applied and
// the previous in-flight request is cancelled.
type Widget struct {
	fetcher Fetcher

	mu         sync.Mutex
	identifier string
	status     domain.Status
	summary    *domain.ProfileSummary
	seq        uint64
	cancel     context.CancelFunc
}

func New(fetcher Fetcher) *Widget {
	return &Widget{fetcher: fetcher}
}

// SetIdentifier stores text verbatim.
func (w *Widget) SetIdentifier(text string) {
	w.mu.Lock()
	w.identifier = text
	w.mu.Unlock()
}

func (w *Widget) State() domain.State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot()
}

// PerformLookup clears the previous result, then looks up the stored identifier and records the outcome. The
// returned state is the widget's state once the lookup settled, which belongs to a newer lookup if this one was
// superseded in the meantime.
func (w *Widget) PerformLookup(ctx context.Context) domain.State {
	w.mu.Lock()
	w.seq++
	token := w.seq
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.status = domain.StatusNone
	w.summary = nil
	identifier := w.identifier

	if err := validate.Identifier(identifier); err != nil {
		w.status = domain.StatusEmptyInput
		defer w.mu.Unlock()
		return w.snapshot()
	}

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.mu.Unlock()
	defer cancel()

	status, summary := w.fetch(ctx, identifier)

	w.mu.Lock()
	defer w.mu.Unlock()
	if token != w.seq {
		log.Debug().Str("identifier", identifier).Stringer("status", status).Msg("discarding superseded lookup")
		return w.snapshot()
	}
	w.cancel = nil
	w.status = status
	w.summary = summary
	return w.snapshot()
}

func (w *Widget) fetch(ctx context.Context, identifier string) (domain.Status, *domain.ProfileSummary) {
	user, err := w.fetcher.User(ctx, identifier)
	if err == nil {
		summary := domain.Summarize(user)
		return domain.StatusFound, &summary
	}

	var statusErr *client.StatusError
	switch {
	case errors.Is(err, client.ErrNotFound):
		return domain.StatusNotFound, nil
	case errors.As(err, &statusErr):
		log.Debug().Str("identifier", identifier).Int("code", statusErr.Code).Msg("unexpected lookup status")
		return domain.StatusOtherError, nil
	case errors.Is(err, context.Canceled):
		log.Debug().Err(err).Str("identifier", identifier).Msg("lookup cancelled")
		return domain.StatusNetworkFailure, nil
	default:
		log.Error().Err(err).Str("identifier", identifier).Msg("error fetching profile")
		return domain.StatusNetworkFailure, nil
	}
}

// snapshot must be called with mu held.
func (w *Widget) snapshot() domain.State {
	s := domain.State{
		Identifier: w.identifier,
		Status:     w.status,
	}
	if w.summary != nil {
		summary := *w.summary
		s.Summary = &summary
	}
	return s
}
