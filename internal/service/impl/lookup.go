package impl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/profilechecker/internal/domain"
)

func (s *AppService) NewVisitor(ctx context.Context) string {
	return uuid.NewString()
}

func (s *AppService) SetIdentifier(ctx context.Context, visitor, text string) {
	s.widget(visitor).SetIdentifier(text)
}

func (s *AppService) PerformLookup(ctx context.Context, visitor string) domain.State {
	state := s.widget(visitor).PerformLookup(ctx)
	log.Debug().
		Str("visitor", visitor).
		Str("identifier", state.Identifier).
		Stringer("status", state.Status).
		Msg("lookup settled")
	return state
}

func (s *AppService) View(ctx context.Context, visitor string) domain.State {
	s.mu.Lock()
	v, ok := s.visitors[visitor]
	if ok {
		v.lastSeen = s.now()
	}
	s.mu.Unlock()

	if !ok {
		return domain.State{}
	}
	return v.widget.State()
}

func (s *AppService) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int
	for id, v := range s.visitors {
		if now.Sub(v.lastSeen) > s.Config.WidgetTTL {
			delete(s.visitors, id)
			removed++
		}
	}
	return removed
}

func (s *AppService) Janitor(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("janitor interval must be positive, got %s", interval)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if n := s.Sweep(now); n > 0 {
				log.Debug().Int("removed", n).Msg("evicted idle widgets")
			}
		}
	}
}
