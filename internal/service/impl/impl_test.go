package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/profilechecker/internal/client"
	"github.com/sidereusnuntius/profilechecker/internal/config"
	"github.com/sidereusnuntius/profilechecker/internal/domain"
	mock_lookup "github.com/sidereusnuntius/profilechecker/internal/mocks"
	"github.com/sidereusnuntius/profilechecker/internal/state"
	"go.uber.org/mock/gomock"
)

var ctx = context.Background()

func newService(t *testing.T) (*AppService, *mock_lookup.MockFetcher) {
	ctrl := gomock.NewController(t)
	f := mock_lookup.NewMockFetcher(ctrl)
	s := New(&state.State{
		Fetcher: f,
		Config:  config.Configuration{WidgetTTL: time.Minute},
	})
	return s, f
}

func TestVisitorsAreIsolated(t *testing.T) {
	s, f := newService(t)
	f.EXPECT().User(gomock.Any(), "torvalds").Return(domain.UserRecord{Name: "Linus Torvalds"}, nil)
	f.EXPECT().User(gomock.Any(), "nobody").Return(domain.UserRecord{}, client.ErrNotFound)

	alice, bob := s.NewVisitor(ctx), s.NewVisitor(ctx)
	if alice == bob {
		t.Fatal("visitor identifiers must be unique")
	}

	s.SetIdentifier(ctx, alice, "torvalds")
	s.SetIdentifier(ctx, bob, "nobody")
	s.PerformLookup(ctx, alice)
	s.PerformLookup(ctx, bob)

	if st := s.View(ctx, alice); st.Status != domain.StatusFound || st.Summary.Name != "Linus Torvalds" {
		t.Errorf("unexpected state for first visitor: %+v", st)
	}
	if st := s.View(ctx, bob); st.Status != domain.StatusNotFound || st.Summary != nil {
		t.Errorf("unexpected state for second visitor: %+v", st)
	}
}

func TestViewUnknownVisitor(t *testing.T) {
	s, _ := newService(t)
	if diff := cmp.Diff(domain.State{}, s.View(ctx, "unknown")); diff != "" {
		t.Error(diff)
	}
	if n := len(s.visitors); n != 0 {
		t.Errorf("viewing must not allocate a widget, got %d", n)
	}
}

func TestSweep(t *testing.T) {
	s, _ := newService(t)
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return start }

	s.SetIdentifier(ctx, "idle", "torvalds")
	s.now = func() time.Time { return start.Add(50 * time.Second) }
	s.SetIdentifier(ctx, "active", "octocat")

	if n := s.Sweep(start.Add(90 * time.Second)); n != 1 {
		t.Errorf("expected 1 eviction, got %d", n)
	}
	if st := s.View(ctx, "idle"); st.Identifier != "" {
		t.Errorf("idle visitor still present: %+v", st)
	}
	if st := s.View(ctx, "active"); st.Identifier != "octocat" {
		t.Errorf("active visitor evicted: %+v", st)
	}
}

func TestJanitorStops(t *testing.T) {
	s, _ := newService(t)
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan error)
	go func() {
		done <- s.Janitor(ctx, time.Millisecond)
	}()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error: %s", err)
		}
	case <-time.After(time.Second):
		t.Error("janitor did not stop")
	}
}

func TestJanitorRejectsNonPositiveInterval(t *testing.T) {
	s, _ := newService(t)
	for _, interval := range []time.Duration{0, -time.Second} {
		if err := s.Janitor(ctx, interval); err == nil {
			t.Errorf("expected error for interval %s", interval)
		}
	}
}
