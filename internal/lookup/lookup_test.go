package lookup

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/profilechecker/internal/client"
	"github.com/sidereusnuntius/profilechecker/internal/domain"
	mock_lookup "github.com/sidereusnuntius/profilechecker/internal/mocks"
	"go.uber.org/mock/gomock"
)

var ctx = context.Background()

var torvalds = domain.UserRecord{
	Name:        "Linus Torvalds",
	AvatarURL:   "https://avatars.githubusercontent.com/u/1024025?v=4",
	HTMLURL:     "https://github.com/torvalds",
	Followers:   200000,
	PublicRepos: 10,
}

func newWidget(t *testing.T) (*Widget, *mock_lookup.MockFetcher) {
	ctrl := gomock.NewController(t)
	f := mock_lookup.NewMockFetcher(ctrl)
	return New(f), f
}

func TestEmptyInputSkipsNetwork(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n "} {
		w, _ := newWidget(t)
		w.SetIdentifier(input)

		s := w.PerformLookup(ctx)
		expected := domain.State{Identifier: input, Status: domain.StatusEmptyInput}
		if diff := cmp.Diff(expected, s); diff != "" {
			t.Errorf("input %q: %s", input, diff)
		}
	}
}

func TestPerformLookup(t *testing.T) {
	summary := domain.Summarize(torvalds)
	cases := []struct {
		name     string
		record   domain.UserRecord
		err      error
		expected domain.State
	}{
		{
			"found",
			torvalds,
			nil,
			domain.State{Identifier: "torvalds", Status: domain.StatusFound, Summary: &summary},
		},
		{
			"not found",
			domain.UserRecord{},
			client.ErrNotFound,
			domain.State{Identifier: "torvalds", Status: domain.StatusNotFound},
		},
		{
			"server error",
			domain.UserRecord{},
			&client.StatusError{Code: 500, Status: "500 Internal Server Error"},
			domain.State{Identifier: "torvalds", Status: domain.StatusOtherError},
		},
		{
			"rate limited",
			domain.UserRecord{},
			&client.StatusError{Code: 403, Status: "403 Forbidden"},
			domain.State{Identifier: "torvalds", Status: domain.StatusOtherError},
		},
		{
			"transport failure",
			domain.UserRecord{},
			&net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
			domain.State{Identifier: "torvalds", Status: domain.StatusNetworkFailure},
		},
		{
			"cancelled",
			domain.UserRecord{},
			context.Canceled,
			domain.State{Identifier: "torvalds", Status: domain.StatusNetworkFailure},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, f := newWidget(t)
			f.EXPECT().User(gomock.Any(), "torvalds").Return(c.record, c.err)
			w.SetIdentifier("torvalds")

			s := w.PerformLookup(ctx)
			if diff := cmp.Diff(c.expected, s); diff != "" {
				t.Error(diff)
			}
			if diff := cmp.Diff(s, w.State()); diff != "" {
				t.Error("returned state differs from stored state:", diff)
			}
		})
	}
}

func TestMissingNameFallsBack(t *testing.T) {
	w, f := newWidget(t)
	record := torvalds
	record.Name = ""
	f.EXPECT().User(gomock.Any(), "torvalds").Return(record, nil)
	w.SetIdentifier("torvalds")

	s := w.PerformLookup(ctx)
	expected := &domain.ProfileSummary{
		Name:        domain.NoName,
		AvatarURL:   torvalds.AvatarURL,
		ProfileURL:  torvalds.HTMLURL,
		Followers:   torvalds.Followers,
		PublicRepos: torvalds.PublicRepos,
	}
	if diff := cmp.Diff(expected, s.Summary); diff != "" {
		t.Error(diff)
	}
}

func TestIdentifierIsNotTrimmed(t *testing.T) {
	w, f := newWidget(t)
	f.EXPECT().User(gomock.Any(), " torvalds ").Return(domain.UserRecord{}, client.ErrNotFound)
	w.SetIdentifier(" torvalds ")

	if s := w.PerformLookup(ctx); s.Status != domain.StatusNotFound {
		t.Errorf("expected not-found, got %s", s.Status)
	}
}

func TestIdempotent(t *testing.T) {
	w, f := newWidget(t)
	f.EXPECT().User(gomock.Any(), "torvalds").Return(torvalds, nil).Times(2)
	w.SetIdentifier("torvalds")

	first := w.PerformLookup(ctx)
	second := w.PerformLookup(ctx)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Error(diff)
	}
}

func TestFailureClearsPreviousSummary(t *testing.T) {
	w, f := newWidget(t)
	gomock.InOrder(
		f.EXPECT().User(gomock.Any(), "torvalds").Return(torvalds, nil),
		f.EXPECT().User(gomock.Any(), "nobody").Return(domain.UserRecord{}, client.ErrNotFound),
	)

	w.SetIdentifier("torvalds")
	if s := w.PerformLookup(ctx); s.Summary == nil {
		t.Fatal("expected a summary")
	}

	w.SetIdentifier("nobody")
	s := w.PerformLookup(ctx)
	if s.Summary != nil {
		t.Errorf("stale summary kept: %+v", s.Summary)
	}
	if s.Status != domain.StatusNotFound {
		t.Errorf("expected not-found, got %s", s.Status)
	}

	w.SetIdentifier(" ")
	if s = w.PerformLookup(ctx); s.Status != domain.StatusEmptyInput || s.Summary != nil {
		t.Errorf("unexpected state after empty input: %+v", s)
	}
}

func TestSetIdentifierKeepsResult(t *testing.T) {
	w, f := newWidget(t)
	f.EXPECT().User(gomock.Any(), "torvalds").Return(torvalds, nil)
	w.SetIdentifier("torvalds")
	w.PerformLookup(ctx)

	w.SetIdentifier("someone else")
	s := w.State()
	if s.Identifier != "someone else" {
		t.Errorf("identifier not stored, got %q", s.Identifier)
	}
	if s.Status != domain.StatusFound || s.Summary == nil {
		t.Errorf("typing must not clear the last result: %+v", s)
	}
}

func TestLatestLookupWins(t *testing.T) {
	w, f := newWidget(t)
	started := make(chan struct{})
	release := make(chan struct{})
	f.EXPECT().User(gomock.Any(), "first").DoAndReturn(func(ctx context.Context, _ string) (domain.UserRecord, error) {
		close(started)
		<-ctx.Done()
		<-release
		// A late success must not overwrite the newer lookup.
		return torvalds, nil
	})
	f.EXPECT().User(gomock.Any(), "second").Return(domain.UserRecord{}, client.ErrNotFound)

	w.SetIdentifier("first")
	done := make(chan domain.State)
	go func() {
		done <- w.PerformLookup(ctx)
	}()
	<-started

	w.SetIdentifier("second")
	second := w.PerformLookup(ctx)
	close(release)
	first := <-done

	expected := domain.State{Identifier: "second", Status: domain.StatusNotFound}
	for name, s := range map[string]domain.State{"second": second, "first": first, "final": w.State()} {
		if diff := cmp.Diff(expected, s); diff != "" {
			t.Errorf("%s: %s", name, diff)
		}
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	w, f := newWidget(t)
	f.EXPECT().User(gomock.Any(), "torvalds").Return(torvalds, nil)
	w.SetIdentifier("torvalds")

	s := w.PerformLookup(ctx)
	s.Summary.Name = "changed"
	if w.State().Summary.Name != torvalds.Name {
		t.Error("snapshot aliases the widget's summary")
	}
}
