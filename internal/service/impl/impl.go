package impl

import (
	"sync"
	"time"

	"github.com/sidereusnuntius/profilechecker/internal/config"
	"github.com/sidereusnuntius/profilechecker/internal/lookup"
	"github.com/sidereusnuntius/profilechecker/internal/service"
	"github.com/sidereusnuntius/profilechecker/internal/state"
)

var _ service.Service = (*AppService)(nil)

type visitor struct {
	widget   *lookup.Widget
	lastSeen time.Time
}

type AppService struct {
	Config  config.Configuration
	fetcher lookup.Fetcher
	now     func() time.Time

	mu       sync.Mutex
	visitors map[string]*visitor
}

func New(state *state.State) *AppService {
	return &AppService{
		Config:   state.Config,
		fetcher:  state.Fetcher,
		now:      time.Now,
		visitors: make(map[string]*visitor),
	}
}

// widget returns the visitor's widget, creating it if needed, and marks the visitor as active.
func (s *AppService) widget(id string) *lookup.Widget {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.visitors[id]
	if !ok {
		v = &visitor{widget: lookup.New(s.fetcher)}
		s.visitors[id] = v
	}
	v.lastSeen = s.now()
	return v.widget
}
