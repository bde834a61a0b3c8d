package state

import (
	"github.com/sidereusnuntius/profilechecker/internal/config"
	"github.com/sidereusnuntius/profilechecker/internal/lookup"
)

type State struct {
	Fetcher lookup.Fetcher
	Config  config.Configuration
}
