package web

import (
	"github.com/alexedwards/scs"
	"github.com/sidereusnuntius/profilechecker/internal/config"
	"github.com/sidereusnuntius/profilechecker/internal/locale"
	"github.com/sidereusnuntius/profilechecker/internal/service"
)

const (
	IndexRoute      = "/"
	LookupRoute     = "/lookup"
	IdentifierRoute = "/identifier"
	StaticPath      = "/static"
)

type Handler struct {
	Config         *config.Configuration
	service        service.LookupService
	SessionManager *scs.Manager
	Messages       locale.Messages
}

func New(config *config.Configuration, service service.LookupService, manager *scs.Manager) Handler {
	return Handler{
		Config:         config,
		service:        service,
		SessionManager: manager,
		Messages:       locale.New(config.Language),
	}
}
