// Package templates renders the HTML pages. The components are generated from the .templ files by templ.
package templates

//go:generate go tool templ generate

import (
	"github.com/a-h/templ"
	"github.com/sidereusnuntius/profilechecker/internal/locale"
)

type PageData struct {
	PageTitle string
	Messages  locale.Messages
	Child     templ.Component
}

const (
	LookupAction     = "/lookup"
	IdentifierAction = "/identifier"
	IdentifierField  = "username"
)
