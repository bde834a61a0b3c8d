// Package locale maps lookup statuses and the widget's labels to display text.
package locale

import (
	"github.com/sidereusnuntius/profilechecker/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. Statuses are keyed by their name, e.g. "status.not-found".
const (
	Title        = "title"
	Placeholder  = "placeholder"
	Check        = "check"
	ViewProfile  = "view-profile"
	Followers    = "followers"
	Repositories = "repositories"
	AvatarAlt    = "avatar-alt"
	Loading      = "loading"
	Quit         = "quit"
)

var supported = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

var catalog = map[language.Tag]map[string]string{
	language.English: {
		Title:        "GitHub Profile Checker",
		Placeholder:  "Enter GitHub username",
		Check:        "Check Profile",
		ViewProfile:  "View GitHub Profile",
		Followers:    "Followers",
		Repositories: "Repositories",
		AvatarAlt:    "%s's avatar",
		Loading:      "Checking...",
		Quit:         "enter: check profile • esc: quit",

		statusKey(domain.StatusEmptyInput):     "Please enter a valid GitHub username.",
		statusKey(domain.StatusNotFound):       "Account not found.",
		statusKey(domain.StatusFound):          "Profile found!",
		statusKey(domain.StatusOtherError):     "An error occurred. Please try again.",
		statusKey(domain.StatusNetworkFailure): "Failed to fetch profile. Please check your connection.",
	},
	language.BrazilianPortuguese: {
		Title:        "Verificador de Perfis do GitHub",
		Placeholder:  "Digite o nome de usuário do GitHub",
		Check:        "Verificar Perfil",
		ViewProfile:  "Ver Perfil no GitHub",
		Followers:    "Seguidores",
		Repositories: "Repositórios",
		AvatarAlt:    "Avatar de %s",
		Loading:      "Verificando...",
		Quit:         "enter: verificar perfil • esc: sair",

		statusKey(domain.StatusEmptyInput):     "Por favor, digite um nome de usuário válido.",
		statusKey(domain.StatusNotFound):       "Conta não encontrada.",
		statusKey(domain.StatusFound):          "Perfil encontrado!",
		statusKey(domain.StatusOtherError):     "Ocorreu um erro. Tente novamente.",
		statusKey(domain.StatusNetworkFailure): "Falha ao buscar o perfil. Verifique sua conexão.",
	},
}

func init() {
	for tag, entries := range catalog {
		for key, msg := range entries {
			if err := message.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
}

func statusKey(s domain.Status) string {
	return "status." + s.String()
}

type Messages struct {
	Tag     language.Tag
	printer *message.Printer
}

// New returns the messages for the supported language closest to lang. Unknown or malformed values fall back
// to English.
func New(lang string) Messages {
	tag, _ := language.Parse(lang)
	_, i, _ := matcher.Match(tag)
	return Messages{
		Tag:     supported[i],
		printer: message.NewPrinter(supported[i]),
	}
}

// Text returns the message for key, formatted with args.
func (m Messages) Text(key string, args ...any) string {
	return m.printer.Sprintf(key, args...)
}

// Status returns the status line for s, or an empty string if no lookup has settled.
func (m Messages) Status(s domain.Status) string {
	if !s.Set() {
		return ""
	}
	return m.printer.Sprintf(statusKey(s))
}
