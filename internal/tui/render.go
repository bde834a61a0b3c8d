package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sidereusnuntius/profilechecker/internal/domain"
	"github.com/sidereusnuntius/profilechecker/internal/locale"
)

// Render draws the status line and, when present, the profile card. It returns an empty string for a widget
// on which no lookup has settled.
func Render(s domain.State, m locale.Messages, styles Styles) string {
	if !s.Status.Set() {
		return ""
	}

	style := styles.Failure
	if s.Status.Success() {
		style = styles.Success
	}
	out := style.Render(m.Status(s.Status))

	if s.Summary != nil {
		out = lipgloss.JoinVertical(lipgloss.Left, out, card(*s.Summary, m, styles))
	}
	return out
}

func card(p domain.ProfileSummary, m locale.Messages, styles Styles) string {
	counter := func(n int, label string) string {
		return lipgloss.JoinVertical(lipgloss.Center,
			styles.Counter.Render(strconv.Itoa(n)),
			styles.Label.Render(m.Text(label)),
		)
	}

	counters := lipgloss.JoinHorizontal(lipgloss.Top,
		counter(p.Followers, locale.Followers),
		"    ",
		counter(p.PublicRepos, locale.Repositories),
	)

	var b strings.Builder
	b.WriteString(styles.Name.Render(p.Name))
	b.WriteString("\n")
	b.WriteString(styles.Link.Render(p.ProfileURL))
	b.WriteString("\n")
	b.WriteString(styles.Label.Render(p.AvatarURL))
	b.WriteString("\n\n")
	b.WriteString(counters)
	return styles.Card.Render(b.String())
}
