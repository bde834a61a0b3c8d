// Package tui hosts the lookup widget in a terminal: a text input, Enter to check the profile and the result
// rendered below it.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sidereusnuntius/profilechecker/internal/domain"
	"github.com/sidereusnuntius/profilechecker/internal/locale"
	"github.com/sidereusnuntius/profilechecker/internal/lookup"
)

// settledMsg is sent when a lookup started by the model returns.
type settledMsg struct {
	state domain.State
}

type Model struct {
	ctx      context.Context
	widget   *lookup.Widget
	messages locale.Messages
	styles   Styles

	input   textinput.Model
	state   domain.State
	pending int
}

func NewModel(ctx context.Context, widget *lookup.Widget, messages locale.Messages) Model {
	in := textinput.New()
	in.Placeholder = messages.Text(locale.Placeholder)
	in.CharLimit = 0
	in.Width = 40
	in.Focus()

	return Model{
		ctx:      ctx,
		widget:   widget,
		messages: messages,
		styles:   DefaultStyles(),
		input:    in,
		state:    widget.State(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			cmd := m.lookup()
			return m, cmd
		}
	case settledMsg:
		m.pending--
		// The widget only keeps the most recent lookup, so its state is authoritative over msg.state.
		m.state = m.widget.State()
		return m, nil
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.widget.SetIdentifier(after)
	}
	return m, cmd
}

func (m *Model) lookup() tea.Cmd {
	m.pending++
	m.state = domain.State{Identifier: m.input.Value()}
	widget, ctx := m.widget, m.ctx
	return func() tea.Msg {
		return settledMsg{state: widget.PerformLookup(ctx)}
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.messages.Text(locale.Title)))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.pending > 0 {
		b.WriteString(m.styles.Label.Render(m.messages.Text(locale.Loading)))
	} else if out := Render(m.state, m.messages, m.styles); out != "" {
		b.WriteString(out)
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.messages.Text(locale.Quit)))
	b.WriteString("\n")
	return b.String()
}

// State returns the widget state the model currently displays.
func (m Model) State() domain.State {
	return m.state
}
