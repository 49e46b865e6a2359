// Package commandbar is the interactive butler command bar: a single text
// input that dispatches commands and shows the outcome and recent history.
package commandbar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/amonks/butler/command"
	"github.com/amonks/butler/interpreter"
	internalstrings "github.com/amonks/butler/internal/strings"
	"github.com/amonks/butler/internal/ui"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Dispatcher interprets one command.
type Dispatcher interface {
	Dispatch(ctx context.Context, text string) interpreter.Result
}

// History lists recent commands, newest first.
type History interface {
	Recent(n int) []command.Command
}

// Options configures the command bar.
type Options struct {
	// Recent is how many history entries to show.
	Recent int
	Now    func() time.Time
}

func normalizeOptions(opts Options) Options {
	if opts.Recent < 0 {
		opts.Recent = 0
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return opts
}

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusSuccess
	statusError
)

type model struct {
	ctx             context.Context
	dispatcher      Dispatcher
	history         History
	opts            Options
	input           textinput.Model
	width           int
	pending         bool
	status          string
	statusLevel     statusLevel
	showSuggestions bool
}

type dispatchedMsg struct {
	result interpreter.Result
}

// Run starts the command bar and blocks until the user quits.
func Run(ctx context.Context, d Dispatcher, h History, opts Options) error {
	if d == nil {
		return fmt.Errorf("dispatcher is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	program := tea.NewProgram(newModel(ctx, d, h, opts), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func newModel(ctx context.Context, d Dispatcher, h History, opts Options) model {
	input := textinput.New()
	input.Prompt = promptStyle.Render("> ")
	input.Placeholder = "add task Buy milk tomorrow at 5pm"
	input.CharLimit = 1000
	input.Focus()

	return model{
		ctx:        ctx,
		dispatcher: d,
		history:    h,
		opts:       normalizeOptions(opts),
		input:      input,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil
	case tea.KeyMsg:
		if updated, cmd, handled := m.handleKey(msg); handled {
			return updated, cmd
		}
	case dispatchedMsg:
		return m.handleDispatched(msg), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit, true
	case "?":
		if m.input.Value() == "" {
			m.showSuggestions = !m.showSuggestions
			return m, nil, true
		}
	case "enter":
		updated, cmd := m.submit()
		return updated, cmd, true
	}
	return m, nil, false
}

func (m model) submit() (model, tea.Cmd) {
	text := internalstrings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}
	if m.pending {
		m.status = "Still working on the last command"
		m.statusLevel = statusInfo
		return m, nil
	}

	m.input.Reset()
	m.pending = true
	m.status = "Processing: " + text
	m.statusLevel = statusInfo
	return m, m.dispatchCmd(text)
}

func (m model) dispatchCmd(text string) tea.Cmd {
	ctx, d := m.ctx, m.dispatcher
	return func() tea.Msg {
		return dispatchedMsg{result: d.Dispatch(ctx, text)}
	}
}

func (m model) handleDispatched(msg dispatchedMsg) model {
	m.pending = false
	m.status = msg.result.Summary()
	if msg.result.OK() {
		m.statusLevel = statusSuccess
	} else {
		m.statusLevel = statusError
	}
	return m
}

func (m model) View() string {
	sections := []string{
		titleStyle.Render("butler"),
		m.input.View(),
		m.renderStatusLine(),
	}
	if recent := m.renderRecent(); recent != "" {
		sections = append(sections, recent)
	}
	if m.showSuggestions {
		sections = append(sections, m.renderSuggestions())
	}
	sections = append(sections, valueMuted.Render("enter run • ? suggestions • esc quit"))
	return strings.Join(sections, "\n\n") + "\n"
}

func (m model) renderStatusLine() string {
	switch m.statusLevel {
	case statusSuccess:
		return statusSuccessStyle.Render("✓ " + m.status)
	case statusError:
		return statusErrorStyle.Render("✗ " + m.status)
	case statusInfo:
		return statusInfoStyle.Render(m.status)
	default:
		return valueMuted.Render("Type a command, or ? for examples.")
	}
}

func (m model) renderRecent() string {
	if m.history == nil || m.opts.Recent == 0 {
		return ""
	}
	commands := m.history.Recent(m.opts.Recent)
	if len(commands) == 0 {
		return ""
	}

	now := m.opts.Now()
	width := m.width
	if width <= 0 {
		width = 80
	}
	lines := []string{labelStyle.Render("Recent commands")}
	for _, cmd := range commands {
		age := valueMuted.Render(command.TimeAgo(cmd, now))
		lines = append(lines, ui.Wrap(cmd.Text, width-2, 2)+"  "+age)
	}
	return strings.Join(lines, "\n")
}

func (m model) renderSuggestions() string {
	var lines []string
	for _, group := range command.Suggestions() {
		lines = append(lines, labelStyle.Render(group.Title))
		for _, suggestion := range group.Suggestions {
			lines = append(lines, "  "+suggestion)
		}
	}
	return strings.Join(lines, "\n")
}
