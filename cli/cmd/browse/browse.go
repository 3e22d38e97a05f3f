package browse

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/jsonify/inventory"
	"github.com/ardnew/jsonify/log"
)

const (
	prompt       = "➜ "
	defaultWidth = 80
)

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// Options selects how records are rendered.
type Options struct {
	Format inventory.Format
	Indent int
	Input  io.Reader // nil reads the terminal
	Output io.Writer // nil writes the terminal
}

// model is the Bubble Tea model of the prompt.
type model struct {
	ctxFunc    func() context.Context
	logger     log.Logger
	input      textinput.Model
	store      *inventory.Store
	keys       []string
	opts       Options
	matches    fuzzy.Matches // current fuzzy match results
	suggIdx    int           // selected candidate index
	tabActive  bool          // whether user is tab-cycling
	preTabText string        // input text before tab-cycling began
	width      int           // terminal width for ellipsization
	shown      string        // last printed output
	quitting   bool
}

// Run starts the prompt over the records of store.
func Run(ctx context.Context, store *inventory.Store, opts Options) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if store.Len() == 0 {
		return ErrNoRecords
	}

	m := newModel(ctx, store, opts)
	m.logger.DebugContext(ctx, "browse start", slog.Int("records", store.Len()))

	popts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		popts = append(popts, tea.WithInput(opts.Input))
	}

	if opts.Output != nil {
		popts = append(popts, tea.WithOutput(opts.Output))
	}

	_, err = tea.NewProgram(m, popts...).Run()

	return err
}

func newModel(ctx context.Context, store *inventory.Store, opts Options) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Placeholder = "node name"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = defaultWidth

	return model{
		ctxFunc: func() context.Context { return ctx },
		logger:  log.With(slog.String("component", "browse")),
		input:   ti,
		store:   store,
		keys:    store.Keys(),
		opts:    opts,
		suggIdx: -1,
		width:   defaultWidth,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(prompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case strings.TrimSpace(m.input.Value()) == "":
		b.WriteString(hintStyle.Render(
			fmt.Sprintf("%d records; type a name, Tab to complete, Enter to show", len(m.keys)),
		))

	case len(m.matches) > 0:
		b.WriteString(renderCandidateBar(m.matches, m.suggIdx, m.tabActive, m.width))
	}

	b.WriteString("\n")

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.refreshMatches()

		return m, nil

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.input.CursorEnd()
			m.refreshMatches()

			return m, nil
		}

		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.refreshMatches()

		return m, nil

	case tea.KeyEnter:
		if m.tabActive && len(m.matches) > 0 {
			// Lock in the current tab candidate without showing it.
			m.tabActive = false
			m.refreshMatches()

			return m, nil
		}

		return m.show()

	case tea.KeyTab:
		return m.cycle(1), nil

	case tea.KeyShiftTab:
		return m.cycle(-1), nil
	}

	var cmd tea.Cmd

	m.tabActive = false
	m.input, cmd = m.input.Update(msg)
	m.refreshMatches()

	return m, cmd
}

// cycle moves the tab selection by step, wrapping at either end.
func (m model) cycle(step int) model {
	if len(m.matches) == 0 {
		return m
	}

	// Single candidate: complete and confirm immediately.
	if len(m.matches) == 1 {
		m.input.SetValue(m.matches[0].Str)
		m.input.CursorEnd()
		m.tabActive = false
		m.suggIdx = -1

		return m
	}

	if m.tabActive {
		m.suggIdx = (m.suggIdx + step + len(m.matches)) % len(m.matches)
	} else {
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.suggIdx = 0

		if step < 0 {
			m.suggIdx = len(m.matches) - 1
		}
	}

	m.input.SetValue(m.matches[m.suggIdx].Str)
	m.input.CursorEnd()

	return m
}

func (m *model) refreshMatches() {
	m.matches = nil
	m.suggIdx = -1

	if word := strings.TrimSpace(m.input.Value()); word != "" {
		m.matches = fuzzy.Find(word, m.keys)
	}
}

// show prints the record named by the input, or a not-found notice.
func (m model) show() (model, tea.Cmd) {
	name := strings.TrimSpace(m.input.Value())
	if name == "" {
		return m, nil
	}

	rec, err := m.store.Lookup(name)
	if err != nil {
		m.logger.DebugContext(m.ctxFunc(), "browse miss", slog.Any("error", err))

		m.shown = fmt.Sprintf("entry [%s] was not found!", name)

		return m, tea.Println(errorStyle.Render(m.shown))
	}

	var buf bytes.Buffer

	err = rec.Write(m.ctxFunc(), &buf, m.opts.Format, m.opts.Indent)
	if err != nil {
		m.shown = err.Error()

		return m, tea.Println(errorStyle.Render(m.shown))
	}

	m.shown = strings.TrimRight(buf.String(), "\n")
	m.input.SetValue("")
	m.refreshMatches()

	return m, tea.Println(resultStyle.Render(m.shown))
}
