package ui

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/streamtabs/internal/prefs"
	"github.com/five82/streamtabs/internal/state"
)

const (
	footerRows     = 1
	defaultRefresh = 50 * time.Millisecond
)

// Options configures the UI.
type Options struct {
	Store     *state.Store
	Logger    *zap.Logger
	Refresh   time.Duration // render tick; zero uses 50ms
	ThemeName string
	// PrefsPath is where a theme picked with T is remembered; empty
	// disables saving.
	PrefsPath string
	// Clipboard receives OSC 52 sequences; nil means stdout.
	Clipboard io.Writer
}

// Model is the root Bubble Tea model. It never owns line data: every render
// pass works from a state.Frame copied out of the store.
type Model struct {
	store     *state.Store
	logger    *zap.Logger
	refresh   time.Duration
	prefsPath string
	clipboard io.Writer

	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool
	notice   string

	// Render state, rebuilt by rebuild.
	frame    state.Frame
	boxes    []tabBox
	header   []string
	body     []string
	lineRows []*state.RenderedLine
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	refresh := opts.Refresh
	if refresh <= 0 {
		refresh = defaultRefresh
	}
	clipboard := opts.Clipboard
	if clipboard == nil {
		clipboard = os.Stdout
	}

	theme := GetTheme(opts.ThemeName)
	h := help.New()
	h.Styles = theme.HelpStyles()

	return Model{
		store:     opts.Store,
		logger:    logger,
		refresh:   refresh,
		prefsPath: opts.PrefsPath,
		clipboard: clipboard,
		theme:     theme,
		keys:      DefaultKeyMap(),
		help:      h,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.refresh)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.rebuild()
		return m, nil

	case tickMsg:
		if m.ready && m.store.Version() != m.frame.Version {
			m.rebuild()
		}
		return m, tickCmd(m.refresh)

	case themeSavedMsg:
		if msg.err != nil {
			m.logger.Warn("save theme", zap.Error(msg.err))
			m.notice = "theme not saved"
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	if m.showHelp {
		return m.renderHelp()
	}

	rows := make([]string, 0, m.height)
	rows = append(rows, m.header...)
	rows = append(rows, m.body...)
	if m.height >= headerRows+footerRows+1 {
		rows = append(rows, m.renderFooter())
	}
	if len(rows) > m.height {
		rows = rows[:m.height]
	}
	return strings.Join(rows, "\n")
}

// bodyHeight is the number of rows between the header and the footer.
func (m Model) bodyHeight() int {
	h := m.height - headerRows
	if m.height >= headerRows+footerRows+1 {
		h -= footerRows
	}
	return max(h, 0)
}

// rebuild copies a fresh frame from the store and lays out every row.
func (m *Model) rebuild() {
	height := m.bodyHeight()
	m.frame = m.store.Frame(state.FrameOptions{Tail: height})
	m.boxes = layoutTabs(m.frame.Tabs, m.width, m.frame.Mode == state.Paused)
	m.header = m.renderHeader(m.boxes)
	m.body, m.lineRows = m.renderBody(height)
}

// apply forwards an intent to the store and redraws.
func (m *Model) apply(in state.Intent) bool {
	quit := m.store.Apply(in)
	m.logger.Debug("intent applied", zap.Int("kind", int(in.Kind)), zap.Int("tab", in.Tab))
	m.notice = ""
	m.rebuild()
	return quit
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help; quit still works.
		m.showHelp = false
		if !key.Matches(msg, m.keys.Quit) {
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.apply(state.Quit())
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.help.Styles = m.theme.HelpStyles()
		m.rebuild()
		return m, saveThemeCmd(m.prefsPath, m.theme.Name)

	case key.Matches(msg, m.keys.NextTab):
		m.apply(state.CycleTab())

	case key.Matches(msg, m.keys.JumpTab):
		m.apply(state.SwitchTab(tabDigit(msg.String())))

	case key.Matches(msg, m.keys.Pause):
		m.apply(state.TogglePause())

	case key.Matches(msg, m.keys.SelectMiddle):
		if line, ok := middleLine(m.lineRows); ok {
			m.apply(state.SelectLine(line.Seq, line.Text))
		}

	case key.Matches(msg, m.keys.ClearSelection):
		m.apply(state.ClearSelection())

	case key.Matches(msg, m.keys.Copy):
		sel, ok := m.store.Selection()
		if !ok {
			m.notice = "nothing selected"
			return m, nil
		}
		m.notice = "copied selection"
		return m, copyCmd(m.clipboard, sel.Text)
	}

	return m, nil
}

// handleMouse maps left clicks to tab focus or line selection.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if msg.Y < headerRows {
		if i, ok := tabAt(m.boxes, msg.X); ok {
			m.apply(state.SwitchTab(i))
		}
		return m, nil
	}

	row := msg.Y - headerRows
	if row < len(m.lineRows) && m.lineRows[row] != nil {
		line := *m.lineRows[row]
		m.apply(state.SelectLine(line.Seq, line.Text))
	}
	return m, nil
}

// Messages

type tickMsg time.Time

type themeSavedMsg struct{ err error }

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func saveThemeCmd(path, name string) tea.Cmd {
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		return themeSavedMsg{err: prefs.Save(path, prefs.Prefs{Theme: name})}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled. Keyboard and mouse input come from the controlling terminal,
// because standard input carries the line stream.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithInputTTY(),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
