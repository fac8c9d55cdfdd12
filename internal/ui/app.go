package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/roster/internal/directory"
	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/state"
)

// overlay is the screen drawn on top of the directory, if any.
type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlayDetail
	overlayMenu
	overlayActivity
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Loader    PageLoader
	Runner    ActionRunner
	Logger    *zap.Logger
	Prefs     prefs.Prefs
	PrefsPath string // empty disables saving preferences
	NoticeTTL time.Duration
	LogFile   string
	Now       func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	loader    PageLoader
	runner    ActionRunner
	logger    *zap.Logger
	prefs     prefs.Prefs
	prefsPath string
	noticeTTL time.Duration
	logFile   string
	now       func() time.Time

	// UI state
	theme   Theme
	keys    keyMap
	help    help.Model
	width   int
	height  int
	ready   bool
	overlay overlay

	// Data state
	snapshot state.Snapshot
	visible  []directory.Employee
	selected int

	// Components
	spinner  spinner.Model
	pager    paginator.Model
	search   textinput.Model
	detail   viewport.Model
	activity viewport.Model

	searching   bool
	detailID    string
	menuIndex   int
	activityErr error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ttl := opts.NoticeTTL
	if ttl <= 0 {
		ttl = DefaultNoticeTTL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	theme := GetTheme(opts.Prefs.Theme)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	pager := paginator.New()
	pager.Type = paginator.Arabic
	pager.ArabicFormat = "Page %d of %d"
	pager.PerPage = 1

	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "name or email"
	search.CharLimit = 64

	m := Model{
		ctx:       ctx,
		store:     store,
		loader:    opts.Loader,
		runner:    opts.Runner,
		logger:    logger,
		prefs:     opts.Prefs,
		prefsPath: opts.PrefsPath,
		noticeTTL: ttl,
		logFile:   opts.LogFile,
		now:       now,
		theme:     theme,
		keys:      DefaultKeyMap(),
		help:      newHelp(theme),
		spinner:   spin,
		pager:     pager,
		search:    search,
	}
	m.refresh(store.Snapshot())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(DefaultUIInterval),
		m.spinner.Tick,
		requestCmd(1, false),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detail = viewport.New(0, 0)
			m.activity = viewport.New(0, 0)
		}
		m.ready = true
		m.resizeOverlays()
		m.clampSelection()
		return m, nil

	case tickMsg:
		// Re-rendering on every tick is what expires toasts.
		cmds := []tea.Cmd{tickCmd(DefaultUIInterval)}
		if m.overlay == overlayActivity {
			cmds = append(cmds, readActivityCmd(m.logFile))
		}
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		if !m.snapshot.Loading && !m.snapshot.ActionsDisabled() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case requestMsg:
		return m, m.requestPage(msg.page, msg.force)

	case pageMsg:
		if msg.action == nil {
			return m, nil
		}
		m.dispatch(msg.action)
		return m, nil

	case actionDoneMsg:
		if _, ok := m.dispatch(msg.result); ok && m.overlay == overlayDetail {
			if _, held := m.snapshot.Employee(m.detailID); !held {
				m.overlay = overlayNone
			} else {
				m.updateDetailViewport()
			}
		}
		return m, nil

	case activityMsg:
		m.activityErr = msg.err
		m.updateActivityViewport(msg.lines)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch m.overlay {
	case overlayHelp:
		return m.renderHelp()
	case overlayDetail:
		return m.renderDetail()
	case overlayMenu:
		return m.renderMenu()
	case overlayActivity:
		return m.renderActivity()
	}
	return m.renderMain()
}

// renderMain renders header, command bar, content and footer.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	height := m.contentHeight()
	if banner := m.renderBanner(); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n")
		height--
	}
	if m.searching {
		b.WriteString(m.renderSearch())
		b.WriteString("\n")
		height--
	}

	b.WriteString(m.renderContent(max(height, 1)))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderContent picks the loading, error, empty, table or grid body.
func (m Model) renderContent(height int) string {
	styles := m.theme.Styles()
	snap := m.snapshot

	switch {
	case snap.Loading:
		msg := m.spinner.View() + " " + styles.MutedText.Render(loadingLabel(snap.Page))
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, msg)

	case snap.PageError != nil:
		msg := styles.DangerText.Render(pageErrorMessage(snap.PageError)) + "\n\n" +
			styles.FaintText.Render("press r to retry")
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center, strings.Split(msg, "\n")...))

	case len(m.visible) == 0:
		text := "No employees on this page"
		if strings.TrimSpace(snap.Search) != "" {
			text = "No employees match \"" + snap.Search + "\""
		}
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, styles.MutedText.Render(text))
	}

	if snap.View == state.GridView {
		return m.renderGrid(m.width, height)
	}
	return m.renderTable(m.width, height)
}

func (m Model) contentHeight() int {
	return m.height - chromeRows
}

// dispatch applies an action and refreshes the cached snapshot.
func (m *Model) dispatch(a state.Action) (state.Snapshot, bool) {
	snap, ok := m.store.Dispatch(a)
	m.refresh(snap)
	return snap, ok
}

// refresh caches snap and everything derived from it.
func (m *Model) refresh(snap state.Snapshot) {
	var selectedID string
	if emp, ok := m.selectedEmployee(); ok {
		selectedID = emp.ID
	}

	m.snapshot = snap
	m.visible = snap.Visible()
	m.keys.setActionsEnabled(!snap.ActionsBlocked())
	m.pager.TotalPages = snap.TotalPages()
	m.pager.Page = clampInt(snap.Page-1, 0, snap.TotalPages()-1)

	if selectedID != "" {
		if idx := directory.IndexByID(m.visible, selectedID); idx >= 0 {
			m.selected = idx
		}
	}
	m.clampSelection()
}

func (m *Model) clampSelection() {
	m.selected = clampInt(m.selected, 0, len(m.visible)-1)
}

func (m Model) selectedEmployee() (directory.Employee, bool) {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return directory.Employee{}, false
	}
	return m.visible[m.selected], true
}

// requestPage dispatches a page request and starts the fetch when the store
// accepts it.
func (m *Model) requestPage(page int, force bool) tea.Cmd {
	snap, ok := m.dispatch(state.RequestPage{Page: page, Force: force})
	if !ok {
		return nil
	}
	m.selected = 0
	m.logger.Debug("page requested", zap.Int("page", snap.Page), zap.Uint64("seq", snap.Seq))
	return tea.Batch(loadPageCmd(m.ctx, m.loader, snap.Seq, snap.Page), m.spinner.Tick)
}

// startAction begins kind on emp. It is a no-op while another action is in
// flight or the page behind the spinner is being replaced.
func (m *Model) startAction(kind state.ActionKind, emp directory.Employee) tea.Cmd {
	if m.snapshot.ActionsBlocked() {
		return nil
	}
	if _, ok := m.dispatch(state.BeginAction{Kind: kind, ID: emp.ID}); !ok {
		return nil
	}
	return tea.Batch(runActionCmd(m.ctx, m.runner, kind, emp), m.spinner.Tick)
}

func (m *Model) savePrefs() {
	m.prefs.Theme = m.theme.Name
	m.prefs.View = m.snapshot.View.String()
	m.prefs.Sort = m.snapshot.Key.String()
	m.prefs.Order = m.snapshot.Order.String()
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save prefs failed", zap.Error(err))
	}
}

func (m *Model) resizeOverlays() {
	w := min(max(m.width-8, 20), 100)
	h := max(m.height-8, 3)
	m.detail.Width = w
	m.detail.Height = h
	m.activity.Width = max(m.width-8, 20)
	m.activity.Height = h
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	if _, err := p.Run(); err != nil && m.ctx.Err() == nil {
		return err
	}
	return nil
}
