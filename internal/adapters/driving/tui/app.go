package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/gearscan/internal/adapters/driving/render"
	"github.com/custodia-labs/gearscan/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/gearscan/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/gearscan/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/gearscan/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/gearscan/internal/core/domain"
)

// chromeRows is the number of rows taken by the header and the status bar.
const chromeRows = 2

// App is the schematic viewer following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// path is the schematic being viewed.
	path string

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	bar    *status.Bar

	// grid and analysis hold the last successful scan.
	grid        *domain.Grid
	analysis    *domain.Analysis
	highlighter *render.Highlighter

	// top and left are the first visible row and column.
	top  int
	left int

	// showHelp replaces the schematic with the key reference.
	showHelp bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first window size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a viewer for the schematic at path.
func NewApp(ports *Ports, path string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if path == "" {
		return nil, fmt.Errorf("creating app: %w", ErrMissingPath)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:  ports,
		path:   path,
		ctx:    context.Background(),
		styles: s,
		keymap: km,
		bar:    status.NewBar(s, km),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithStyles replaces the default styles, for example with plain styles
// when colour is disabled.
func (a *App) WithStyles(s *styles.Styles) *App {
	a.styles = s
	a.bar = status.NewBar(s, a.keymap)
	a.bar.SetWidth(max(a.width, 1))
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("gearscan - "+a.path),
		a.load(),
	)
}

// load scans the schematic in the background.
func (a *App) load() tea.Cmd {
	ctx, svc, path := a.ctx, a.ports.Schematic, a.path
	return func() tea.Msg {
		grid, err := svc.Load(ctx, path)
		if err != nil {
			return messages.SchematicLoaded{Err: err}
		}
		analysis, err := svc.AnalyseGrid(grid)
		if err != nil {
			return messages.SchematicLoaded{Err: err}
		}
		return messages.SchematicLoaded{Grid: grid, Analysis: analysis}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.SchematicLoaded:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.err = nil
		a.grid = msg.Grid
		a.analysis = msg.Analysis
		a.highlighter = render.NewHighlighter(msg.Grid, msg.Analysis, a.styles)
		a.bar.SetAnalysis(msg.Analysis)
		a.bar.SetState(status.StateReady)
		a.scrollTo(a.top, a.left)
		return a, nil

	case messages.ReloadRequested:
		a.bar.SetState(status.StateLoading)
		return a, a.load()

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	page := a.bodyHeight()

	switch {
	case keymap.Matches(k, a.keymap.Quit):
		if a.showHelp && k == "esc" {
			a.toggleHelp()
			return a, nil
		}
		return a, tea.Quit
	case keymap.Matches(k, a.keymap.Help):
		a.toggleHelp()
	case keymap.Matches(k, a.keymap.Reload):
		return a, func() tea.Msg { return messages.ReloadRequested{} }
	case keymap.Matches(k, a.keymap.Up):
		a.scrollTo(a.top-1, a.left)
	case keymap.Matches(k, a.keymap.Down):
		a.scrollTo(a.top+1, a.left)
	case keymap.Matches(k, a.keymap.Left):
		a.scrollTo(a.top, a.left-1)
	case keymap.Matches(k, a.keymap.Right):
		a.scrollTo(a.top, a.left+1)
	case keymap.Matches(k, a.keymap.PageUp):
		a.scrollTo(a.top-page, a.left)
	case keymap.Matches(k, a.keymap.PageDown):
		a.scrollTo(a.top+page, a.left)
	case keymap.Matches(k, a.keymap.Top):
		a.scrollTo(0, a.left)
	case keymap.Matches(k, a.keymap.Bottom):
		a.scrollTo(a.grid.Rows(), a.left)
	}
	return a, nil
}

func (a *App) toggleHelp() {
	a.showHelp = !a.showHelp
	switch {
	case a.showHelp:
		a.bar.SetState(status.StateHelp)
	case a.err != nil:
		a.bar.SetState(status.StateError)
	default:
		a.bar.SetState(status.StateReady)
	}
}

func (a *App) setError(err error) {
	a.err = err
	a.bar.SetState(status.StateError)
	a.bar.SetMessage(err.Error())
}

// scrollTo moves the viewport, clamped so the last row and the widest
// column stay reachable.
func (a *App) scrollTo(top, left int) {
	maxTop := max(a.grid.Rows()-a.bodyHeight(), 0)
	maxLeft := max(a.gridWidth()-a.width, 0)
	a.top = min(max(top, 0), maxTop)
	a.left = min(max(left, 0), maxLeft)
	a.bar.SetPosition(a.top, a.grid.Rows())
}

func (a *App) gridWidth() int {
	w := 0
	for row := range a.grid.Rows() {
		w = max(w, a.grid.Width(row))
	}
	return w
}

func (a *App) bodyHeight() int {
	return max(a.height-chromeRows, 1)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(a.header())
	b.WriteString("\n")

	body := a.body()
	for i := range a.bodyHeight() {
		if i < len(body) {
			b.WriteString(body[i])
		}
		b.WriteString("\n")
	}

	b.WriteString(a.bar.View())
	return b.String()
}

func (a *App) header() string {
	title := a.styles.Title.Render(a.path)
	if a.highlighter == nil {
		return title
	}
	return title + "  " + a.highlighter.Legend()
}

func (a *App) body() []string {
	if a.showHelp {
		return strings.Split(a.viewHelp(), "\n")
	}
	if a.highlighter == nil {
		if a.err != nil {
			return []string{a.styles.Error.Render(a.err.Error())}
		}
		return []string{a.styles.Muted.Render("Scanning " + a.path + "...")}
	}

	lines := make([]string, 0, a.bodyHeight())
	for row := a.top; row < a.grid.Rows() && len(lines) < a.bodyHeight(); row++ {
		lines = append(lines, a.highlighter.Line(row, a.left, a.left+a.width))
	}
	return lines
}

// viewHelp renders the key reference.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString("Keys\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-10s %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}
	b.WriteString("[?] back to schematic")
	return b.String()
}

// Run starts the viewer.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Analysis returns the last successful analysis, or nil.
func (a *App) Analysis() *domain.Analysis {
	return a.analysis
}

// Top returns the first visible row.
func (a *App) Top() int {
	return a.top
}

// Left returns the first visible column.
func (a *App) Left() int {
	return a.left
}

// ShowingHelp reports whether the key reference is displayed.
func (a *App) ShowingHelp() bool {
	return a.showHelp
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.bar.SetWidth(width)
	a.scrollTo(a.top, a.left)
}
