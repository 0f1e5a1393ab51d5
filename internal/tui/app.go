package tui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/CaptainSeanG/PhxPilotJobs/internal/board"
	"github.com/CaptainSeanG/PhxPilotJobs/internal/browser"
	"github.com/CaptainSeanG/PhxPilotJobs/internal/feed"
	"github.com/CaptainSeanG/PhxPilotJobs/internal/filter"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeFilter
	modeHistory
	modeHelp
)

type App struct {
	session *board.Session
	loader  *feed.Loader
	primary string
	backup  string
	preset  board.Preset

	lowHours float64

	mode          mode
	cursor        int
	historyCursor int

	width  int
	height int

	// Sub-components
	searchInput textinput.Model
	spinner     spinner.Model
	filterBar   filterBar
	st          styles

	// Last failure to open a link; cleared on the next key.
	err error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Session  *board.Session
	Loader   *feed.Loader
	Primary  string
	Backup   string
	Preset   board.Preset
	LowHours float64
}

func NewApp(opts RunOpts) *App {
	if opts.LowHours <= 0 {
		opts.LowHours = filter.LowHoursThreshold
	}
	st := newStyles(opts.Session.Dark())

	ti := textinput.New()
	ti.Placeholder = "Search title or company..."
	ti.Prompt = st.searchPrompt.Render("/ ")
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = st.spinner

	return &App{
		session:     opts.Session,
		loader:      opts.Loader,
		primary:     opts.Primary,
		backup:      opts.Backup,
		preset:      opts.Preset,
		lowHours:    opts.LowHours,
		searchInput: ti,
		spinner:     sp,
		st:          st,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadCmd(), a.spinner.Tick)
}

// loadCmd is the only blocking work the board does. The loader applies its
// own timeout.
func (a *App) loadCmd() tea.Cmd {
	loader := a.loader
	primary, backup := a.primary, a.backup
	return func() tea.Msg {
		res, err := loader.LoadWithBackup(context.Background(), primary, backup)
		return feedLoadedMsg{result: res, err: err}
	}
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return openErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		a.err = nil
		return a.handleKey(msg)

	case feedLoadedMsg:
		a.applyLoad(msg)
		return a, nil

	case openErrMsg:
		log.Printf("open link: %v", msg.err)
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.session.Mode() == board.Loading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) applyLoad(msg feedLoadedMsg) {
	if msg.err != nil {
		log.Printf("load feed %s: %v", a.primary, msg.err)
		a.session.Failed(msg.err)
		return
	}
	if msg.result.Backup {
		log.Printf("load feed %s: %v; showing backup %s", a.primary, msg.result.PrimaryErr, a.backup)
	}
	a.session.Loaded(msg.result)
	if a.session.Mode() == board.Error {
		log.Printf("load feed %s: %v", a.primary, a.session.Err())
		return
	}
	a.session.Apply(a.preset)
	a.searchInput.SetValue(a.session.Filter().SearchText)
	a.cursor = 0
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeFilter:
		return a.handleFilterKey(msg)
	case modeHistory:
		return a.handleHistoryKey(msg)
	case modeHelp:
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			a.mode = modeNormal
		}
		return a, nil
	}

	visible := a.session.Visible()
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.cursor < len(visible)-1 {
			a.cursor++
		}
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
	case "g", "home":
		a.cursor = 0
	case "G", "end":
		a.cursor = max(0, len(visible)-1)
	case "o", "enter":
		if a.cursor < len(visible) && visible[a.cursor].Link != "" {
			return a, openBrowserCmd(visible[a.cursor].Link)
		}
	case "/":
		a.mode = modeSearch
		a.searchInput.SetValue(a.session.Filter().SearchText)
		a.searchInput.CursorEnd()
		a.searchInput.Focus()
		return a, textinput.Blink
	case "f":
		a.mode = modeFilter
		a.filterBar.filterMode = true
		a.filterBar.move(0, len(a.session.Tokens()))
	case "c":
		a.searchInput.SetValue("")
		a.mutate(a.session.ClearFilters)
	case "d":
		dates := a.session.Dates()
		if len(dates) == 0 {
			return a, nil
		}
		a.mode = modeHistory
		a.historyCursor = 0
		for i, d := range dates {
			if d == a.session.Selection().Date {
				a.historyCursor = i
			}
		}
	case "n":
		a.mutate(a.session.ResetToToday)
	case "t":
		a.toggleTheme()
	case "?":
		a.mode = modeHelp
	}

	return a, nil
}

// mutate runs a session action and puts the cursor back on the first tile
// when the visible set changed.
func (a *App) mutate(action func()) {
	rev := a.session.Revision()
	action()
	if a.session.Revision() != rev {
		a.cursor = 0
	}
}

func (a *App) toggleTheme() {
	a.session.ToggleTheme()
	a.st = newStyles(a.session.Dark())
	a.spinner.Style = a.st.spinner
	a.searchInput.Prompt = a.st.searchPrompt.Render("/ ")
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.mutate(func() { a.session.SetSearch("") })
		return a, nil
	case "enter":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	// SetSearch ignores unchanged text, so cursor moves cost nothing.
	value := a.searchInput.Value()
	a.mutate(func() { a.session.SetSearch(value) })
	return a, cmd
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tokens := a.session.Tokens()
	switch msg.String() {
	case "esc", "f":
		a.mode = modeNormal
		a.filterBar.filterMode = false
	case "left", "h":
		a.filterBar.move(-1, len(tokens))
	case "right", "l":
		a.filterBar.move(1, len(tokens))
	case " ", "enter":
		if tok, ok := a.filterBar.current(tokens); ok {
			a.mutate(func() { a.session.ToggleTag(tok) })
		}
	case "c":
		a.searchInput.SetValue("")
		a.mutate(a.session.ClearFilters)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		if idx < len(tokens) {
			a.filterBar.filterCursor = idx
			a.mutate(func() { a.session.ToggleTag(tokens[idx]) })
		}
	}
	return a, nil
}

func (a *App) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	dates := a.session.Dates()
	switch msg.String() {
	case "esc", "d":
		a.mode = modeNormal
	case "j", "down":
		if a.historyCursor < len(dates)-1 {
			a.historyCursor++
		}
	case "k", "up":
		if a.historyCursor > 0 {
			a.historyCursor--
		}
	case "enter", " ":
		if a.historyCursor < len(dates) {
			date := dates[a.historyCursor]
			a.mutate(func() { a.session.SelectDate(date) })
		}
		a.mode = modeNormal
	case "n":
		a.mutate(a.session.ResetToToday)
		a.mode = modeNormal
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) selected() *feed.Listing {
	visible := a.session.Visible()
	if a.cursor < len(visible) {
		return &visible[a.cursor]
	}
	return nil
}

func (a *App) View() string {
	if a.width == 0 {
		return a.st.accent.Render("  phxpilotjobs")
	}

	if a.session.Mode() == board.Loading {
		return a.withStatusBar(renderSplash(a.spinner.View(), a.session.Placeholder().Message(), a.st, a.width, a.height-1), " Loading…")
	}

	if a.mode == modeHelp {
		return a.withStatusBar(a.renderHelp(), "")
	}

	// Layout calculations
	headerHeight := 1
	filterHeight := 1
	statusHeight := 1
	contentHeight := a.height - headerHeight - filterHeight - statusHeight - 2 // borders
	if contentHeight < 3 {
		contentHeight = 3
	}

	listWidth := int(float64(a.width) * 0.45)
	rightWidth := a.width - listWidth

	header := a.renderHeader()

	bar := a.filterBar.render(a.session.Tokens(), a.session.Filter(), a.st, a.width)
	if a.mode == modeSearch {
		bar = a.searchInput.View()
	}

	// List pane
	innerListW := listWidth - 4
	listContent := renderList(a.session.Visible(), a.session.Placeholder(), a.cursor, contentHeight, innerListW, a.lowHours, a.st)
	listStyle := a.st.paneActive
	if a.mode == modeHistory {
		listStyle = a.st.pane
	}
	listPane := listStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)

	// Right column: preview or history picker above the source status table.
	table := renderStatusTable(a.session.Results(), a.st)
	tableHeight := lipgloss.Height(table)
	topHeight := contentHeight - tableHeight - 2
	if topHeight < 3 {
		topHeight = 3
	}
	innerRightW := rightWidth - 4
	var top string
	topStyle := a.st.pane
	if a.mode == modeHistory {
		topStyle = a.st.paneActive
		top = renderHistory(a.session.Dates(), a.historyCursor, a.session.Selection().Date, a.st, innerRightW, topHeight)
	} else {
		top = renderPreview(a.selected(), a.lowHours, a.st, innerRightW, topHeight)
	}
	topPane := topStyle.Width(rightWidth - 2).Height(topHeight).Render(top)
	right := lipgloss.JoinVertical(lipgloss.Left, topPane, table)

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, right)

	return lipgloss.JoinVertical(lipgloss.Left, header, bar, content, a.renderStatusLine())
}

func (a *App) renderHeader() string {
	left := a.st.header.Render("PHX Pilot Jobs")
	right := a.st.headerDate.Render(a.session.UpdatedLabel() + " ")
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + fmt.Sprintf("%*s", gap, "") + right
}

func (a *App) renderStatusLine() string {
	var left string
	switch {
	case a.err != nil:
		left = a.st.errText.Render(a.err.Error())
	case a.session.Mode() == board.Error:
		left = a.st.errText.Render(board.PlaceholderLoadFailed.Message() + ": " + a.session.Err().Error())
	default:
		left = a.session.FilterSummary()
		if a.session.FromBackup() {
			left += " · backup feed"
		}
	}
	return renderStatusBar(left, hintsFor(a.mode), a.st, a.width)
}

func (a *App) withStatusBar(content, left string) string {
	bar := renderStatusBar(left, hintsFor(a.mode), a.st, a.width)
	lines := strings.Split(content, "\n")
	for len(lines) < a.height-1 {
		lines = append(lines, "")
	}
	if len(lines) >= a.height {
		lines = lines[:max(0, a.height-1)]
	}
	lines = append(lines, bar)
	return strings.Join(lines, "\n")
}

func (a *App) renderHelp() string {
	help := a.st.accent.Render("phxpilotjobs") + a.st.dim.Render("  keyboard shortcuts") + "\n\n" +
		a.st.dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓      Move between listings\n" +
		"  g/G           First / last listing\n" +
		"  o, enter      Open listing in browser\n\n" +
		a.st.dim.Render("Filtering") + "\n" +
		"  /             Search title and company\n" +
		"  f             Filter mode (←/→ move, space toggle, 1-9)\n" +
		"  c             Clear tags and search\n\n" +
		a.st.dim.Render("History") + "\n" +
		"  d             Pick a snapshot date\n" +
		"  n             Back to current listings\n\n" +
		a.st.dim.Render("General") + "\n" +
		"  t             Toggle light/dark theme\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c     Quit"

	card := a.st.helpCard.Render(help)

	return lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
