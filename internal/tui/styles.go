package tui

import "github.com/charmbracelet/lipgloss"

type palette struct {
	primary   lipgloss.Color
	secondary lipgloss.Color
	text      lipgloss.Color
	dim       lipgloss.Color
	accent    lipgloss.Color
	border    lipgloss.Color
	activeBdr lipgloss.Color
	tabActive lipgloss.Color
	tabFg     lipgloss.Color
	tabBg     lipgloss.Color
	statusBg  lipgloss.Color
	statusFg  lipgloss.Color
	green     lipgloss.Color
	red       lipgloss.Color
	amber     lipgloss.Color
}

var darkPalette = palette{
	primary:   "#7571F9",
	secondary: "#ABABAB",
	text:      "#E8E8ED",
	dim:       "#626262",
	accent:    "#F25D94",
	border:    "#383838",
	activeBdr: "#7571F9",
	tabActive: "#7571F9",
	tabFg:     "#FFFFFF",
	tabBg:     "#2A2A3E",
	statusBg:  "#16213E",
	statusFg:  "#ABABAB",
	green:     "#25D366",
	red:       "#FF5F56",
	amber:     "#FFA502",
}

var lightPalette = palette{
	primary:   "#5A56E0",
	secondary: "#3D3D3D",
	text:      "#1A1A1A",
	dim:       "#9B9B9B",
	accent:    "#D6336C",
	border:    "#DBDBDB",
	activeBdr: "#5A56E0",
	tabActive: "#5A56E0",
	tabFg:     "#FFFFFF",
	tabBg:     "#EEEEEE",
	statusBg:  "#E8E8E8",
	statusFg:  "#3D3D3D",
	green:     "#04B575",
	red:       "#D7263D",
	amber:     "#B86E00",
}

// styles is rebuilt whenever the theme is toggled.
type styles struct {
	header     lipgloss.Style
	headerDate lipgloss.Style

	pane       lipgloss.Style
	paneActive lipgloss.Style

	itemTitle    lipgloss.Style
	itemSelected lipgloss.Style
	itemCompany  lipgloss.Style
	itemSource   lipgloss.Style
	itemTags     lipgloss.Style
	lowHoursMark lipgloss.Style
	badge        lipgloss.Style

	previewTitle   lipgloss.Style
	previewCompany lipgloss.Style
	previewBody    lipgloss.Style
	previewLink    lipgloss.Style

	tabActive   lipgloss.Style
	tabInactive lipgloss.Style
	tabSep      lipgloss.Style
	filterBar   lipgloss.Style

	tableBorder lipgloss.Style
	tableCell   lipgloss.Style
	statusOK    lipgloss.Style
	statusFail  lipgloss.Style

	statusBar    lipgloss.Style
	spinner      lipgloss.Style
	searchPrompt lipgloss.Style
	placeholder  lipgloss.Style
	errText      lipgloss.Style
	accent       lipgloss.Style
	dim          lipgloss.Style
	text         lipgloss.Style
	helpCard     lipgloss.Style
}

func newStyles(dark bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	return styles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary).
			PaddingLeft(1),
		headerDate: lipgloss.NewStyle().
			Foreground(p.dim).
			Align(lipgloss.Right),

		pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border),
		paneActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.activeBdr),

		itemTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true),
		itemSelected: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),
		itemCompany:  lipgloss.NewStyle().Foreground(p.text),
		itemSource:   lipgloss.NewStyle().Foreground(p.green),
		itemTags:     lipgloss.NewStyle().Foreground(p.dim),
		lowHoursMark: lipgloss.NewStyle().Foreground(p.amber).Bold(true),
		badge: lipgloss.NewStyle().
			Foreground(p.tabFg).
			Background(p.amber).
			Padding(0, 1).
			Bold(true),

		previewTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary).
			MarginBottom(1),
		previewCompany: lipgloss.NewStyle().
			Foreground(p.green),
		previewBody: lipgloss.NewStyle().
			Foreground(p.secondary),
		previewLink: lipgloss.NewStyle().
			Foreground(p.dim).
			Italic(true).
			MarginTop(1),

		tabActive: lipgloss.NewStyle().
			Foreground(p.tabFg).
			Background(p.tabActive).
			Padding(0, 1).
			Bold(true),
		tabInactive: lipgloss.NewStyle().
			Foreground(p.secondary).
			Background(p.tabBg).
			Padding(0, 1),
		tabSep: lipgloss.NewStyle().
			Foreground(p.dim),
		filterBar: lipgloss.NewStyle().
			Background(p.statusBg).
			PaddingLeft(1),

		tableBorder: lipgloss.NewStyle().Foreground(p.border),
		tableCell:   lipgloss.NewStyle().Padding(0, 1).Foreground(p.text),
		statusOK:    lipgloss.NewStyle().Foreground(p.green).Bold(true),
		statusFail:  lipgloss.NewStyle().Foreground(p.red).Bold(true),

		statusBar: lipgloss.NewStyle().
			Background(p.statusBg).
			Foreground(p.statusFg).
			PaddingLeft(1).
			PaddingRight(1),
		spinner:      lipgloss.NewStyle().Foreground(p.accent),
		searchPrompt: lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		placeholder:  lipgloss.NewStyle().Foreground(p.dim).Italic(true),
		errText:      lipgloss.NewStyle().Foreground(p.red),
		accent:       lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		dim:          lipgloss.NewStyle().Foreground(p.dim),
		text:         lipgloss.NewStyle().Foreground(p.text),
		helpCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(1, 3),
	}
}
