package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

const (
	statsPanelMinWidth = 80  // Narrower terminals drop the stats panel
	statsPanelWidth    = 26  // Outer width of the stats panel
	scoreboardLimit    = 100 // Rows loaded per variant
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = boardTabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// scoreboardKeys are the scoreboard key bindings; they double as its help.
type scoreboardKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Prev, k.Next, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next variant")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev variant")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists stored runs per variant with a summary panel.
type ScoreboardModel struct {
	variants []registry.GameInfo
	current  int
	store    *storage.Store
	scores   []storage.ScoreEntry
	stats    *storage.GameStats
	table    table.Model
	help     help.Model
	keys     scoreboardKeys
	width    int
	height   int
	quitting bool
	back     bool
}

// NewScoreboardModel creates a scoreboard showing the first variant.
// A nil store shows every variant as empty.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		help:     help.New(),
		keys:     newScoreboardKeys(),
		width:    width,
		height:   height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) showStats() bool {
	return m.width >= statsPanelMinWidth
}

// newTable sizes the score table to what is left beside the stats panel.
func (m ScoreboardModel) newTable() table.Model {
	avail := m.width - 6
	if m.showStats() {
		avail -= statsPanelWidth + 2
	}
	player := min(max(avail-6-10-16-6, 8), 20)

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 6},
			{Title: "Player", Width: player},
			{Title: "Score", Width: 10},
			{Title: "When", Width: 16},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(styles)
	return t
}

// load fetches runs and stats for the current variant. Storage errors
// leave the variant empty.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.current].ID
		if scores, err := m.store.TopScores(id, scoreboardLimit); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		player := s.Player
		if player == "" {
			player = "-"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			player,
			humanize.Comma(int64(s.Score)),
			humanize.Time(s.CreatedAt),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// cycle moves the variant selection by delta, wrapping around.
func (m *ScoreboardModel) cycle(delta int) {
	if n := len(m.variants); n > 0 {
		m.current = ((m.current+delta)%n + n) % n
		m.load()
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	body := boardFrameStyle.Render(m.scoreList())
	if m.showStats() {
		panel := boardFrameStyle.Width(statsPanelWidth - 2).Render(m.statsPanel())
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", panel)
	}
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(boardMutedStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// tabs renders the variant titles, falling back to the current one alone
// when they do not fit.
func (m ScoreboardModel) tabs() string {
	if len(m.variants) == 0 {
		return boardMutedStyle.Render("no variants registered")
	}

	parts := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.current {
			parts[i] = boardActiveTab.Render(v.Title)
		} else {
			parts[i] = boardTabStyle.Render(v.Title)
		}
	}
	line := strings.Join(parts, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = boardActiveTab.Render("< " + m.variants[m.current].Title + " >")
	}
	return line
}

func (m ScoreboardModel) scoreList() string {
	if len(m.scores) == 0 {
		return boardMutedStyle.Italic(true).Padding(1, 2).
			Render("No runs recorded yet.\nReach the water to set a high score!")
	}
	return m.table.View()
}

// statsPanel summarizes the current variant.
func (m ScoreboardModel) statsPanel() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return boardMutedStyle.Render("Nothing played yet")
	}
	s := m.stats
	rows := [][2]string{
		{"Runs", humanize.Comma(int64(s.GamesCount))},
		{"Best", humanize.Comma(int64(s.HighScore))},
		{"Average", fmt.Sprintf("%.1f", s.AvgScore)},
		{"Crossings", humanize.Comma(s.TotalScore)},
		{"Last", humanize.Time(s.LastPlayed)},
	}
	var b strings.Builder
	b.WriteString(boardTitleStyle.Render("Stats"))
	for _, r := range rows {
		fmt.Fprintf(&b, "\n%-10s %s", r[0], r[1])
	}
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program.
// Returns true if the user went back rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
