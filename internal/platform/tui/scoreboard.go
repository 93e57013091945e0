package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

const (
	scoreLimit     = 100 // Runs loaded per variant
	scoreChrome    = 12  // Rows taken by title, tabs, stats, borders and help
	minTableHeight = 3
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextVariant key.Binding
	PrevVariant key.Binding
	Mine        key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextVariant, k.Mine, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextVariant, k.PrevVariant, k.Mine},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll")),
		NextVariant: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("right/tab", "next variant")),
		PrevVariant: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("left", "prev variant")),
		Mine:        key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "my runs")),
		Back:        key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best runs of each variant together with the
// variant's overall record. The viewing player's runs are marked and can
// be listed on their own.
type ScoreboardModel struct {
	variants  []registry.GameInfo
	current   int
	store     *storage.Store
	player    string
	mineOnly  bool
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard for player, who may be empty.
func NewScoreboardModel(store *storage.Store, player string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		player:   player,
		help:     help.New(),
		keys:     DefaultScoreboardKeyMap(),
		width:    width,
		height:   height,
	}
	m.help.Width = width
	m.table = newScoreTable(width, height)
	m.reload()
	return m
}

// scoreColumns sizes the table to width, giving spare room to the pilot
// and when columns.
func scoreColumns(width int) []table.Column {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 9},
		{Title: "Level", Width: 5},
		{Title: "Pilot", Width: 12},
		{Title: "When", Width: 14},
	}
	used := 8 // Border, padding and cell gaps
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := width - used; spare > 0 {
		columns[3].Width += min(spare/2, 12)
		columns[4].Width += min(spare-spare/2, 6)
	}
	return columns
}

func newScoreTable(width, height int) table.Model {
	t := table.New(
		table.WithColumns(scoreColumns(width)),
		table.WithFocused(true),
		table.WithHeight(max(height-scoreChrome, minTableHeight)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Frame).
		BorderBottom(true).
		Bold(true)
	s.Selected = theme.ScoreSelected
	t.SetStyles(s)
	return t
}

// reload fetches the current variant's runs and record.
func (m *ScoreboardModel) reload() {
	m.scores = nil
	m.stats = nil
	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.current].ID
		if scores, err := m.store.TopScores(id, scoreLimit); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.refreshRows()
}

func (m *ScoreboardModel) refreshRows() {
	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

// rows ranks the loaded runs. Ranks are overall, so filtering to the
// player's own runs leaves gaps; own runs carry a trailing '*'.
func (m ScoreboardModel) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		own := m.player != "" && s.Player == m.player
		if m.mineOnly && !own {
			continue
		}
		rank := "#" + strconv.Itoa(i+1)
		if own {
			rank += "*"
		}
		pilot := s.Player
		if pilot == "" {
			pilot = "-"
		}
		rows = append(rows, table.Row{
			rank,
			humanize.Comma(int64(s.Score)),
			strconv.Itoa(s.Level),
			pilot,
			ago(s.CreatedAt),
		})
	}
	return rows
}

// ago formats t relative to now, or "-" when unknown.
func ago(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}

// statsLine summarizes every run recorded for the current variant.
func (m ScoreboardModel) statsLine() string {
	s := m.stats
	if s == nil || s.GamesCount == 0 {
		return "No runs recorded yet"
	}
	runs := "runs"
	if s.GamesCount == 1 {
		runs = "run"
	}
	return fmt.Sprintf("%s %s   best level %d   average %s   total %s   last played %s",
		humanize.Comma(int64(s.GamesCount)), runs,
		s.BestLevel,
		humanize.Comma(int64(math.Round(s.AvgScore))),
		humanize.Comma(s.TotalScore),
		ago(s.LastPlayed),
	)
}

// switchVariant moves step variants along, wrapping around.
func (m *ScoreboardModel) switchVariant(step int) {
	n := len(m.variants)
	if n == 0 {
		return
	}
	m.current = ((m.current+step)%n + n) % n
	m.reload()
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
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextVariant):
			m.switchVariant(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevVariant):
			m.switchVariant(-1)
			return m, nil

		case key.Matches(msg, m.keys.Mine):
			if m.player != "" {
				m.mineOnly = !m.mineOnly
				m.refreshRows()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetColumns(scoreColumns(msg.Width))
		m.table.SetHeight(max(msg.Height-scoreChrome, minTableHeight))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "HIGH SCORES"
	if m.mineOnly {
		title += "  (" + m.player + ")"
	}
	b.WriteString("\n")
	b.WriteString(centerText(theme.MenuTitle.Render(title), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.variants))
	for i, v := range m.variants {
		tabs[i] = menuLine(v.Title, i == m.current)
	}
	b.WriteString(centerText(strings.Join(tabs, "    "), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(theme.MenuDescription.Render(m.statsLine()), m.width))
	b.WriteString("\n\n")

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Frame).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, frame.Render(m.tableContent())))
	b.WriteString("\n\n")

	b.WriteString(centerText(theme.MenuControls.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// tableContent renders the table or a hint when it is empty.
func (m ScoreboardModel) tableContent() string {
	if len(m.table.Rows()) > 0 {
		return m.table.View()
	}

	msg := "No scores recorded yet.\nClear a wave to get on the board!"
	if m.mineOnly {
		msg = "None of your runs on this variant yet."
	}
	return theme.MenuDescription.Italic(true).Padding(2, 4).Render(msg)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen for player.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, player string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, player, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
