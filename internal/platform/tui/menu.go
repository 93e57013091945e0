package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// Variant is one Asteroids ruleset offered by the menu, with the record
// set on it so far.
type Variant struct {
	ID          string
	Title       string
	Description string
	Best        int
	BestLevel   int
	Runs        int
}

// loadVariants lists the registered variants with their stored records.
func loadVariants(store *storage.Store) []Variant {
	infos := registry.List()
	variants := make([]Variant, 0, len(infos))
	for _, info := range infos {
		v := Variant{ID: info.ID, Title: info.Title, Description: info.Description}
		if store != nil {
			if stats, err := store.GetGameStats(info.ID); err == nil {
				v.Best = stats.HighScore
				v.BestLevel = stats.BestLevel
				v.Runs = stats.GamesCount
			}
		}
		variants = append(variants, v)
	}
	return variants
}

// record summarizes the variant's history in one line.
func (v Variant) record() string {
	switch v.Runs {
	case 0:
		return "no runs yet"
	case 1:
		return fmt.Sprintf("best %s  level %d  1 run", humanize.Comma(int64(v.Best)), v.BestLevel)
	}
	return fmt.Sprintf("best %s  level %d  %d runs", humanize.Comma(int64(v.Best)), v.BestLevel, v.Runs)
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	variants       []Variant
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *Variant
	openScoreboard bool
}

// NewMenuModel creates a menu offering every registered variant.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		variants:  loadVariants(store),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

// handleKey moves the cursor (wrapping around) and handles selection.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.variants)

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if n > 0 {
			m.cursor = (m.cursor + n - 1) % n
		}

	case MenuActionDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}

	case MenuActionSelect:
		if n > 0 {
			v := m.variants[m.cursor]
			m.selected = &v
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(theme.MenuTitle.Render("  A S T E R O I D S  "), m.width))
	b.WriteString("\n\n")

	if len(m.variants) == 0 {
		b.WriteString(centerText(theme.MenuDescription.Render("No variants available"), m.width))
		b.WriteString("\n")
		return b.String()
	}

	// Pad titles so the records line up
	titleW := 0
	for _, v := range m.variants {
		titleW = max(titleW, lipgloss.Width(v.Title))
	}
	for i, v := range m.variants {
		label := v.Title + strings.Repeat(" ", titleW-lipgloss.Width(v.Title))
		line := menuLine(label, i == m.cursor) + "   " + theme.MenuDescription.Render(v.record())
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if desc := m.variants[m.cursor].Description; desc != "" {
		b.WriteString("\n")
		b.WriteString(centerText(theme.MenuDescription.Italic(true).Render(desc), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Choose  |  Enter: Launch  |  Tab: High scores  |  Q: Quit"
	b.WriteString(centerText(theme.MenuControls.Render(controls), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(theme.MenuDescription.Render("In flight: arrows/WASD steer  Space fire  P pause  R restart  G godmode"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen variant, or nil if none was chosen.
func (m MenuModel) Selected() *Variant {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers a single line within width. Styled text is measured
// by its printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Variant         string
	Title           string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.Variant = m.Selected().ID
		result.Title = m.Selected().Title
	default:
		result.Quit = true
	}
	return result, nil
}
