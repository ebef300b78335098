package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bonus-pong/internal/audio"
	"github.com/vovakirdan/bonus-pong/internal/core"
	"github.com/vovakirdan/bonus-pong/internal/registry"
	"github.com/vovakirdan/bonus-pong/internal/storage"
)

// MenuItem represents a selectable mode in the menu.
type MenuItem struct {
	ModeID string
	Title  string
}

var bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))

// MenuModel is the Bubble Tea model for the mode picker menu.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	width       int
	height      int
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	player      audio.Player
	lastResult  *storage.MatchRecord // Shown as a banner above the list
	quitting    bool
	selected    *MenuItem // Set when user selects a mode
	openHistory bool      // True if user pressed Tab for history
}

// NewMenuModel creates a new menu model over every registered mode.
// lastResult may be nil; player may be nil for a silent menu.
func NewMenuModel(cfg core.RuntimeConfig, player audio.Player, lastResult *storage.MatchRecord) MenuModel {
	modes := registry.List()
	items := make([]MenuItem, 0, len(modes))
	for _, g := range modes {
		items = append(items, MenuItem{ModeID: g.ID, Title: g.Title})
	}

	if player == nil {
		player = audio.Nop{}
	}

	return MenuModel{
		items:      items,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		player:     player,
		lastResult: lastResult,
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
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.player.Play(core.CueMenu)
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
			m.player.Play(core.CueMenu)
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			m.player.Play(core.CueMenu)
			return m, tea.Quit // Exit menu to start the match
		}

	case MenuActionHistory:
		m.openHistory = true
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

	// Title
	b.WriteString("\n")
	b.WriteString(centerText("  P O N G  ", m.width))
	b.WriteString("\n\n")

	if banner := winnerBanner(m.lastResult); banner != "" {
		b.WriteString(bannerStyle.Render(centerText(banner, m.width)))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText("Select a mode", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Title, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Play  |  Tab: History  |  Q: Quit", m.width))
	b.WriteString("\n")
	b.WriteString(centerText("Left: W/S  Right: O/L or arrows  |  P: Pause  Esc: Menu", m.width))
	b.WriteString("\n")

	return b.String()
}

// winnerBanner describes the previous match, e.g. "LEFT WINS  10 - 7".
func winnerBanner(rec *storage.MatchRecord) string {
	if rec == nil || rec.Winner == "" {
		return ""
	}
	return fmt.Sprintf("%s WINS  %d - %d", strings.ToUpper(rec.Winner), rec.ScoreLeft, rec.ScoreRight)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the match history.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	ModeID       string
	Config       core.RuntimeConfig
	WantsHistory bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, player audio.Player, lastResult *storage.MatchRecord) (MenuResult, error) {
	model := NewMenuModel(cfg, player, lastResult)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	switch {
	case m.WantsHistory():
		result.WantsHistory = true
	case m.IsQuitting(), m.Selected() == nil:
		result.Quit = true
	default:
		result.ModeID = m.Selected().ModeID
	}

	return result, nil
}
