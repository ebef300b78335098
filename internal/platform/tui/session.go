package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bonus-pong/internal/core"
	"github.com/vovakirdan/bonus-pong/internal/registry"
	"github.com/vovakirdan/bonus-pong/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenHistory
)

// SessionModel manages the full flow: menu -> match -> menu, with the
// history screen reachable from the menu. Used for SSH sessions.
type SessionModel struct {
	deps     Deps
	config   core.RuntimeConfig
	screen   sessionScreen
	menu     MenuModel
	game     *Model
	history  HistoryModel
	last     *storage.MatchRecord // Most recent finished match, for the menu banner
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(deps Deps, cfg core.RuntimeConfig) SessionModel {
	deps = deps.withDefaults()
	return SessionModel{
		deps:   deps,
		config: cfg,
		menu:   NewMenuModel(cfg, deps.Audio, nil),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates while the mode picker is shown.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsHistory():
		m.history = NewHistoryModel(m.deps.Store, m.config.ScreenW, m.config.ScreenH, m.config.TickRate)
		m.screen = screenHistory
		return m, m.history.Init()

	case m.menu.Selected() != nil:
		game, err := registry.Create(m.menu.Selected().ModeID)
		if err != nil {
			// Menu only lists registered modes
			m.deps.Logger.Error("Unknown mode", "error", err)
			m.menu = NewMenuModel(m.config, m.deps.Audio, m.last)
			return m, nil
		}
		gm := NewModel(game, m.deps, m.config)
		m.game = &gm
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates while a match is running.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		if res := m.game.Result(); res != nil {
			m.last = res
		}
		m.game = nil
		m.screen = screenMenu
		m.menu = NewMenuModel(m.config, m.deps.Audio, m.last)
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateHistory handles updates while the history screen is shown.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if historyModel, ok := newModel.(HistoryModel); ok {
		m.history = historyModel
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.history.IsGoingBack() {
		m.screen = screenMenu
		m.menu = NewMenuModel(m.config, m.deps.Audio, m.last)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenHistory:
		return m.history.View()
	default:
		return m.menu.View()
	}
}
