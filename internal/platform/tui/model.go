package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bonus-pong/internal/audio"
	"github.com/vovakirdan/bonus-pong/internal/core"
	"github.com/vovakirdan/bonus-pong/internal/registry"
	"github.com/vovakirdan/bonus-pong/internal/storage"
)

// holdDuration is how long a paddle key stays down after a key event.
// Longer than the usual terminal auto-repeat interval so a held key moves smoothly.
const holdDuration = 120 * time.Millisecond

// ticker is implemented by modes that count their simulated ticks.
type ticker interface {
	Ticks() int
}

// Deps bundles the services a running game talks to. Any of them may be nil.
type Deps struct {
	Store  *storage.Store
	Audio  audio.Player
	Logger *log.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Audio == nil {
		d.Audio = audio.Nop{}
	}
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	return d
}

// Model is the Bubble Tea model for running one pong mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	deps       Deps
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	held       *heldInput
	inputFrame core.MultiInputFrame
	gameState  core.GameState
	ticks      int
	quitting   bool
	backToMenu bool
	saved      *storage.MatchRecord // Set once the finished match is recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, deps Deps, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	holdTicks := int(holdDuration * time.Duration(cfg.TickRate) / time.Second)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		deps:       deps.withDefaults(),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		held:       newHeldInput(holdTicks),
		inputFrame: core.NewMultiInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.deps.Logger.Info("Match started", "mode", m.game.ID(), "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	player, action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit
	case action == core.ActionUp || action == core.ActionDown:
		m.held.press(player, action)
	case action != core.ActionNone:
		m.inputFrame.Set(player, action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The field is simulated in its own coordinates, so only the screen changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.ticks = 0
		m.saved = nil
		m.held.release()
		m.inputFrame.Clear()
		m.deps.Logger.Info("Match restarted", "mode", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	m.held.apply(&m.inputFrame)

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	if !result.State.Paused && !m.gameState.GameOver {
		m.ticks++
	}
	m.gameState = result.State

	for _, cue := range result.Cues {
		m.deps.Audio.Play(cue)
	}

	if m.gameState.GameOver && m.saved == nil {
		m.recordResult()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordResult stores the finished match once.
func (m *Model) recordResult() {
	rec := storage.MatchRecord{
		Mode:          m.game.ID(),
		ScoreLeft:     m.gameState.Score,
		ScoreRight:    m.gameState.Opponent,
		Winner:        m.gameState.Winner.String(),
		DurationTicks: m.ticks,
		CreatedAt:     time.Now(),
	}
	if t, ok := m.game.(ticker); ok {
		rec.DurationTicks = t.Ticks()
	}

	if m.deps.Store != nil {
		stored, err := m.deps.Store.SaveMatch(rec)
		if err != nil {
			m.deps.Logger.Warn("Could not save match", "error", err)
		} else {
			rec.MatchID = stored.MatchID
			rec.ID = stored.ID
		}
	}

	m.saved = &rec
	m.deps.Logger.Info("Match finished",
		"mode", rec.Mode,
		"score", fmt.Sprintf("%d-%d", rec.ScoreLeft, rec.ScoreRight),
		"winner", rec.Winner,
		"ticks", rec.DurationTicks,
	)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".pong", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to leave the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user pressed Esc to leave the match.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Result returns the recorded outcome of the finished match, or nil.
func (m Model) Result() *storage.MatchRecord {
	return m.saved
}

// RunResult describes how a match run ended.
type RunResult struct {
	Match *storage.MatchRecord // Finished match, nil if left early
	Quit  bool                 // User asked to leave the program, not just the match
}

// Run plays a single mode until the user quits or presses Esc.
func Run(game registry.Game, deps Deps, cfg core.RuntimeConfig) (RunResult, error) {
	model := NewModel(game, deps, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return RunResult{}, err
	}
	fm, ok := final.(Model)
	if !ok {
		return RunResult{Quit: true}, nil
	}
	return RunResult{Match: fm.Result(), Quit: fm.IsQuitting()}, nil
}
