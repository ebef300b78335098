// Package pong implements Pong with bonuses: speed-boost, teleport and split
// pellets appear on the field and change the ball that touches them.
// Player 1 controls the left paddle; the right paddle is a bot or Player 2.
package pong

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/bonus-pong/internal/config"
	"github.com/vovakirdan/bonus-pong/internal/core"
	"github.com/vovakirdan/bonus-pong/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar    = '█'
	BallChar      = '●'
	SmallBallChar = '•'
	BonusChar     = '◆'
	NetChar       = '│'
)

// Mode describes one registered way to play.
type Mode struct {
	ID     string
	Title  string
	Bot    bool
	Preset config.BotPreset
}

// Modes lists every registered mode.
var Modes = []Mode{
	{ID: "pong", Title: "Pong vs Bot", Bot: true, Preset: config.BotNormal},
	{ID: "pong_hard", Title: "Pong vs Bot (Hard)", Bot: true, Preset: config.BotHard},
	{ID: "pong_duel", Title: "Pong Duel", Bot: false},
}

// configPath stores the custom config path set via CLI
var configPath string

// botPreset overrides every bot mode's preset when set via CLI
var botPreset config.BotPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetBotPreset overrides the bot difficulty of every bot mode.
// An empty preset restores each mode's own.
func SetBotPreset(p config.BotPreset) {
	botPreset = p
}

// LoadConfig loads the match configuration from the configured path.
func LoadConfig() (config.PongConfig, error) {
	return config.LoadPong(configPath)
}

// Game drives a Match for the platform: input, bot, scoring and rendering.
type Game struct {
	mode    Mode
	cfg     config.PongConfig
	runtime core.RuntimeConfig
	match   *Match
	bot     *Bot
	dt      float64

	paused   bool
	gameOver bool
	winner   core.PlayerID
	ticks    int
}

// New creates a game for the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.mode.ID
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	return g.mode.Title
}

// Reset loads configuration and starts a fresh match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := LoadConfig()
	if err != nil {
		cfg = config.DefaultPongConfig()
	}
	g.ResetWith(runtime, cfg)
}

// ResetWith starts a fresh match with an explicit configuration.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.PongConfig) {
	if g.mode.Bot {
		preset := g.mode.Preset
		if botPreset != "" {
			preset = botPreset
		}
		config.ApplyBotPreset(&cfg, preset)
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = cfg.Field.Framerate
	}

	g.cfg = cfg
	g.runtime = runtime
	g.dt = runtime.DeltaTime()
	g.match = NewMatch(cfg, rand.New(rand.NewSource(runtime.Seed))) //nolint:gosec // gameplay randomness
	g.bot = nil
	if g.mode.Bot {
		g.bot = NewBot(cfg.Bot.Threshold)
	}

	g.paused = false
	g.gameOver = false
	g.winner = core.PlayerNone
	g.ticks = 0
}

// Match exposes the underlying simulation.
func (g *Game) Match() *Match {
	return g.match
}

// Ticks returns the number of simulated ticks in this match.
func (g *Game) Ticks() int {
	return g.ticks
}

// Step advances the game by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++

	left := in.Player1().Axis()
	var right int
	if g.bot != nil {
		// Alone against the bot, either key set drives the left paddle.
		if left == 0 {
			left = in.Player2().Axis()
		}
		right = g.bot.Decide(g.match.Balls(), g.match.Paddle(SideRight))
	} else {
		right = in.Player2().Axis()
	}
	g.match.MovePaddle(SideLeft, left, g.dt)
	g.match.MovePaddle(SideRight, right, g.dt)

	events := g.match.Tick(g.dt)
	cues := make([]core.Cue, 0, len(events))
	for _, e := range events {
		cues = append(cues, e.Cue())
	}

	scoreLeft, scoreRight := g.match.Score()
	switch target := g.cfg.Game.PointsToWin; {
	case scoreLeft >= target:
		g.gameOver = true
		g.winner = core.Player1
	case scoreRight >= target:
		g.gameOver = true
		g.winner = core.Player2
	}

	return core.StepResult{State: g.State(), Cues: cues}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	var left, right int
	if g.match != nil {
		left, right = g.match.Score()
	}
	return core.GameState{
		Score:    left,
		Opponent: right,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Winner:   g.winner,
	}
}

// SideLabel returns the on-screen name of a side in this mode.
func (g *Game) SideLabel(id core.PlayerID) string {
	switch {
	case id == core.Player1:
		return "P1"
	case g.mode.Bot:
		return "BOT"
	default:
		return "P2"
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.match == nil {
		return
	}

	snap := g.match.Snapshot()
	w, h := dst.Width(), dst.Height()
	sx := float64(w) / snap.FieldW
	sy := float64(h) / snap.FieldH
	cellX := func(x float64) int { return core.Clamp(int(x*sx), 0, w-1) }
	cellY := func(y float64) int { return core.Clamp(int(y*sy), 0, h-1) }

	// Draw center line (net)
	centerX := w / 2
	for y := 1; y < h; y += 2 {
		dst.SetColored(centerX, y, NetChar, core.ColorGray)
	}

	// Draw paddles
	for _, p := range [...]*Paddle{g.match.Paddle(SideLeft), g.match.Paddle(SideRight)} {
		top, bottom := cellY(p.Top()), cellY(p.Bottom()-1)
		dst.DrawVLine(cellX(p.X), top, max(bottom-top+1, 1), PaddleChar, core.ColorBrightWhite)
	}

	// Draw bonuses
	for _, b := range snap.Bonuses {
		dst.SetColored(cellX(b.Pos.X), cellY(b.Pos.Y), BonusChar, b.Kind.Color())
	}

	// Draw balls
	for _, b := range snap.Balls {
		glyph := BallChar
		if b.Radius < g.cfg.Ball.Radius {
			glyph = SmallBallChar
		}
		dst.SetColored(cellX(b.X), cellY(b.Y), glyph, core.ColorBrightWhite)
	}

	// Draw scores
	dst.DrawTextColored(centerX-4, 0, fmt.Sprintf("%2d", snap.ScoreLeft), core.ColorBrightWhite)
	dst.DrawTextColored(centerX+3, 0, fmt.Sprintf("%d", snap.ScoreRight), core.ColorBrightWhite)

	// Draw labels
	dst.DrawText(1, 0, g.SideLabel(core.Player1))
	rightLabel := g.SideLabel(core.Player2)
	dst.DrawText(w-len(rightLabel)-1, 0, rightLabel)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		title := fmt.Sprintf("%s WINS!", g.SideLabel(g.winner))
		g.drawCenteredMessage(dst, title, fmt.Sprintf("%d - %d  |  R restart  Esc menu", snap.ScoreLeft, snap.ScoreRight))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// Register every mode with the registry
func init() {
	for _, mode := range Modes {
		registry.Register(mode.ID, func() registry.Game {
			return New(mode)
		})
	}
}
