package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/bonus-pong/internal/audio"
	"github.com/vovakirdan/bonus-pong/internal/core"
	"github.com/vovakirdan/bonus-pong/internal/registry"
	"github.com/vovakirdan/bonus-pong/internal/storage"
)

// stubGame replays scripted step results and records the input it saw.
type stubGame struct {
	id      string
	results []core.StepResult
	inputs  []core.MultiInputFrame
	resets  int
	state   core.GameState
}

func (g *stubGame) ID() string              { return g.id }
func (g *stubGame) Title() string           { return "Stub " + g.id }
func (g *stubGame) Render(dst *core.Screen) { dst.Clear() }
func (g *stubGame) State() core.GameState   { return g.state }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
	g.inputs = nil
}

func (g *stubGame) Step(in core.MultiInputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	res := core.StepResult{State: g.state}
	if n := len(g.inputs); n <= len(g.results) {
		res = g.results[n-1]
	}
	g.state = res.State
	return res
}

func init() {
	for _, id := range []string{"stub_alpha", "stub_beta"} {
		registry.Register(id, func() registry.Game { return &stubGame{id: id} })
	}
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, TickMsg(time.Now()))
	return m
}

func gameOver(left, right int, winner core.PlayerID) core.StepResult {
	return core.StepResult{State: core.GameState{Score: left, Opponent: right, GameOver: true, Winner: winner}}
}

func TestModelPlaysCues(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := audio.NewMockPlayer(ctrl)

	gomock.InOrder(
		player.EXPECT().Play(core.CueWallCollision),
		player.EXPECT().Play(core.CueGoal),
		player.EXPECT().Play(core.CueSplit),
	)

	game := &stubGame{id: "cues", results: []core.StepResult{
		{Cues: []core.Cue{core.CueWallCollision, core.CueGoal}},
		{},
		{Cues: []core.Cue{core.CueSplit}},
	}}

	m := NewModel(game, Deps{Audio: player}, testRuntime())
	m.Init()
	for range 3 {
		m = tick(t, m)
	}
}

func TestModelRecordsResultOnce(t *testing.T) {
	store := openTestStore(t)
	game := &stubGame{id: "stub_alpha", results: []core.StepResult{
		{State: core.GameState{Score: 2, Opponent: 9}},
		gameOver(2, 10, core.Player2),
	}}

	m := NewModel(game, Deps{Store: store}, testRuntime())
	m.Init()
	for range 5 {
		m = tick(t, m)
	}

	rec := m.Result()
	if rec == nil {
		t.Fatal("Result() = nil after game over")
	}
	if rec.Winner != "right" || rec.ScoreLeft != 2 || rec.ScoreRight != 10 {
		t.Errorf("Result() = %+v, expected right win 2-10", rec)
	}
	if rec.DurationTicks != 2 {
		t.Errorf("DurationTicks = %d, expected 2", rec.DurationTicks)
	}
	if rec.MatchID == "" {
		t.Error("expected stored match ID")
	}

	matches, err := store.RecentMatches("stub_alpha", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("stored %d matches, expected 1", len(matches))
	}
	if matches[0].MatchID != rec.MatchID {
		t.Errorf("stored match %s, expected %s", matches[0].MatchID, rec.MatchID)
	}
}

func TestModelRecordsWithoutStore(t *testing.T) {
	game := &stubGame{id: "nostore", results: []core.StepResult{gameOver(10, 4, core.Player1)}}

	m := NewModel(game, Deps{}, testRuntime())
	m.Init()
	m = tick(t, m)

	rec := m.Result()
	if rec == nil || rec.Winner != "left" {
		t.Fatalf("Result() = %+v, expected left win", rec)
	}
	if rec.MatchID != "" {
		t.Errorf("MatchID = %q, expected empty without a store", rec.MatchID)
	}
}

func TestModelHeldKeys(t *testing.T) {
	game := &stubGame{id: "held"}
	m := NewModel(game, Deps{}, testRuntime())
	m.Init()

	m, _ = update(t, m, runeKey("w"))
	holdTicks := m.held.ticks
	for range holdTicks + 2 {
		m = tick(t, m)
	}

	for i, in := range game.inputs {
		got := in.Player1().Has(core.ActionUp)
		if expected := i < holdTicks; got != expected {
			t.Errorf("tick %d: Up = %v, expected %v", i, got, expected)
		}
	}
}

func TestModelOneShotActions(t *testing.T) {
	game := &stubGame{id: "oneshot"}
	m := NewModel(game, Deps{}, testRuntime())
	m.Init()

	m, _ = update(t, m, runeKey("p"))
	m = tick(t, m)
	m = tick(t, m)

	if !game.inputs[0].Has(core.ActionPause) {
		t.Error("pause missing from the first tick")
	}
	if game.inputs[1].Has(core.ActionPause) {
		t.Error("pause repeated on the second tick")
	}
}

func TestModelEscBackToMenu(t *testing.T) {
	m := NewModel(&stubGame{id: "esc"}, Deps{}, testRuntime())
	m.Init()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("Esc should leave the match")
	}
	if m.IsQuitting() {
		t.Error("Esc should not quit the program")
	}
	if cmd == nil {
		t.Error("expected a command ending the match")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{id: "quit"}, Deps{}, testRuntime())
	m.Init()

	m, _ = update(t, m, runeKey("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty when quitting")
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	game := &stubGame{id: "restart", results: []core.StepResult{gameOver(10, 0, core.Player1)}}
	m := NewModel(game, Deps{}, testRuntime())
	m.Init()

	m = tick(t, m)
	if m.Result() == nil {
		t.Fatal("expected a recorded result")
	}

	m, _ = update(t, m, runeKey("r"))
	m = tick(t, m)

	if game.resets != 2 {
		t.Errorf("resets = %d, expected 2", game.resets)
	}
	if m.Result() != nil {
		t.Error("result should be cleared on restart")
	}
}

func TestModelResizeKeepsMatch(t *testing.T) {
	game := &stubGame{id: "resize"}
	m := NewModel(game, Deps{}, testRuntime())
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if game.resets != 1 {
		t.Errorf("resize reset the match (%d resets)", game.resets)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", m.screen.Width(), m.screen.Height())
	}
}
