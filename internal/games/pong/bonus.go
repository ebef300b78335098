package pong

import (
	"github.com/vovakirdan/bonus-pong/internal/config"
	"github.com/vovakirdan/bonus-pong/internal/core"
)

// BonusKind is the effect a bonus pellet triggers.
type BonusKind uint8

const (
	BonusSpeedBoost BonusKind = iota
	BonusTeleport
	BonusSplit
	BonusKindCount // Sentinel for counting kinds
)

// String returns the name of the bonus kind.
func (k BonusKind) String() string {
	switch k {
	case BonusSpeedBoost:
		return "speedboost"
	case BonusTeleport:
		return "teleport"
	case BonusSplit:
		return "split"
	default:
		return "?"
	}
}

// Color returns the display color for a bonus kind.
func (k BonusKind) Color() core.Color {
	switch k {
	case BonusSpeedBoost:
		return core.ColorBrightYellow
	case BonusTeleport:
		return core.ColorBrightBlue
	case BonusSplit:
		return core.ColorBrightRed
	default:
		return core.ColorDefault
	}
}

// Bonus is a pellet waiting on the field.
type Bonus struct {
	Kind BonusKind
	Pos  core.Vec2
}

// EffectEnv carries what bonus effects need from the match.
type EffectEnv struct {
	BoostSpeed    float64
	DefaultRadius float64
	RandomPos     func() core.Vec2
}

// BonusEffect is applied to the ball that collects a bonus. It returns the
// event to raise and, for effects that add a ball, the new ball; the match
// puts it into play.
type BonusEffect interface {
	Apply(env EffectEnv, b *Ball) (Event, *Ball)
}

// speedBoostEpsilon keeps the boosted direction from being exactly horizontal.
const speedBoostEpsilon = 1e-4

// SpeedBoost sends the ball flat towards the side it was heading at boost speed.
// The pre-boost speed comes back on the next paddle hit.
type SpeedBoost struct{}

func (SpeedBoost) Apply(env EffectEnv, b *Ball) (Event, *Ball) {
	b.SaveSpeed()
	b.Speed = env.BoostSpeed
	b.Dir = core.Vec2{X: core.SignF(b.Dir.X), Y: speedBoostEpsilon}
	return EventSpeedBoost, nil
}

// Teleport moves the ball to a random spot.
type Teleport struct{}

func (Teleport) Apply(env EffectEnv, b *Ball) (Event, *Ball) {
	b.Pos = env.RandomPos()
	return EventTeleport, nil
}

// Split adds a mirrored twin; both balls shrink to two thirds of the default radius.
type Split struct{}

func (Split) Apply(env EffectEnv, b *Ball) (Event, *Ball) {
	r := env.DefaultRadius * 2 / 3
	b.Radius = r
	twin := &Ball{
		Pos:    b.Pos,
		Radius: r,
		Speed:  b.Speed,
		Dir:    core.Vec2{X: -b.Dir.X, Y: b.Dir.Y},
	}
	return EventSplit, twin
}

// bonusTable holds spawn weight and effect per kind.
var bonusTable = [BonusKindCount]struct {
	weight int
	effect BonusEffect
}{
	BonusSpeedBoost: {weight: 2, effect: SpeedBoost{}},
	BonusTeleport:   {weight: 1, effect: Teleport{}},
	BonusSplit:      {weight: 1, effect: Split{}},
}

// Effect returns the effect for a kind.
func (k BonusKind) Effect() BonusEffect {
	if k >= BonusKindCount {
		return nil
	}
	return bonusTable[k].effect
}

// rollBonusKind selects a kind by cumulative weight.
func rollBonusKind(r Rand) BonusKind {
	total := 0
	for _, e := range bonusTable {
		total += e.weight
	}

	roll := r.Float64() * float64(total)
	cumulative := 0.0
	for k, e := range bonusTable {
		cumulative += float64(e.weight)
		if roll < cumulative {
			return BonusKind(k)
		}
	}
	return BonusKindCount - 1
}

// spawnArea is the rectangle bonuses and teleports land in.
type spawnArea struct {
	minX, maxX float64
	minY, maxY float64
}

// newSpawnArea keeps 4 paddings from the sides and 2 from top and bottom.
func newSpawnArea(fieldW, fieldH, padding float64) spawnArea {
	return spawnArea{
		minX: 4 * padding,
		maxX: fieldW - 4*padding,
		minY: 2 * padding,
		maxY: fieldH - 2*padding,
	}
}

func (a spawnArea) random(r Rand) core.Vec2 {
	x := uniform(r, a.minX, a.maxX)
	y := uniform(r, a.minY, a.maxY)
	return core.Vec2{X: x, Y: y}
}

// BonusField spawns bonuses on a timer and tracks the active ones.
type BonusField struct {
	Active       []Bonus
	MaxActive    int
	Cooldown     float64
	Radius       float64
	HitboxRadius float64

	remaining float64
}

// NewBonusField creates a field whose first spawn is one cooldown away.
func NewBonusField(cfg config.BonusConfig) *BonusField {
	return &BonusField{
		Active:       make([]Bonus, 0, max(cfg.MaximumAmount, 0)),
		MaxActive:    cfg.MaximumAmount,
		Cooldown:     cfg.SpawnCooldown,
		Radius:       cfg.Radius,
		HitboxRadius: cfg.HitboxRadius,
		remaining:    cfg.SpawnCooldown,
	}
}

// Remaining returns the time left until the next spawn attempt.
func (f *BonusField) Remaining() float64 {
	return f.remaining
}

// Tick counts the cooldown down. Each time it runs out it restarts and,
// if there is room, one bonus spawns. Returns true when a bonus spawned.
func (f *BonusField) Tick(dt float64, r Rand, area spawnArea) bool {
	f.remaining = max(0, f.remaining-dt)
	if f.remaining != 0 {
		return false
	}
	f.remaining = f.Cooldown

	if len(f.Active) >= f.MaxActive {
		return false
	}
	kind := rollBonusKind(r)
	f.Active = append(f.Active, Bonus{Kind: kind, Pos: area.random(r)})
	return true
}

// collect removes and returns the first bonus touching the ball.
func (f *BonusField) collect(b *Ball) (Bonus, bool) {
	reach := b.Radius + f.HitboxRadius
	for i, bonus := range f.Active {
		if bonus.Pos.Sub(b.Pos).LenSq() < reach*reach {
			f.Active = append(f.Active[:i], f.Active[i+1:]...)
			return bonus, true
		}
	}
	return Bonus{}, false
}
