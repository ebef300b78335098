package pong

import "github.com/vovakirdan/bonus-pong/internal/core"

// Event is a side effect raised during a tick, consumed by audio.
type Event uint8

const (
	EventWallCollision Event = iota + 1
	EventPaddleCollision
	EventGoal
	EventSpeedBoost
	EventTeleport
	EventSplit
)

// String returns the event tag.
func (e Event) String() string {
	switch e {
	case EventWallCollision:
		return "wall_collision"
	case EventPaddleCollision:
		return "paddle_collision"
	case EventGoal:
		return "goal"
	case EventSpeedBoost:
		return "speedboost_triggered"
	case EventTeleport:
		return "teleport_triggered"
	case EventSplit:
		return "split_triggered"
	default:
		return "unknown"
	}
}

// Cue maps the event to the platform audio cue.
func (e Event) Cue() core.Cue {
	switch e {
	case EventWallCollision:
		return core.CueWallCollision
	case EventPaddleCollision:
		return core.CuePaddleCollision
	case EventGoal:
		return core.CueGoal
	case EventSpeedBoost:
		return core.CueSpeedBoost
	case EventTeleport:
		return core.CueTeleport
	case EventSplit:
		return core.CueSplit
	default:
		return core.CueNone
	}
}
