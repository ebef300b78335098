package core

// Cue is a discrete audio notification raised by a game tick.
// The platform maps cues to sounds; games never play audio themselves.
type Cue uint8

const (
	CueNone Cue = iota
	CueWallCollision
	CuePaddleCollision
	CueGoal
	CueSpeedBoost
	CueTeleport
	CueSplit
	CueMenu
)

// String returns the event tag for the cue.
func (c Cue) String() string {
	switch c {
	case CueWallCollision:
		return "wall_collision"
	case CuePaddleCollision:
		return "paddle_collision"
	case CueGoal:
		return "goal"
	case CueSpeedBoost:
		return "speedboost_triggered"
	case CueTeleport:
		return "teleport_triggered"
	case CueSplit:
		return "split_triggered"
	case CueMenu:
		return "menu_interaction"
	default:
		return "none"
	}
}
