package patrol

import "fmt"

// Guard is the full patrol state. The (Pos, Dir) pair, not Pos alone, is
// what identifies a repeated state.
type Guard struct {
	Pos Position  `json:"pos"`
	Dir Direction `json:"dir"`
}

func (g Guard) String() string { return fmt.Sprintf("%v%c", g.Pos, g.Dir.Rune()) }

// Transition is the closed set of things one Step can do.
type Transition uint8

const (
	StepExit Transition = iota
	StepTurn
	StepMove
)

func (t Transition) String() string {
	switch t {
	case StepExit:
		return "exit"
	case StepTurn:
		return "turn"
	case StepMove:
		return "move"
	}
	return fmt.Sprintf("Transition(%d)", uint8(t))
}

// Step performs exactly one of exit, turn or move. A blocked guard turns
// clockwise in place and never advances on the same call, so callers keep
// stepping while it turns. On StepExit the returned guard equals g.
func (g Guard) Step(m GridMap) (Guard, Transition) {
	next, ok := m.Dimension().Next(g.Pos, g.Dir)
	if !ok {
		return g, StepExit
	}
	if m.HasObstacle(next) {
		return Guard{Pos: g.Pos, Dir: g.Dir.Turn()}, StepTurn
	}
	return Guard{Pos: next, Dir: g.Dir}, StepMove
}
