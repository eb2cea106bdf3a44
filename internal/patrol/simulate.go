package patrol

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Outcome classifies a finished run.
type Outcome uint8

const (
	// Exited means the guard's next cell fell outside the grid.
	Exited Outcome = iota
	// Looped means the guard re-entered an exact (position, direction) state.
	Looped
)

func (o Outcome) String() string {
	switch o {
	case Exited:
		return "exited"
	case Looped:
		return "looped"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

type Result struct {
	Outcome Outcome `json:"outcome"`
	// Steps counts Step calls, including the terminating one for Exited.
	Steps int   `json:"steps"`
	Final Guard `json:"final"`
	// States holds every first-seen state in the order reached, start first.
	// Nil unless the run was recorded.
	States []Guard `json:"states,omitempty"`
	// Cells holds every first-visited position in order, start first.
	// Nil unless the run was recorded.
	Cells []Position `json:"cells,omitempty"`
}

// Visited is the number of distinct cells the guard stood on.
func (r Result) Visited() int { return len(r.Cells) }

type options struct {
	record  bool
	observe func(Event)
}

type Option func(*options)

// WithPath keeps the ordered first-seen states and cells in the Result.
func WithPath() Option { return func(o *options) { o.record = true } }

// WithObserver calls fn once per transition and once when the run ends.
// fn must not retain the simulation past its return.
func WithObserver(fn func(Event)) Option { return func(o *options) { o.observe = fn } }

// Simulate steps the guard from start until it leaves m or repeats a state.
// Every state the guard occupies is checked, including ones reached by
// turning in place. The number of steps never exceeds m's area times four.
func Simulate(m GridMap, start Guard, opts ...Option) Result {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	limit := m.Dimension().Area() * len(Directions)
	seen := mapset.New[Guard]()
	var res Result
	var cells mapset.Set[Position]
	if o.record {
		cells = mapset.New[Position]()
	}

	g := start
	for {
		if seen.Has(g) {
			res.Outcome, res.Final = Looped, g
			if o.observe != nil {
				o.observe(Event{Step: res.Steps, Type: EventLooped, From: g, To: g, Final: true})
			}
			return res
		}
		seen.Put(g)
		if o.record {
			res.States = append(res.States, g)
			if !cells.Has(g.Pos) {
				cells.Put(g.Pos)
				res.Cells = append(res.Cells, g.Pos)
			}
		}
		if res.Steps >= limit {
			panic(fmt.Sprintf("patrol: run from %v exceeded %d states", start, limit))
		}

		next, t := g.Step(m)
		res.Steps++
		if o.observe != nil {
			o.observe(Event{Step: res.Steps, Type: eventType(t), From: g, To: next, Final: t == StepExit})
		}
		if t == StepExit {
			res.Outcome, res.Final = Exited, g
			return res
		}
		g = next
	}
}

// Loops reports whether the guard starting at start never leaves m.
func Loops(m GridMap, start Guard) bool {
	return Simulate(m, start).Outcome == Looped
}
