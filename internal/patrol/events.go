package patrol

// Event is emitted once per transition and once more when a run ends.
type Event struct {
	Step  int    `json:"step"`
	Type  string `json:"type"`
	From  Guard  `json:"from"`
	To    Guard  `json:"to"`
	Final bool   `json:"final,omitempty"`
}

const (
	EventMove   = "Move"
	EventTurn   = "Turn"
	EventExit   = "Exit"
	EventLooped = "Loop"
)

func eventType(t Transition) string {
	switch t {
	case StepMove:
		return EventMove
	case StepTurn:
		return EventTurn
	case StepExit:
		return EventExit
	}
	panic("patrol: unknown transition " + t.String())
}

// Recorder collects events in order. It is not safe for concurrent use; give
// each run its own.
type Recorder struct {
	Events []Event `json:"events"`
}

func (r *Recorder) Emit(ev Event) { r.Events = append(r.Events, ev) }

// Count returns how many recorded events have type typ.
func (r *Recorder) Count(typ string) int {
	n := 0
	for _, ev := range r.Events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}
