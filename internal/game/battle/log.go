package battle

import "fmt"

// Event is one entry in a battle log: a phase transition or a single dice
// resolution, rendered for display or verbatim persistence.
type Event struct {
	Phase   string `json:"phase"`
	Message string `json:"message"`
}

// String renders the event as "[phase] message".
func (e Event) String() string {
	return fmt.Sprintf("[%s] %s", e.Phase, e.Message)
}

// Log is the append-only, ordered record of everything that happened during
// one battle. It is owned by a single battle and never shared.
type Log struct {
	events []Event
}

// Append records one event under the given phase label.
func (l *Log) Append(phase, format string, args ...any) {
	l.events = append(l.events, Event{Phase: phase, Message: fmt.Sprintf(format, args...)})
}

// Events returns the recorded events in append order. The returned slice is
// the log's backing store; callers must not mutate it.
func (l *Log) Events() []Event {
	return l.events
}

// Lines renders every event as a display string, in order.
func (l *Log) Lines() []string {
	out := make([]string, len(l.events))
	for i, e := range l.events {
		out[i] = e.String()
	}
	return out
}

// Len returns the number of recorded events.
func (l *Log) Len() int { return len(l.events) }
