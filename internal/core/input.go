package core

// Key identifies a physical key the game reacts to.
// Frontends translate their own key codes into these.
type Key int

const (
	KeyNone  Key = iota
	KeySpace     // charge and fire a shell
	KeyUp        // increase power while charging
	KeyDown      // decrease power while charging
	KeyLeft      // move cannon left
	KeyRight     // move cannon right
	KeyShoot     // fire a bullet
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeySpace:
		return "Space"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyShoot:
		return "Shoot"
	default:
		return "None"
	}
}

// EventKind distinguishes the discrete input events delivered per frame.
type EventKind int

const (
	EventTerminate EventKind = iota
	EventKeyDown
	EventKeyUp
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventTerminate:
		return "Terminate"
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	default:
		return "Unknown"
	}
}

// Event is a single input event polled from the platform.
type Event struct {
	Kind EventKind
	Key  Key // Unused for EventTerminate
}

// Pressed builds a key-press event.
func Pressed(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// Released builds a key-release event.
func Released(k Key) Event {
	return Event{Kind: EventKeyUp, Key: k}
}

// Terminate builds a session-terminate event.
func Terminate() Event {
	return Event{Kind: EventTerminate}
}

// EventQueue buffers events between frames.
// Platforms push as input arrives and the frame driver drains once per tick.
type EventQueue struct {
	pending []Event
}

// Push appends an event to the queue.
func (q *EventQueue) Push(e Event) {
	q.pending = append(q.pending, e)
}

// Drain returns all pending events in arrival order and empties the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.pending) == 0 {
		return nil
	}
	out := make([]Event, len(q.pending))
	copy(out, q.pending)
	q.pending = q.pending[:0]
	return out
}
