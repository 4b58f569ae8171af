package ecs

// EventKind identifies gameplay events raised during a tick.
type EventKind string

const (
	EventFired       EventKind = "fired"
	EventEnemyHit    EventKind = "enemy_hit"
	EventEnemyKilled EventKind = "enemy_killed"
	EventEnemySpawn  EventKind = "enemy_spawned"
	EventGameStarted EventKind = "game_started"
	EventGameOver    EventKind = "game_over"
)

// Event is a gameplay event payload.
type Event struct {
	Kind   EventKind
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue. The world clears it at the start of every
// Update, so after Update returns it holds exactly that tick's events.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Count returns how many queued events have the given kind.
func (q *EventQueue) Count(kind EventKind) int {
	if q == nil {
		return 0
	}
	n := 0
	for _, evt := range q.items {
		if evt.Kind == kind {
			n++
		}
	}
	return n
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
