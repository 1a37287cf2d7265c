// Package sched holds the fire-time ordered event queue that carries every
// timer of a session: ability expiries, effect expiries, biome rotation and
// critter respawns. Events only fire when the owner polls the queue, so a
// session never observes a timer concurrently with a tick.
package sched

import (
	"time"

	"github.com/zyedidia/generic/heap"
)

// ID identifies a scheduled event for cancellation
type ID uint64

// Func is run when the event fires; now is the fire time of the poll
type Func func(now time.Duration)

type event struct {
	id   ID
	at   time.Duration
	name string
	fn   Func
}

// Queue orders events by fire time, then by insertion
type Queue struct {
	events *heap.Heap[event]
	live   map[ID]string
	nextID ID
}

func New() *Queue {
	return &Queue{
		events: newHeap(),
		live:   make(map[ID]string),
	}
}

func newHeap() *heap.Heap[event] {
	return heap.New(func(a, b event) bool {
		if a.at != b.at {
			return a.at < b.at
		}
		return a.id < b.id
	})
}

// Schedule registers fn to fire once at the given time
func (q *Queue) Schedule(at time.Duration, name string, fn Func) ID {
	q.nextID++
	id := q.nextID
	q.events.Push(event{id: id, at: at, name: name, fn: fn})
	q.live[id] = name
	return id
}

// Cancel drops a pending event. Cancelling a fired or unknown event is a no-op.
func (q *Queue) Cancel(id ID) bool {
	if _, ok := q.live[id]; !ok {
		return false
	}
	delete(q.live, id)
	return true
}

// CancelAll drops every pending event
func (q *Queue) CancelAll() {
	q.events = newHeap()
	q.live = make(map[ID]string)
}

// Pending reports whether id is still waiting to fire
func (q *Queue) Pending(id ID) bool {
	_, ok := q.live[id]
	return ok
}

// Len returns the number of live events
func (q *Queue) Len() int {
	return len(q.live)
}

// RunDue fires, in order, every live event with a fire time at or before now.
// Events scheduled by a handler for a time <= now fire within the same call.
// Returns the number of events fired.
func (q *Queue) RunDue(now time.Duration) int {
	fired := 0
	for {
		ev, ok := q.events.Peek()
		if !ok || ev.at > now {
			return fired
		}
		q.events.Pop()
		if _, live := q.live[ev.id]; !live {
			continue
		}
		delete(q.live, ev.id)
		ev.fn(ev.at)
		fired++
	}
}
