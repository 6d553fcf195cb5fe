package sim

import "container/heap"

// eventEntry pairs an event with its insertion sequence number. The sequence
// number breaks timestamp ties FIFO, so replay under a fixed seed is
// deterministic.
type eventEntry struct {
	ev  Event
	seq uint64
}

// EventQueue implements heap.Interface and orders events by timestamp, then
// by insertion order among equal timestamps.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue struct {
	entries []eventEntry
	nextSeq uint64
}

func (eq *EventQueue) Len() int { return len(eq.entries) }

func (eq *EventQueue) Less(i, j int) bool {
	ei, ej := eq.entries[i], eq.entries[j]
	if ei.ev.Timestamp() != ej.ev.Timestamp() {
		return ei.ev.Timestamp() < ej.ev.Timestamp()
	}
	return ei.seq < ej.seq
}

func (eq *EventQueue) Swap(i, j int) {
	eq.entries[i], eq.entries[j] = eq.entries[j], eq.entries[i]
}

func (eq *EventQueue) Push(x any) {
	eq.entries = append(eq.entries, x.(eventEntry))
}

func (eq *EventQueue) Pop() any {
	old := eq.entries
	n := len(old)
	item := old[n-1]
	eq.entries = old[0 : n-1]
	return item
}

// Schedule inserts an event, tagging it with the next sequence number.
func (eq *EventQueue) Schedule(ev Event) {
	heap.Push(eq, eventEntry{ev: ev, seq: eq.nextSeq})
	eq.nextSeq++
}

// PopNext removes and returns the earliest event, or nil when empty.
func (eq *EventQueue) PopNext() Event {
	if eq.Len() == 0 {
		return nil
	}
	return heap.Pop(eq).(eventEntry).ev
}

// Peek returns the earliest event without removing it, or nil when empty.
func (eq *EventQueue) Peek() Event {
	if eq.Len() == 0 {
		return nil
	}
	return eq.entries[0].ev
}
