package knobs

import (
	"fmt"
	"log/slog"
)

// Event is something that happened inside the GUI. The set of variants is
// closed; use Custom to carry application-defined payloads.
type Event interface {
	isEvent()
}

// Hover is sent to an element when it becomes the topmost element under
// the pointer. Position is relative to the element's origin.
type Hover struct {
	ID       ElementID
	Position Vector
}

// Unhover is sent to an element that stopped being hovered.
type Unhover struct {
	ID ElementID
}

// Press is sent to the hovered element when a button goes down.
type Press struct {
	ID       ElementID
	Button   MouseButton
	Position Vector
}

// Release is sent to the element holding a button when it goes up.
type Release struct {
	ID       ElementID
	Button   MouseButton
	Position Vector
}

// Click follows Release when the element is still hovered.
type Click struct {
	ID       ElementID
	Button   MouseButton
	Position Vector
}

// Drag is sent to a held element for every pointer move, whether or not the
// pointer is still over it.
type Drag struct {
	ID       ElementID
	Button   MouseButton
	Position Vector
	Delta    Vector
}

// SetParameter carries a new normalized value for a plugin parameter.
type SetParameter struct {
	Index int
	Value float32
}

// ResetParameter asks for a parameter to return to its default.
type ResetParameter struct {
	Index int
}

// Custom carries an application-defined payload.
type Custom struct {
	Value any
}

func (Hover) isEvent() {}
func (Unhover) isEvent() {}
func (Press) isEvent() {}
func (Release) isEvent() {}
func (Click) isEvent() {}
func (Drag) isEvent() {}
func (SetParameter) isEvent() {}
func (ResetParameter) isEvent() {}
func (Custom) isEvent() {}

// EventElement returns the element an interaction event is about.
// Parameter and custom events report false.
func EventElement(ev Event) (ElementID, bool) {
	switch e := ev.(type) {
	case Hover:
		return e.ID, true
	case Unhover:
		return e.ID, true
	case Press:
		return e.ID, true
	case Release:
		return e.ID, true
	case Click:
		return e.ID, true
	case Drag:
		return e.ID, true
	default:
		return ElementID{}, false
	}
}

// eventAttr renders an event for structured logs.
func eventAttr(ev Event) slog.Attr {
	return slog.String("event", fmt.Sprintf("%T%+v", ev, ev))
}

type queuedEvent struct {
	event  Event
	target ElementID
}

// EventQueue collects events raised while the GUI dispatches. Events pushed
// with Push or Broadcast are dispatched to behaviors in a later generation of
// the same flush; events passed to Output wait for the host to drain them.
type EventQueue struct {
	pending []queuedEvent
	output  []Event
}

// Push queues ev for the behaviors of target. The zero ElementID broadcasts.
func (q *EventQueue) Push(ev Event, target ElementID) {
	q.pending = append(q.pending, queuedEvent{event: ev, target: target})
}

// Broadcast queues ev for every behavior in the GUI.
func (q *EventQueue) Broadcast(ev Event) {
	q.Push(ev, ElementID{})
}

// Output queues ev for the host, e.g. the audio thread.
func (q *EventQueue) Output(ev Event) {
	q.output = append(q.output, ev)
}

// Len returns the number of events waiting for dispatch.
func (q *EventQueue) Len() int {
	return len(q.pending)
}

// take hands the pending batch to the dispatcher. Pushes made while the
// batch is being dispatched land in a fresh slice.
func (q *EventQueue) take() []queuedEvent {
	batch := q.pending
	q.pending = nil
	return batch
}

func (q *EventQueue) drainOutput() []Event {
	out := q.output
	q.output = nil
	return out
}
