package knobs_test

import (
	"github.com/knobs-audio/knobs"
)

// recorder appends every event it receives to a shared log, tagged with
// its own name.
type recorder struct {
	knobs.BaseBehavior

	name string
	log  *[]string
	got  []knobs.Event
}

func newRecorder(name string, log *[]string) *recorder {
	return &recorder{name: name, log: log}
}

func (r *recorder) On(ev knobs.Event, _ *knobs.Elements, _ *knobs.EventQueue) {
	r.got = append(r.got, ev)
	if r.log != nil {
		*r.log = append(*r.log, r.name)
	}
}

// ofType returns the recorded events of type T.
func ofType[T knobs.Event](r *recorder) []T {
	var out []T
	for _, ev := range r.got {
		if e, ok := ev.(T); ok {
			out = append(out, e)
		}
	}
	return out
}

// drawTracer records draw and layout calls under a name.
type drawTracer struct {
	knobs.BaseBehavior

	name  string
	trace *[]string
}

func (d *drawTracer) Layout(*knobs.Elements, knobs.ElementID, knobs.Resources) {
	*d.trace = append(*d.trace, "layout "+d.name)
}

func (d *drawTracer) DrawBelow(knobs.Element, *knobs.Canvas, knobs.Resources) {
	*d.trace = append(*d.trace, "below "+d.name)
}

func (d *drawTracer) DrawAbove(knobs.Element, *knobs.Canvas, knobs.Resources) {
	*d.trace = append(*d.trace, "above "+d.name)
}

func rect(x, y, w, h float32) knobs.Rect {
	return knobs.NewRect(x, y, w, h)
}

// reactor runs f for every event it receives.
type reactor struct {
	knobs.BaseBehavior

	f func(ev knobs.Event, elements *knobs.Elements, queue *knobs.EventQueue)
}

func (r *reactor) On(ev knobs.Event, elements *knobs.Elements, queue *knobs.EventQueue) {
	r.f(ev, elements, queue)
}
