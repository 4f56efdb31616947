package knobs

import "log/slog"

// Emit sends ev to the behaviors of target, or to every behavior when
// target is the zero ElementID, then keeps dispatching whatever those
// behaviors queue until nothing is left.
//
// Dispatch is breadth-first: all events of one generation are delivered
// before any event they caused. Within a generation, events keep the order
// they were queued in, and a broadcast reaches elements in insertion order.
func (g *Gui) Emit(ev Event, target ElementID) {
	if target.IsValid() {
		g.elements.Get(target)
	}
	g.queue.Push(ev, target)
	g.flush()
}

func (g *Gui) flush() {
	for generation := 0; g.queue.Len() > 0; generation++ {
		batch := g.queue.take()
		g.logger.Debug("dispatch", slog.Int("generation", generation), slog.Int("events", len(batch)))
		for _, qe := range batch {
			g.dispatch(qe)
		}
	}
}

func (g *Gui) dispatch(qe queuedEvent) {
	if qe.target.IsValid() {
		g.elements.Get(qe.target)
		for _, b := range g.behaviors[qe.target.index()] {
			b.On(qe.event, &g.elements, &g.queue)
		}
		return
	}
	for _, list := range g.behaviors {
		for _, b := range list {
			b.On(qe.event, &g.elements, &g.queue)
		}
	}
}
