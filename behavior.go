package knobs

// Behavior is a unit of logic and drawing attached to an element.
// An element can carry any number of behaviors; they run in attachment order.
//
// A behavior can:
//   - react to events and queue further events (On)
//   - size and position its element or its children (Layout)
//   - contribute draw operations before and after its element's children
//     (DrawBelow, DrawAbove)
//
// Embed BaseBehavior to get no-op defaults and implement only what you need:
//
//	type Meter struct {
//	    knobs.BaseBehavior
//	    level float32
//	}
//
//	func (m *Meter) On(ev knobs.Event, _ *knobs.Elements, _ *knobs.EventQueue) {
//	    if p, ok := ev.(knobs.SetParameter); ok && p.Index == 3 {
//	        m.level = p.Value
//	    }
//	}
type Behavior interface {
	// On is called for every event dispatched to the element (or broadcast).
	// Elements may be mutated; new events go through queue.
	On(ev Event, elements *Elements, queue *EventQueue)

	// Layout is called once per frame after all descendants are laid out.
	Layout(elements *Elements, id ElementID, res Resources)

	// DrawBelow draws before the element's children. Coordinates are in the
	// element's parent space; the canvas applies accumulated translation.
	DrawBelow(el Element, canvas *Canvas, res Resources)

	// DrawAbove draws after the element's children.
	DrawAbove(el Element, canvas *Canvas, res Resources)
}

// BaseBehavior implements Behavior with no-ops.
type BaseBehavior struct{}

func (BaseBehavior) On(Event, *Elements, *EventQueue) {}

func (BaseBehavior) Layout(*Elements, ElementID, Resources) {}

func (BaseBehavior) DrawBelow(Element, *Canvas, Resources) {}

func (BaseBehavior) DrawAbove(Element, *Canvas, Resources) {}

// Themed is implemented by behaviors whose colors follow the Gui theme.
// ApplyTheme is called when the behavior is attached and on every SetTheme.
type Themed interface {
	ApplyTheme(theme Theme)
}
