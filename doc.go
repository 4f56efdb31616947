/*
Package knobs provides a retained-mode GUI core for audio plugin editors.

# Overview

A Gui owns a tree of rectangular elements. Each element carries any number of
behaviors: small pieces of logic that react to events, size and position
elements, and emit draw operations. The Gui turns raw mouse input into
Hover, Unhover, Press, Release, Click and Drag events for the right element,
dispatches events between behaviors, and produces a Canvas of abstract draw
operations for a rendering backend.

Nothing here renders pixels or talks to a windowing system. The backend
packages do that:

	backend/drawlist    tessellates a Canvas into vertex and index buffers
	backend/opengl      renders draw lists with OpenGL; GLFW input adapter
	backend/ebitengine  renders a Canvas on an ebiten.Image; ebiten.Game adapter

# Quick Start

	assets := knobs.NewAssets()
	font, _ := assets.LoadDefaultFont()

	ui := knobs.New(knobs.WithResources(assets), knobs.WithTheme(knobs.DarkTheme()))
	ui.Add(knobs.ElementSettings{
	    Rect:      knobs.NewRect(10, 10, 300, 0),
	    Behaviors: []knobs.Behavior{knobs.NewPanel(), knobs.NewRow(knobs.SpaceEvenly(), knobs.AlignMiddle)},
	    Children: []knobs.ElementSettings{
	        {Rect: knobs.NewRect(0, 0, 48, 48), Behaviors: []knobs.Behavior{knobs.NewKnob(0, 0.5).WithLabel(font, "Gain")}},
	        {Rect: knobs.NewRect(0, 0, 48, 48), Behaviors: []knobs.Behavior{knobs.NewKnob(1, 0.2).WithLabel(font, "Drive")}},
	    },
	})

	// Every frame:
	ui.OnMoveMouse(x, y, dx, dy)           // or feed a knobs.Pointer
	for _, ev := range ui.DrainOutputEvents() {
	    // forward SetParameter / ResetParameter to the audio thread
	}
	canvas := ui.Draw()                    // hand to a backend

# Elements

Elements are added with Gui.Add, which takes an ElementSettings describing an
element and, recursively, its children. Elements are never removed. An
ElementID stays valid for the life of the Gui; the zero ElementID means "no
element" and, as an Emit target, "every element".

Positions are relative to the parent. Paint and hit-test order is insertion
order: later siblings are drawn over earlier ones, children over their
parent. The Height field is kept as data only.

# Interaction

At most one element is hovered at a time: the topmost one whose rectangle
contains the pointer. Rectangle edges count as inside.

On every OnMoveMouse the Gui emits, in this order:

 1. Unhover to the element that lost hover
 2. Hover to the element that gained it
 3. Drag to every element held by a button, one per button

OnPressMouseButton makes the hovered element the holder of that button and
sends it Press. OnReleaseMouseButton sends Release to the holder and, if the
pointer is still over it, Click. A held element keeps getting Drag events
after the pointer leaves it. Positions in these events are relative to the
element's origin.

# Events

Gui.Emit queues an event and dispatches until no events remain. Behaviors
queue further events through the EventQueue they receive: Push for one
element, Broadcast for all, Output for the host. Dispatch is breadth-first:
an event is delivered only after every event queued before it, including
events of the previous generation. Broadcasts reach behaviors in element
insertion order, then attachment order.

SetParameter and ResetParameter connect the editor to the host. A Knob
broadcasts and outputs SetParameter while dragged; Gui.SetParameter pushes
host automation back into every behavior.

# Layout and Drawing

Gui.Draw runs two passes over the tree. Layout visits children before their
parent, so containers such as Flex see final child sizes. Drawing visits
each element as DrawBelow, then its children, then DrawAbove; the Canvas
translation stack makes every behavior draw in its parent's coordinates
while operations are stored in absolute coordinates.

Draw is a pure function of element and behavior state: calling it twice
without input in between yields identical operations.

# Themes

Theme holds the colors and sizes the stock behaviors draw with. Themes load
from TOML or YAML (LoadTheme, LoadThemeFile) and WatchTheme reloads a file as
it changes. Gui.SetTheme restyles every behavior implementing Themed.

# Threading

A Gui is not safe for concurrent use. Drive input, dispatch and drawing from
one goroutine and hand output events to the audio thread through a queue of
your choice.
*/
package knobs
