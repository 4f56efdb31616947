package knobs

import (
	"fmt"
	"iter"
)

// ElementSettings declares an element and, recursively, its children.
type ElementSettings struct {
	// Rect is the element's bounds relative to its parent.
	// A zero size lets content behaviors (Text, Image) size the element.
	Rect Rect
	// Height is a stacking hint. Paint and hit-test order is insertion order.
	Height float32
	// Name optionally registers the element for Elements.Lookup.
	Name string
	// Behaviors are attached in order and never removed.
	Behaviors []Behavior
	// Children are added depth-first right after this element.
	Children []ElementSettings
}

// Element is a rectangular node of the GUI tree. Hover and held state are
// maintained by the Gui; behaviors read them through the accessors.
type Element struct {
	Rect   Rect
	Height float32
	Name   string

	parent  ElementID
	hovered bool
	held    [MouseButtonCount]bool
}

// Parent returns the parent element, if any.
func (e Element) Parent() (ElementID, bool) {
	return e.parent, e.parent.IsValid()
}

// Hovered returns true if this is the topmost element under the pointer.
func (e Element) Hovered() bool {
	return e.hovered
}

// Held returns true if button was pressed on this element and not yet released.
func (e Element) Held(button MouseButton) bool {
	if !button.valid() {
		return false
	}
	return e.held[button]
}

// HeldAny returns true if any button holds this element.
func (e Element) HeldAny() bool {
	for _, h := range e.held {
		if h {
			return true
		}
	}
	return false
}

// TreeNode is a parent→children nesting materialized for one traversal.
type TreeNode struct {
	ID       ElementID
	Children []TreeNode
}

// Elements is the flat arena holding every element of a Gui.
// Parent links are the only structural data; child lists are derived.
type Elements struct {
	elements []Element
	names    map[string]ElementID
}

func (es *Elements) push(el Element) ElementID {
	id := idAt(len(es.elements))
	es.elements = append(es.elements, el)
	if el.Name != "" {
		if es.names == nil {
			es.names = make(map[string]ElementID)
		}
		es.names[el.Name] = id
	}
	return id
}

// Len returns the number of elements.
func (es *Elements) Len() int {
	return len(es.elements)
}

// Get returns the element with the given id. It panics if the id was not
// issued by this tree.
func (es *Elements) Get(id ElementID) *Element {
	i := id.index()
	if i < 0 || i >= len(es.elements) {
		panic(fmt.Sprintf("knobs: invalid element id %v (tree has %d elements)", id, len(es.elements)))
	}
	return &es.elements[i]
}

// Lookup finds an element by the Name it was added with.
// When several elements share a name, the last one added wins.
func (es *Elements) Lookup(name string) (ElementID, bool) {
	id, ok := es.names[name]
	return id, ok
}

// All iterates over every element in insertion order.
func (es *Elements) All() iter.Seq2[ElementID, *Element] {
	return func(yield func(ElementID, *Element) bool) {
		for i := range es.elements {
			if !yield(idAt(i), &es.elements[i]) {
				return
			}
		}
	}
}

// ChildrenOf returns the direct children of parent in insertion order.
func (es *Elements) ChildrenOf(parent ElementID) []ElementID {
	var children []ElementID
	for i := range es.elements {
		if es.elements[i].parent == parent {
			children = append(children, idAt(i))
		}
	}
	return children
}

// Tree materializes the subtree forest below parent. The zero ElementID
// yields the whole forest of root elements.
func (es *Elements) Tree(parent ElementID) []TreeNode {
	// Bucket children once so the build is linear in the number of elements.
	children := make(map[ElementID][]ElementID, len(es.elements))
	for i := range es.elements {
		p := es.elements[i].parent
		children[p] = append(children[p], idAt(i))
	}
	return buildTree(children, parent)
}

func buildTree(children map[ElementID][]ElementID, parent ElementID) []TreeNode {
	ids := children[parent]
	if len(ids) == 0 {
		return nil
	}
	nodes := make([]TreeNode, len(ids))
	for i, id := range ids {
		nodes[i] = TreeNode{ID: id, Children: buildTree(children, id)}
	}
	return nodes
}

// AbsolutePosition returns the element's origin composed through all
// ancestors, in the root coordinate space.
func (es *Elements) AbsolutePosition(id ElementID) Vector {
	var pos Vector
	for cur := id; cur.IsValid(); {
		el := es.Get(cur)
		pos = pos.Add(el.Rect.Position)
		cur = el.parent
	}
	return pos
}

// AbsoluteRect returns the element's bounds in the root coordinate space.
func (es *Elements) AbsoluteRect(id ElementID) Rect {
	return Rect{Position: es.AbsolutePosition(id), Size: es.Get(id).Rect.Size}
}
