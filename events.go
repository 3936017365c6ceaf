package svgdom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// EventSlot identifies one of the fixed interactive event slots an element
// may carry a handler for. SlotTextChange only fires on text-bearing
// elements.
type EventSlot uint8

// The fixed set of interactive event slots.
const (
	SlotClick EventSlot = iota
	SlotMouseDown
	SlotMouseUp
	SlotMouseMove
	SlotScroll
	SlotMouseOver
	SlotMouseOut
	SlotTextChange
	numEventSlots
)

var slotNames = [...]string{
	"click", "mousedown", "mouseup", "mousemove",
	"scroll", "mouseover", "mouseout", "textchange",
}

func (s EventSlot) String() string {
	if int(s) < len(slotNames) {
		return slotNames[s]
	}
	return "unknown"
}

// EventHandler reacts to an interactive event on an element.
type EventHandler func(e *Element, slot EventSlot)

// placeholderHandler marks handler presence on deep-copied elements without
// copying handler identity.
func placeholderHandler(*Element, EventSlot) {}

// AttachHandler subscribes a handler to an event slot, replacing any
// previous one.
func (e *Element) AttachHandler(slot EventSlot, h EventHandler) {
	if h == nil {
		return
	}
	if e.handlers == nil {
		e.handlers = make(map[EventSlot]EventHandler)
	}
	e.handlers[slot] = h
}

// HasHandler checks if a handler is attached to an event slot.
func (e *Element) HasHandler(slot EventSlot) bool {
	_, ok := e.handlers[slot]
	return ok
}

// Fire dispatches an event to the slot's handler, if any, synchronously.
func (e *Element) Fire(slot EventSlot) {
	if h, ok := e.handlers[slot]; ok {
		h(e, slot)
	}
}
