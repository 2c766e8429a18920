package model

import "strings"

// Event is a set of logical inputs. A single bit names one input; the
// controller accumulates bits between ticks and processes them together.
type Event uint16

const (
	EventNone       Event = 0
	EventMoveDown   Event = 1 << 0
	EventMoveLeft   Event = 1 << 1
	EventMoveRight  Event = 1 << 2
	EventRotateCW   Event = 1 << 3 // rotate clockwise
	EventRotateCCW  Event = 1 << 4 // rotate counter-clockwise
	EventDrop       Event = 1 << 5 // hard drop
	EventPause      Event = 1 << 6
	EventRestart    Event = 1 << 7
	EventShowNext   Event = 1 << 8 // toggle preview of the next piece
	EventShowShadow Event = 1 << 9 // toggle landing shadow
	EventQuit       Event = 1 << 10
)

// AllEvents lists every single-bit event in bit order
var AllEvents = []Event{
	EventMoveDown,
	EventMoveLeft,
	EventMoveRight,
	EventRotateCW,
	EventRotateCCW,
	EventDrop,
	EventPause,
	EventRestart,
	EventShowNext,
	EventShowShadow,
	EventQuit,
}

var eventNames = map[Event]string{
	EventMoveDown:   "move_down",
	EventMoveLeft:   "move_left",
	EventMoveRight:  "move_right",
	EventRotateCW:   "rotate_cw",
	EventRotateCCW:  "rotate_ccw",
	EventDrop:       "drop",
	EventPause:      "pause",
	EventRestart:    "restart",
	EventShowNext:   "show_next",
	EventShowShadow: "show_shadow",
	EventQuit:       "quit",
}

// Has returns true if every bit of other is set in e
func (e Event) Has(other Event) bool {
	return other != EventNone && e&other == other
}

// String returns the names of the set bits joined with "|"
func (e Event) String() string {
	if e == EventNone {
		return "none"
	}
	var names []string
	for _, ev := range AllEvents {
		if e&ev != 0 {
			names = append(names, eventNames[ev])
		}
	}
	return strings.Join(names, "|")
}
