// Package input provides functionality for event parsing.
package input

import (
	"github.com/Eliasin/projections/shared/geom"
	"github.com/veandco/go-sdl2/sdl"
)

// Event identifies a single discrete input action.
type Event int

// These constants are the input events the viewer responds to.
// The six Move events translate the viewpoint along the global axes.
const (
	Quit Event = iota
	Snapshot
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	MoveIn
	MoveOut
)

// moveStep is the distance the viewpoint travels per movement event.
const moveStep float64 = 10

// moveDeltas maps each movement event to its viewpoint translation.
// Treat it as read-only.
var moveDeltas = map[Event]geom.Vector{
	MoveLeft:  {X: -moveStep},
	MoveRight: {X: moveStep},
	MoveUp:    {Y: moveStep},
	MoveDown:  {Y: -moveStep},
	MoveIn:    {Z: moveStep},
	MoveOut:   {Z: -moveStep},
}

// keyEvents maps SDL key codes to input events.  Treat it as read-only.
var keyEvents = map[sdl.Keycode]Event{
	sdl.K_ESCAPE: Quit,
	sdl.K_s:      Snapshot,
	sdl.K_LEFT:   MoveLeft,
	sdl.K_RIGHT:  MoveRight,
	sdl.K_UP:     MoveUp,
	sdl.K_DOWN:   MoveDown,
	sdl.K_q:      MoveIn,
	sdl.K_e:      MoveOut,
}

// MoveDelta returns the viewpoint translation for a movement event.
// The second return value is false for events which do not move the
// viewpoint; the caller decides how and when to apply the delta.
func MoveDelta(e Event) (geom.Vector, bool) {
	delta, exists := moveDeltas[e]
	return delta, exists
}

// Poll drains the SDL event queue and translates it into input events, in
// the order they arrived.
func Poll() []Event {
	var events []Event
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			events = append(events, Quit)
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Mod == sdl.KMOD_NONE {
				if mapped, exists := keyEvents[e.Keysym.Sym]; exists {
					events = append(events, mapped)
				}
			}
		}
	}
	return events
}
