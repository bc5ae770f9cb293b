package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"warped/game"
)

// holdWindow is how long a key counts as held after its last event. Terminals
// only report presses, auto-repeat keeps a held key alive.
const holdWindow = 150 * time.Millisecond

// termInput turns tcell events into held keys and pointer messages
type termInput struct {
	lastPress map[game.Key]time.Time
	fireAt    time.Time

	// Scene size over terminal size
	scaleX, scaleY float64

	mouseDown bool
	firing    bool
	queue     []game.Message
	now       time.Time
}

func newTermInput() *termInput {
	return &termInput{
		lastPress: make(map[game.Key]time.Time),
		scaleX:    1,
		scaleY:    1,
	}
}

// resize records the cell to scene scale
func (in *termInput) resize(cols, rows int, w, h float64) {
	if cols > 0 && rows > 0 {
		in.scaleX = w / float64(cols)
		in.scaleY = h / float64(rows)
	}
}

// handle records one event at now
func (in *termInput) handle(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyLeft:
			in.lastPress[game.KeyLeft] = now
		case tcell.KeyRight:
			in.lastPress[game.KeyRight] = now
		case tcell.KeyUp:
			in.lastPress[game.KeyUp] = now
		case tcell.KeyDown:
			in.lastPress[game.KeyDown] = now
		case tcell.KeyEscape:
			in.lastPress[game.KeyEscape] = now
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'a', 'A':
				in.lastPress[game.KeyLeft] = now
			case 'd', 'D':
				in.lastPress[game.KeyRight] = now
			case 'w', 'W':
				in.lastPress[game.KeyUp] = now
			case 's', 'S':
				in.lastPress[game.KeyDown] = now
			case ' ':
				in.fireAt = now
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		sx, sy := (float64(x)+0.5)*in.scaleX, (float64(y)+0.5)*in.scaleY
		in.queue = append(in.queue, game.Message{Action: game.ActionPointerMove, X: sx, Y: sy})
		in.mouseDown = ev.Buttons()&tcell.Button1 != 0
	}
}

// IsHeld reports keys seen within the hold window
func (in *termInput) IsHeld(key game.Key) bool {
	t, ok := in.lastPress[key]
	return ok && in.now.Sub(t) < holdWindow
}

// Update flushes queued pointer messages and the fire state
func (in *termInput) Update(bus *game.Bus) {
	for _, msg := range in.queue {
		bus.Broadcast(msg)
	}
	in.queue = in.queue[:0]

	fire := in.mouseDown || (!in.fireAt.IsZero() && in.now.Sub(in.fireAt) < holdWindow)
	if fire != in.firing {
		in.firing = fire
		if fire {
			bus.Send(game.ActionPointerDown)
		} else {
			bus.Send(game.ActionPointerUp)
		}
	}
}

// tick sets the time IsHeld and Update measure against
func (in *termInput) tick(now time.Time) {
	in.now = now
}

// reset forgets all input, used between sessions
func (in *termInput) reset() {
	for k := range in.lastPress {
		delete(in.lastPress, k)
	}
	in.fireAt = time.Time{}
	in.mouseDown = false
	in.firing = false
	in.queue = in.queue[:0]
}
