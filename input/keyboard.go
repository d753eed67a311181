// Package input turns terminal key and mouse events into the axis and action state read by the simulation
package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/parameter"
)

type axisHold struct {
	value float32
	until time.Time
}

// Keyboard implements engine.Input over tcell events
//
// Terminals report presses and repeats but never releases, so every press holds its
// axis or action for parameter.KeyHoldWindow. A repeat extends the hold; pressing the
// opposite direction replaces it.
//
// Thread-Safety: HandleEvent runs on the event goroutine, queries on the tick goroutine
type Keyboard struct {
	mu      sync.Mutex
	table   *KeyTable
	axes    map[string]axisHold
	actions map[string]time.Time

	mouseX, mouseY float32
	mouseSeen      bool

	now func() time.Time
}

// NewKeyboard creates a keyboard reading the given key table
func NewKeyboard(table *KeyTable) *Keyboard {
	return &Keyboard{
		table:   table,
		axes:    make(map[string]axisHold),
		actions: make(map[string]time.Time),
		now:     time.Now,
	}
}

// HandleEvent records one terminal event and reports what it meant
func (k *Keyboard) HandleEvent(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return k.handleKey(ev)
	case *tcell.EventMouse:
		x, y := ev.Position()
		k.mu.Lock()
		k.mouseX, k.mouseY = float32(x), float32(y)
		k.mouseSeen = true
		k.mu.Unlock()
		return Intent{Type: IntentMouse}
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventFocus:
		if !ev.Focused {
			k.Release()
		}
	}
	return Intent{}
}

func (k *Keyboard) handleKey(ev *tcell.EventKey) Intent {
	b, ok := k.table.Lookup(ev)
	if !ok {
		return Intent{}
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	until := k.now().Add(parameter.KeyHoldWindow)
	if b.Kind == BindingAxis {
		k.axes[b.Name] = axisHold{value: b.Value, until: until}
		return Intent{Type: IntentAxis, Name: b.Name}
	}
	k.actions[b.Name] = until
	return Intent{Type: IntentAction, Name: b.Name}
}

// Axis returns the held deflection of a named axis; false once the hold expired
func (k *Keyboard) Axis(name string) (float32, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	hold, ok := k.axes[name]
	if !ok {
		return 0, false
	}
	if k.now().After(hold.until) {
		delete(k.axes, name)
		return 0, false
	}
	return hold.value, true
}

// ActionDown reports whether the named action was pressed within the hold window
func (k *Keyboard) ActionDown(name string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	until, ok := k.actions[name]
	if !ok {
		return false
	}
	if k.now().After(until) {
		delete(k.actions, name)
		return false
	}
	return true
}

// MousePosition returns the last pointer cell; false before any mouse event
func (k *Keyboard) MousePosition() (x, y float32, ok bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.mouseX, k.mouseY, k.mouseSeen
}

// Release drops every held axis and action, used when the terminal loses focus
func (k *Keyboard) Release() {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.axes)
	clear(k.actions)
}
