package input

import (
	"maps"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/config"
)

// BindingKind classifies what a key drives
type BindingKind uint8

const (
	BindingAxis BindingKind = iota
	BindingAction
)

// Binding describes a key's effect without function pointers
// Value is the axis deflection for BindingAxis and unused for actions
type Binding struct {
	Kind  BindingKind
	Name  string
	Value float32
}

// KeyTable maps keys to bindings
type KeyTable struct {
	// Printable keys
	Runes map[rune]Binding

	// Special keys (Ctrl+*, arrows, Esc)
	Keys map[tcell.Key]Binding
}

// DefaultKeyTable binds w/s to the left paddle, arrows to the right one and q/Esc/Ctrl+C to quit
func DefaultKeyTable(b config.BindingsConfig) *KeyTable {
	up := func(axis string) Binding { return Binding{Kind: BindingAxis, Name: axis, Value: 1} }
	down := func(axis string) Binding { return Binding{Kind: BindingAxis, Name: axis, Value: -1} }
	action := func(name string) Binding { return Binding{Kind: BindingAction, Name: name} }

	return &KeyTable{
		Runes: map[rune]Binding{
			'w': up(b.LeftPaddle),
			'W': up(b.LeftPaddle),
			's': down(b.LeftPaddle),
			'S': down(b.LeftPaddle),
			'q': action(b.Quit),
			'm': action(b.Mute),
		},
		Keys: map[tcell.Key]Binding{
			tcell.KeyUp:     up(b.RightPaddle),
			tcell.KeyDown:   down(b.RightPaddle),
			tcell.KeyEscape: action(b.Quit),
			tcell.KeyCtrlC:  action(b.Quit),
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Runes: maps.Clone(kt.Runes),
		Keys:  maps.Clone(kt.Keys),
	}
}

// Lookup resolves a key event to its binding
// A Ctrl+letter reported as a modified rune resolves through the matching KeyCtrl* entry
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Binding, bool) {
	if ev.Key() == tcell.KeyRune {
		if r := unicode.ToLower(ev.Rune()); ev.Modifiers()&tcell.ModCtrl != 0 && r >= 'a' && r <= 'z' {
			b, ok := kt.Keys[tcell.KeyCtrlA+tcell.Key(r-'a')]
			return b, ok
		}
		b, ok := kt.Runes[ev.Rune()]
		return b, ok
	}
	b, ok := kt.Keys[ev.Key()]
	return b, ok
}
