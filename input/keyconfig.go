package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// Special key names accepted in the [keys] section
var specialKeys = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"esc":    tcell.KeyEscape,
	"enter":  tcell.KeyEnter,
	"tab":    tcell.KeyTab,
	"ctrl_c": tcell.KeyCtrlC,
	"ctrl_q": tcell.KeyCtrlQ,
}

// keymapFile is the on-disk layout; values are "axis:up", "axis:down" or a bare action name
type keymapFile struct {
	Runes map[string]string `toml:"runes"`
	Keys  map[string]string `toml:"keys"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Returns error on unknown key names, malformed bindings, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var file keymapFile
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap: unknown section %q", undecoded[0].String())
	}

	kt := &KeyTable{
		Runes: make(map[rune]Binding, len(file.Runes)),
		Keys:  make(map[tcell.Key]Binding, len(file.Keys)),
	}

	for name, value := range file.Runes {
		r, err := resolveRune(name)
		if err != nil {
			return nil, fmt.Errorf("section [runes]: %w", err)
		}
		b, err := parseBinding(value)
		if err != nil {
			return nil, fmt.Errorf("section [runes] key %q: %w", name, err)
		}
		kt.Runes[r] = b
	}

	for name, value := range file.Keys {
		key, ok := specialKeys[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("section [keys]: unknown key name %q", name)
		}
		b, err := parseBinding(value)
		if err != nil {
			return nil, fmt.Errorf("section [keys] key %q: %w", name, err)
		}
		kt.Keys[key] = b
	}

	return kt, nil
}

func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("key %q must be a single character or alias", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func parseBinding(value string) (Binding, error) {
	name, dir, isAxis := strings.Cut(value, ":")
	if name == "" {
		return Binding{}, fmt.Errorf("empty binding")
	}
	if !isAxis {
		return Binding{Kind: BindingAction, Name: name}, nil
	}

	switch dir {
	case "up":
		return Binding{Kind: BindingAxis, Name: name, Value: 1}, nil
	case "down":
		return Binding{Kind: BindingAxis, Name: name, Value: -1}, nil
	default:
		return Binding{}, fmt.Errorf("axis direction %q must be up or down", dir)
	}
}

// MergeKeyTable returns base with every binding present in override replacing it
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	for r, b := range override.Runes {
		result.Runes[r] = b
	}
	for k, b := range override.Keys {
		result.Keys[k] = b
	}
	return result
}
