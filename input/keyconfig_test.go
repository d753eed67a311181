package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-pong/config"
)

func TestLoadKeyConfigOverrides(t *testing.T) {
	data := []byte(`
[runes]
i = "left_paddle:up"
k = "left_paddle:down"
space = "mute"

[keys]
ctrl_q = "quit"
`)
	override, err := LoadKeyConfig(data)
	require.NoError(t, err)

	assert.Equal(t, Binding{Kind: BindingAxis, Name: "left_paddle", Value: 1}, override.Runes['i'])
	assert.Equal(t, Binding{Kind: BindingAxis, Name: "left_paddle", Value: -1}, override.Runes['k'])
	assert.Equal(t, Binding{Kind: BindingAction, Name: "mute"}, override.Runes[' '])
	assert.Equal(t, Binding{Kind: BindingAction, Name: "quit"}, override.Keys[tcell.KeyCtrlQ])

	base := DefaultKeyTable(config.Default().Bindings)
	merged := MergeKeyTable(base, override)
	assert.Contains(t, merged.Runes, 'i')
	assert.Contains(t, merged.Runes, 'w', "defaults survive the merge")
	assert.NotContains(t, base.Runes, 'i', "base table is not modified")
}

func TestLoadKeyConfigErrors(t *testing.T) {
	cases := map[string]string{
		"parse":          `[runes`,
		"multi-char key": "[runes]\nab = \"quit\"",
		"bad direction":  "[runes]\ni = \"left_paddle:sideways\"",
		"unknown key":    "[keys]\nf13 = \"quit\"",
		"empty binding":  "[runes]\ni = \"\"",
		"unknown table":  "[mouse]\nleft = \"quit\"",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadKeyConfig([]byte(data))
			assert.Error(t, err)
		})
	}
}
