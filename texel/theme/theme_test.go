package theme

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupParsesHexAndNames(t *testing.T) {
	cfg := FromMap(map[string]map[string]string{
		"Pane": {"Unfocused_Border": "#102030", "active_border": "teal"},
	})

	col, ok := cfg.Lookup("pane", "unfocused_border")
	require.True(t, ok)
	assert.Equal(t, tcell.NewRGBColor(0x10, 0x20, 0x30), col)

	col, ok = cfg.Lookup("pane", "active_border")
	require.True(t, ok)
	assert.Equal(t, tcell.ColorTeal, col)
}

func TestLookupMissingOrInvalid(t *testing.T) {
	cfg := Config{"pane": {"bad": "not-a-color"}}

	_, ok := cfg.Lookup("pane", "unfocused_border")
	assert.False(t, ok)
	_, ok = cfg.Lookup("nope", "unfocused_border")
	assert.False(t, ok)
	_, ok = cfg.Lookup("pane", "bad")
	assert.False(t, ok)

	assert.Equal(t, tcell.ColorRed, cfg.GetColor("pane", "bad", tcell.ColorRed))
}

func TestSetNilClears(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	Set(Config{"ui": {"text_bg": "black"}})
	_, ok := Get().Lookup("ui", "text_bg")
	require.True(t, ok)

	Set(nil)
	_, ok = Get().Lookup("ui", "text_bg")
	assert.False(t, ok)
	assert.NotNil(t, Get())
}

func TestWithOverridesDoesNotMutateBase(t *testing.T) {
	base := Config{"ui": {"text_fg": "white"}}
	merged := WithOverrides(base, Config{"ui": {"text_fg": "red"}, "pane": {"unfocused_border": "blue"}})

	assert.Equal(t, "white", base["ui"]["text_fg"])
	assert.Equal(t, "red", merged["ui"]["text_fg"])
	assert.Equal(t, "blue", merged["pane"]["unfocused_border"])
}
