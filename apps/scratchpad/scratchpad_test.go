package scratchpad

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/texelpad/config"
	"github.com/framegrace/texelpad/internal/theming"
	"github.com/framegrace/texelpad/registry"
	"github.com/framegrace/texelpad/texel"
	"github.com/framegrace/texelpad/texel/theme"
	"github.com/framegrace/texelpad/texelui/core"
	"github.com/framegrace/texelpad/texelui/widgets"
)

func withTheme(t *testing.T, cfg theme.Config) {
	t.Helper()
	prev := theme.Get()
	theme.Set(cfg)
	t.Cleanup(func() { theme.Set(prev) })
}

func TestNewUsesThemeBrushForBackground(t *testing.T) {
	withTheme(t, theme.FromMap(map[string]map[string]string{
		"pane": {"unfocused_border": "#102030"},
	}))

	s := New()
	bg, ok := s.root.Background()
	require.True(t, ok)
	assert.Equal(t, tcell.NewHexColor(0x102030), bg)
}

func TestNewLeavesBackgroundUnsetWithoutBrush(t *testing.T) {
	withTheme(t, nil)

	s := New()
	_, ok := s.root.Background()
	assert.False(t, ok)
}

func TestNewHonoursPerAppOverride(t *testing.T) {
	withTheme(t, theme.Get())
	theming.Apply(&config.Settings{
		Theme: map[string]map[string]string{"pane": {"unfocused_border": "#000010"}},
		Apps: map[string]map[string]any{
			"scratchpad": {"theme_overrides": map[string]any{
				"pane": map[string]any{"unfocused_border": "#000020"},
			}},
		},
	})
	t.Cleanup(func() { theming.Apply(&config.Settings{}) })

	bg, ok := New().root.Background()
	require.True(t, ok)
	assert.Equal(t, tcell.NewHexColor(0x000020), bg)
}

func TestRootHoldsExactlyTheTextBox(t *testing.T) {
	s := New()

	root, ok := s.Root().(*widgets.Pane)
	require.True(t, ok)
	assert.Same(t, s.box, root.Child())

	var children []core.Widget
	root.VisitChildren(func(w core.Widget) { children = append(children, w) })
	assert.Len(t, children, 1)
	assert.True(t, s.box.WordWrap)
	assert.Equal(t, core.UniformInsets(1), s.box.Margin)
	assert.True(t, s.box.ScrollIndicators)
	assert.Same(t, clip, s.box.Clipboard)
	assert.Same(t, s.box.Clipboard, New().box.Clipboard)
}

func TestFixedProperties(t *testing.T) {
	s := New()

	assert.Equal(t, texel.Size{Cols: 1, Rows: 1}, s.MinSize())
	assert.Equal(t, "\ue70b", s.Icon())
	assert.Equal(t, "Scratchpad", s.Title())
	assert.Nil(t, s.NewTerminalArgs(false))
	assert.Nil(t, s.NewTerminalArgs(true))

	s.box.SetText("still here")
	s.Root().Resize(3, 2)
	assert.Equal(t, texel.Size{Cols: 1, Rows: 1}, s.MinSize())
	assert.Equal(t, "\ue70b", s.Icon())
}

func TestFocusForwardsReason(t *testing.T) {
	s := New()

	for _, reason := range []core.FocusReason{
		core.FocusPointer, core.FocusKeyboard, core.FocusProgrammatic,
	} {
		s.Focus(reason)
		assert.Equal(t, reason, s.box.LastFocusReason())
		assert.True(t, s.box.IsFocused(), reason.String())
	}

	s.Focus(core.FocusUnfocused)
	assert.Equal(t, core.FocusUnfocused, s.box.LastFocusReason())
	assert.False(t, s.box.IsFocused())
}

func TestCloseRaisesOncePerCall(t *testing.T) {
	s := New()
	calls := 0
	cancel := s.OnCloseRequested(func() { calls++ })

	s.Close()
	assert.Equal(t, 1, calls)
	s.Close()
	assert.Equal(t, 2, calls)

	cancel()
	s.Close()
	assert.Equal(t, 2, calls)
}

func TestCloseNotifiesSubscribersInOrder(t *testing.T) {
	s := New()
	var order []string
	s.OnCloseRequested(func() { order = append(order, "a") })
	s.OnCloseRequested(func() { order = append(order, "b") })

	s.Close()
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestCloseWithoutSubscribersIsHarmless(t *testing.T) {
	s := New()
	assert.NotPanics(t, s.Close)
}

func TestUpdateSettingsHasNoEffect(t *testing.T) {
	s := New()
	s.box.SetText("keep")

	s.UpdateSettings(nil)
	s.UpdateSettings(&config.Settings{DefaultApp: "scratchpad", Panes: 3})
	s.UpdateSettings(&config.Settings{})

	assert.Equal(t, "keep", s.box.Text())
	assert.Equal(t, "Scratchpad", s.Title())
}

func TestBuiltInRegistration(t *testing.T) {
	reg := registry.New()
	registry.RegisterBuiltIns(reg)

	entry := reg.Get("scratchpad")
	require.NotNil(t, entry)
	assert.Equal(t, Glyph, entry.Manifest.Icon)
	assert.Equal(t, "utility", entry.Manifest.Category)

	content, err := reg.CreateApp("scratchpad")
	require.NoError(t, err)
	assert.IsType(t, &Scratchpad{}, content)
}
