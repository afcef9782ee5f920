package preview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkblue/themeconf/internal/tokens"
)

func TestInk(t *testing.T) {
	assert.Equal(t, inkDark, Ink("#f0f4f8"))
	assert.Equal(t, inkDark, Ink("#9fb3c8"))
	assert.Equal(t, inkLight, Ink("#486581"))
	assert.Equal(t, inkLight, Ink("#061726"))
	assert.Equal(t, inkLight, Ink("not-a-color"))
}

func TestContrast(t *testing.T) {
	ratio, err := Contrast("#000000", "#ffffff")
	require.NoError(t, err)
	assert.InDelta(t, 21.0, ratio, 0.01)

	ratio, err = Contrast("#486581", "#486581")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ratio, 0.0001)

	_, err = Contrast("#zzzzzz", "#ffffff")
	assert.Error(t, err)
}

func TestRolesFor(t *testing.T) {
	roles := RolesFor(tokens.Default())
	assert.Equal(t, "#020617", roles.Background)
	assert.Equal(t, "#f8fafc", roles.Text)
	assert.Equal(t, "#9fb3c8", roles.Accent)
	assert.Equal(t, fallbackRoles.Success, roles.Success)

	assert.Equal(t, fallbackRoles, RolesFor(nil))
	assert.Equal(t, fallbackRoles, RolesFor(&tokens.Config{}))

	styles := BuildStyles(tokens.Default())
	assert.Equal(t, roles, styles.Roles)
}

func TestRenderPalette(t *testing.T) {
	out := RenderPalette("primary", tokens.Default().Theme.Extend.Colors["primary"])
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 1+len(tokens.ShadeKeys))

	assert.Contains(t, lines[0], "primary")
	assert.Contains(t, lines[1], "50")
	assert.Contains(t, lines[1], "#f0f4f8")
	assert.Contains(t, lines[7], "600")
	assert.Contains(t, lines[7], "#486581")
	assert.Contains(t, lines[11], "#061726")

	bad := RenderPalette("broken", tokens.Palette{"500": "blue"})
	assert.Contains(t, bad, "blue (invalid)")
}

func TestRenderScale(t *testing.T) {
	out := RenderScale(tokens.Default())

	assert.Contains(t, out, "Font sizes")
	assert.Contains(t, out, "Spacing")
	assert.Contains(t, out, "Border radius")
	assert.Contains(t, out, "5xl")
	assert.Contains(t, out, "32rem")
	assert.Less(t, strings.Index(out, "  xs "), strings.Index(out, "  9xl "))
	assert.Empty(t, RenderScale(nil))
}

func TestRenderScaleNegativeLength(t *testing.T) {
	cfg := tokens.Default()
	cfg.Theme.Extend.Spacing["neg"] = "-1rem"
	require.NoError(t, tokens.Validate(cfg))

	var out string
	require.NotPanics(t, func() { out = RenderScale(cfg) })
	assert.Contains(t, out, "-1rem")
}

func TestBar(t *testing.T) {
	assert.Equal(t, "▇▇▇▇", bar("1rem"))
	assert.Equal(t, "▇▇", bar("8px"))
	assert.Equal(t, "", bar("0"))
	assert.Equal(t, "", bar("50%"))
	assert.Equal(t, "▇▇▇▇", bar("-1rem"))
	assert.Equal(t, "▇", bar("-0.25rem"))
	assert.True(t, strings.HasSuffix(bar("9999px"), "…"))
}

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func TestModelNavigation(t *testing.T) {
	m, err := NewModel(tokens.Default(), "")
	require.NoError(t, err)

	assert.Equal(t, "primary", m.Palette())
	shade, hex := m.Shade()
	assert.Equal(t, "50", shade)
	assert.Equal(t, "#f0f4f8", hex)

	m = press(t, m, "down", "j", "j", "j", "j", "j")
	shade, hex = m.Shade()
	assert.Equal(t, "600", shade)
	assert.Equal(t, "#486581", hex)

	m = press(t, m, "right")
	assert.Equal(t, "secondary", m.Palette())
	_, hex = m.Shade()
	assert.Equal(t, "#2d3748", hex)

	m = press(t, m, "l", "l")
	assert.Equal(t, "primary", m.Palette())

	m = press(t, m, "h")
	assert.Equal(t, "slate", m.Palette())

	m = press(t, m, "up", "k", "k", "k", "k", "k", "k", "k")
	shade, _ = m.Shade()
	assert.Equal(t, "50", shade)

	for range 20 {
		m = press(t, m, "down")
	}
	shade, _ = m.Shade()
	assert.Equal(t, "950", shade)
}

func TestModelQuit(t *testing.T) {
	m, err := NewModel(tokens.Default(), "slate")
	require.NoError(t, err)
	assert.Equal(t, "slate", m.Palette())

	for _, k := range []string{"q", "esc"} {
		_, cmd := m.Update(key(k))
		require.NotNil(t, cmd, k)
		assert.Equal(t, tea.Quit(), cmd(), k)
	}
}

func TestModelView(t *testing.T) {
	m, err := NewModel(tokens.Default(), "primary")
	require.NoError(t, err)
	m = press(t, m, "j")

	view := m.View()
	assert.Contains(t, view, "[primary]")
	assert.Contains(t, view, "secondary")
	assert.Contains(t, view, "> ")
	assert.Contains(t, view, "primary-100  #d9e2ec")
	assert.Contains(t, view, "q quit")

	next, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	assert.Contains(t, next.View(), "Terminal too small (20x5).")
}

func TestNewModelErrors(t *testing.T) {
	_, err := NewModel(&tokens.Config{}, "")
	assert.Error(t, err)

	_, err = NewModel(tokens.Default(), "brand")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "primary, secondary, slate")
}
