package preview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkblue/themeconf/internal/tokens"
)

const (
	minWidth  = 40
	minHeight = 16
)

// Run launches the interactive palette browser.
func Run(cfg *tokens.Config, start string) error {
	m, err := NewModel(cfg, start)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// Model is the bubbletea model of the palette browser.
type Model struct {
	width    int
	height   int
	styles   Styles
	palettes []string
	colors   map[string]tokens.Palette
	palette  int
	shade    int
}

// NewModel builds the browser for cfg, opening on the named palette when it
// is not empty.
func NewModel(cfg *tokens.Config, start string) (Model, error) {
	if cfg == nil || len(cfg.Theme.Extend.Colors) == 0 {
		return Model{}, fmt.Errorf("theme declares no color palettes")
	}
	m := Model{
		styles:   BuildStyles(cfg),
		palettes: tokens.SortedKeys(cfg.Theme.Extend.Colors),
		colors:   cfg.Theme.Extend.Colors,
	}
	if start != "" {
		found := false
		for i, name := range m.palettes {
			if name == start {
				m.palette = i
				found = true
				break
			}
		}
		if !found {
			return Model{}, fmt.Errorf("palette %q not found (have %s)", start, strings.Join(m.palettes, ", "))
		}
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "right", "l", "tab":
			m.palette = (m.palette + 1) % len(m.palettes)
			m.clampShade()
		case "left", "h", "shift+tab":
			m.palette = (m.palette + len(m.palettes) - 1) % len(m.palettes)
			m.clampShade()
		case "down", "j":
			if m.shade < len(m.shades())-1 {
				m.shade++
			}
		case "up", "k":
			if m.shade > 0 {
				m.shade--
			}
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// Palette returns the name of the palette on screen.
func (m Model) Palette() string {
	return m.palettes[m.palette]
}

// Shade returns the selected shade key and its hex value.
func (m Model) Shade() (string, string) {
	shades := m.shades()
	if len(shades) == 0 {
		return "", ""
	}
	key := shades[m.shade]
	return key, m.colors[m.Palette()][key]
}

func (m Model) shades() []string {
	return tokens.SortedKeys(m.colors[m.Palette()])
}

func (m *Model) clampShade() {
	if n := len(m.shades()); m.shade >= n {
		m.shade = max(n-1, 0)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width > 0 && m.height > 0 && (m.width < minWidth || m.height < minHeight) {
		return strings.Join([]string{
			m.styles.Warning.Render(fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)),
			m.styles.Muted.Render(fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)),
			m.styles.Muted.Render("Press q to quit."),
		}, "\n") + "\n"
	}

	lines := []string{m.tabs(), ""}
	name := m.Palette()
	for i, shade := range m.shades() {
		lines = append(lines, swatchLine(shade, m.colors[name][shade], i == m.shade))
	}

	key, hex := m.Shade()
	lines = append(lines, "", m.styles.Text.Render(m.detail(name, key, hex)))
	lines = append(lines, "", m.styles.Muted.Render("←/→ palette | ↑/↓ shade | q quit"))
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) tabs() string {
	parts := make([]string, 0, len(m.palettes))
	for i, name := range m.palettes {
		if i == m.palette {
			parts = append(parts, m.styles.Focus.Render("["+name+"]"))
			continue
		}
		parts = append(parts, m.styles.Muted.Render(" "+name+" "))
	}
	return strings.Join(parts, " ")
}

func (m Model) detail(name, key, hex string) string {
	if !tokens.IsHexColor(hex) {
		return fmt.Sprintf("%s-%s  %s", name, key, hex)
	}
	l, _ := tokens.Lightness(hex)
	onWhite, _ := Contrast(hex, inkLight)
	onBlack, _ := Contrast(hex, inkDark)
	return fmt.Sprintf("%s-%s  %s  L* %.1f  contrast %.2f:1 on white, %.2f:1 on black", name, key, hex, l*100, onWhite, onBlack)
}
