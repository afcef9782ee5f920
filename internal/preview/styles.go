// Package preview renders a theme record in the terminal.
package preview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/inkblue/themeconf/internal/tokens"
)

// Roles defines the semantic color roles the preview chrome is drawn with.
type Roles struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Focus      string
	Success    string
	Warning    string
	Error      string
}

// fallbackRoles is used for any role whose palette the record does not declare.
var fallbackRoles = Roles{
	Background: "#0B0F14",
	Panel:      "#121821",
	Text:       "#E6EDF3",
	TextMuted:  "#8B9AAE",
	Border:     "#223043",
	Accent:     "#5B8DEF",
	Focus:      "#7AA2F7",
	Success:    "#3FB950",
	Warning:    "#D29922",
	Error:      "#F85149",
}

// RolesFor maps the record's neutral and brand palettes onto chrome roles
// for a dark terminal.
func RolesFor(cfg *tokens.Config) Roles {
	roles := fallbackRoles
	if cfg == nil {
		return roles
	}
	colors := cfg.Theme.Extend.Colors

	pick := func(dst *string, palette, shade string) {
		if hex, ok := colors[palette][shade]; ok && tokens.IsHexColor(hex) {
			*dst = hex
		}
	}
	pick(&roles.Background, "slate", "950")
	pick(&roles.Panel, "slate", "900")
	pick(&roles.Text, "slate", "50")
	pick(&roles.TextMuted, "slate", "400")
	pick(&roles.Border, "slate", "700")
	pick(&roles.Accent, "primary", "300")
	pick(&roles.Focus, "primary", "200")
	return roles
}

// Styles contains lipgloss styles derived from the record.
type Styles struct {
	Roles   Roles
	Title   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Panel   lipgloss.Style
	Border  lipgloss.Style
	Focus   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// BuildStyles converts the record's palettes into lipgloss styles.
func BuildStyles(cfg *tokens.Config) Styles {
	roles := RolesFor(cfg)

	return Styles{
		Roles:   roles,
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color(roles.Text)).Bold(true),
		Text:    lipgloss.NewStyle().Foreground(lipgloss.Color(roles.Text)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(roles.TextMuted)),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(roles.Accent)),
		Panel:   lipgloss.NewStyle().Foreground(lipgloss.Color(roles.Text)).Background(lipgloss.Color(roles.Panel)).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(roles.Border)).Padding(0, 1),
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color(roles.Border)),
		Focus:   lipgloss.NewStyle().Foreground(lipgloss.Color(roles.Focus)).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(roles.Success)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(roles.Warning)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(roles.Error)),
	}
}
