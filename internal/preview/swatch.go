package preview

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/inkblue/themeconf/internal/tokens"
)

const (
	inkDark  = "#000000"
	inkLight = "#ffffff"

	swatchWidth = 9
	// barMax caps the spacing bars, in cells.
	barMax = 40
)

// Luminance returns the WCAG relative luminance of a hex color.
func Luminance(hex string) (float64, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b, nil
}

// Contrast returns the WCAG contrast ratio between two hex colors.
func Contrast(a, b string) (float64, error) {
	la, err := Luminance(a)
	if err != nil {
		return 0, err
	}
	lb, err := Luminance(b)
	if err != nil {
		return 0, err
	}
	hi, lo := math.Max(la, lb), math.Min(la, lb)
	return (hi + 0.05) / (lo + 0.05), nil
}

// Ink picks black or white text for a swatch, whichever contrasts more.
func Ink(hex string) string {
	onDark, err := Contrast(hex, inkLight)
	if err != nil {
		return inkLight
	}
	onLight, _ := Contrast(hex, inkDark)
	if onLight >= onDark {
		return inkDark
	}
	return inkLight
}

// RenderPalette draws one swatch per shade with its key and hex value.
func RenderPalette(name string, palette tokens.Palette) string {
	lines := []string{lipgloss.NewStyle().Bold(true).Render(name)}
	for _, shade := range tokens.SortedKeys(palette) {
		lines = append(lines, swatchLine(shade, palette[shade], false))
	}
	return strings.Join(lines, "\n")
}

func swatchLine(shade, hex string, selected bool) string {
	marker := "  "
	if selected {
		marker = "> "
	}
	if !tokens.IsHexColor(hex) {
		return fmt.Sprintf("%s%-*s %s (invalid)", marker, swatchWidth, shade, hex)
	}
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(Ink(hex))).
		Width(swatchWidth).
		Render(shade)
	return fmt.Sprintf("%s%s %s", marker, block, hex)
}

// RenderScale lists font sizes, spacing and radii with a bar for each length.
func RenderScale(cfg *tokens.Config) string {
	if cfg == nil {
		return ""
	}
	ext := cfg.Theme.Extend
	heading := lipgloss.NewStyle().Bold(true)
	var sections []string

	if len(ext.FontSize) > 0 {
		lines := []string{heading.Render("Font sizes")}
		for _, key := range tokens.SortedKeys(ext.FontSize) {
			size := ext.FontSize[key]
			lines = append(lines, fmt.Sprintf("  %-6s %-9s / %-8s %s", key, size.Size, size.LineHeight, bar(size.Size)))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	if len(ext.Spacing) > 0 {
		lines := []string{heading.Render("Spacing")}
		for _, key := range tokens.SortedKeys(ext.Spacing) {
			lines = append(lines, fmt.Sprintf("  %-6s %-9s %s", key, ext.Spacing[key], bar(ext.Spacing[key])))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	if len(ext.BorderRadius) > 0 {
		lines := []string{heading.Render("Border radius")}
		for _, key := range tokens.SortedKeys(ext.BorderRadius) {
			lines = append(lines, fmt.Sprintf("  %-6s %-9s %s", key, ext.BorderRadius[key], bar(ext.BorderRadius[key])))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	return strings.Join(sections, "\n\n")
}

// bar draws a length as a row of cells, one per quarter rem.
func bar(length string) string {
	rem, ok := remValue(length)
	if !ok {
		return ""
	}
	// Negative lengths draw their magnitude.
	cells := int(math.Round(math.Abs(rem) * 4))
	if cells > barMax {
		return strings.Repeat("▇", barMax) + "…"
	}
	return strings.Repeat("▇", cells)
}

// remValue converts rem, em and px lengths to rem at a 16px root.
func remValue(length string) (float64, bool) {
	length = strings.TrimSpace(length)
	for _, unit := range []struct {
		suffix string
		scale  float64
	}{
		{"rem", 1},
		{"em", 1},
		{"px", 1.0 / 16},
	} {
		if !strings.HasSuffix(length, unit.suffix) {
			continue
		}
		n, err := strconv.ParseFloat(strings.TrimSuffix(length, unit.suffix), 64)
		if err != nil {
			return 0, false
		}
		return n * unit.scale, true
	}
	if length == "0" {
		return 0, true
	}
	return 0, false
}
