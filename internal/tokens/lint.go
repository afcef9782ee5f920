package tokens

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Lint reports findings that do not make the record unusable. Currently:
// within a palette, each darker shade number must be perceptually darker
// (lower CIE L*) than the one before it.
func Lint(cfg *Config) []Issue {
	if cfg == nil {
		return nil
	}

	var issues []Issue
	colors := cfg.Theme.Extend.Colors
	for _, name := range SortedKeys(colors) {
		palette := colors[name]
		prevShade := ""
		prevL := 0.0
		for _, shade := range ShadeKeys {
			hex, ok := palette[shade]
			if !ok || !IsHexColor(hex) {
				continue
			}
			l, err := Lightness(hex)
			if err != nil {
				continue
			}
			if prevShade != "" && l >= prevL {
				issues = append(issues, Issue{
					Path:     extendPath(CategoryColors, name, shade),
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("%s (L*=%.1f) is not darker than shade %s (L*=%.1f)", hex, l*100, prevShade, prevL*100),
				})
			}
			prevShade, prevL = shade, l
		}
	}
	return issues
}

// Lightness returns the CIE L* of a hex color in [0, 1].
func Lightness(hex string) (float64, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", hex, err)
	}
	l, _, _ := c.Lab()
	return l, nil
}
