package tokens

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

var (
	hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	lengthRegex   = regexp.MustCompile(`^-?(?:\d+(?:\.\d+)?|\.\d+)(px|rem|em|%|vh|vw|vmin|vmax|ch|ex|pt|cm|mm|in)$`)
	numberRegex   = regexp.MustCompile(`^-?(?:\d+(?:\.\d+)?|\.\d+)$`)
	stopRegex     = regexp.MustCompile(`^(\d+(?:\.\d+)?)%$`)
	gradientRegex = regexp.MustCompile(`^(?:repeating-)?(?:linear|radial|conic)-gradient\(`)
)

// genericFamilies are the CSS generic font families a stack may fall back to.
var genericFamilies = map[string]bool{
	"serif":         true,
	"sans-serif":    true,
	"monospace":     true,
	"cursive":       true,
	"fantasy":       true,
	"system-ui":     true,
	"ui-serif":      true,
	"ui-sans-serif": true,
	"ui-monospace":  true,
	"ui-rounded":    true,
	"emoji":         true,
	"math":          true,
	"fangsong":      true,
}

// IsHexColor reports whether s is a six-digit #rrggbb color.
func IsHexColor(s string) bool {
	return hexColorRegex.MatchString(s)
}

// IsLength reports whether s is a CSS length with a unit, or zero.
func IsLength(s string) bool {
	s = strings.TrimSpace(s)
	if s == "0" {
		return true
	}
	return lengthRegex.MatchString(s)
}

// IsLineHeight reports whether s is a length or a unitless multiplier.
func IsLineHeight(s string) bool {
	s = strings.TrimSpace(s)
	return IsLength(s) || numberRegex.MatchString(s)
}

// IsGenericFamily reports whether name is a CSS generic font family.
func IsGenericFamily(name string) bool {
	return genericFamilies[strings.ToLower(strings.TrimSpace(name))]
}

// ParseStops parses a keyframe stop list such as "0%, 100%" or "from" into
// offsets in percent.
func ParseStops(stop string) ([]float64, error) {
	parts := strings.Split(stop, ",")
	offsets := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		switch part {
		case "from":
			offsets = append(offsets, 0)
			continue
		case "to":
			offsets = append(offsets, 100)
			continue
		}
		m := stopRegex.FindStringSubmatch(part)
		if m == nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStop, part)
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil || value > 100 {
			return nil, fmt.Errorf("%w: %q is outside 0%%-100%%", ErrInvalidStop, part)
		}
		offsets = append(offsets, value)
	}
	return offsets, nil
}

// ShadowLayer is one comma-separated layer of a box-shadow value.
type ShadowLayer struct {
	Inset   bool
	Lengths []string // offset-x, offset-y, blur, spread
	Color   string
}

// ParseShadow splits a layered box-shadow value and checks each layer has
// two to four lengths and at most one parseable color.
func ParseShadow(value string) ([]ShadowLayer, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("%w: empty value", ErrInvalidShadow)
	}
	if value == "none" {
		return nil, nil
	}

	layers := make([]ShadowLayer, 0, 2)
	for i, raw := range SplitTopLevel(value, ',') {
		layer, err := parseShadowLayer(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: layer %d: %v", ErrInvalidShadow, i+1, err)
		}
		layers = append(layers, layer)
	}
	return layers, nil
}

func parseShadowLayer(raw string) (ShadowLayer, error) {
	var layer ShadowLayer
	for _, field := range SplitTopLevel(strings.TrimSpace(raw), ' ') {
		field = strings.TrimSpace(field)
		switch {
		case field == "":
			continue
		case field == "inset":
			if layer.Inset {
				return layer, fmt.Errorf("inset given twice")
			}
			layer.Inset = true
		case IsLength(field):
			if layer.Color != "" {
				return layer, fmt.Errorf("length %q after color", field)
			}
			layer.Lengths = append(layer.Lengths, field)
		default:
			if layer.Color != "" {
				return layer, fmt.Errorf("unexpected token %q", field)
			}
			if _, err := csscolorparser.Parse(field); err != nil {
				return layer, fmt.Errorf("invalid color %q", field)
			}
			layer.Color = field
		}
	}
	if n := len(layer.Lengths); n < 2 || n > 4 {
		return layer, fmt.Errorf("expected 2 to 4 lengths, got %d", n)
	}
	return layer, nil
}

// IsBackgroundImage reports whether s is a gradient or url() with balanced
// parentheses.
func IsBackgroundImage(s string) bool {
	s = strings.TrimSpace(s)
	if !gradientRegex.MatchString(s) && !strings.HasPrefix(s, "url(") {
		return false
	}
	return balanced(s) && strings.HasSuffix(s, ")")
}

// SplitTopLevel splits s on sep, ignoring separators nested in parentheses.
func SplitTopLevel(s string, sep rune) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

func balanced(s string) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
