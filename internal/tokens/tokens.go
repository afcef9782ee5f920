// Package tokens declares the design-token record consumed by the utility-CSS
// toolchain and the operations that check and merge it.
package tokens

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the exported configuration value handed to the toolchain.
type Config struct {
	Content []string `json:"content" yaml:"content"`
	Theme   Theme    `json:"theme" yaml:"theme"`
	Plugins []string `json:"plugins" yaml:"plugins"`
}

// Theme wraps the extension record. Only extend is supported: entries are
// merged into the toolchain defaults, never replacing them wholesale.
type Theme struct {
	Extend Extension `json:"extend" yaml:"extend"`
}

// Extension is the theme extension record, keyed by token category.
type Extension struct {
	Colors          map[string]Palette   `json:"colors,omitempty" yaml:"colors,omitempty"`
	FontFamily      map[string][]string  `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty"`
	FontSize        map[string]FontSize  `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	BoxShadow       map[string]string    `json:"boxShadow,omitempty" yaml:"boxShadow,omitempty"`
	BackgroundImage map[string]string    `json:"backgroundImage,omitempty" yaml:"backgroundImage,omitempty"`
	Animation       map[string]string    `json:"animation,omitempty" yaml:"animation,omitempty"`
	Keyframes       map[string]Keyframes `json:"keyframes,omitempty" yaml:"keyframes,omitempty"`
	Spacing         map[string]string    `json:"spacing,omitempty" yaml:"spacing,omitempty"`
	BorderRadius    map[string]string    `json:"borderRadius,omitempty" yaml:"borderRadius,omitempty"`
}

// Palette maps a shade key ("50" … "950") to a hex color.
type Palette map[string]string

// Keyframes maps a stop ("0%", "0%, 100%", "from") to its declarations.
type Keyframes map[string]map[string]string

// Category names, in the order the record declares them.
const (
	CategoryColors          = "colors"
	CategoryFontFamily      = "fontFamily"
	CategoryFontSize        = "fontSize"
	CategoryBoxShadow       = "boxShadow"
	CategoryBackgroundImage = "backgroundImage"
	CategoryAnimation       = "animation"
	CategoryKeyframes       = "keyframes"
	CategorySpacing         = "spacing"
	CategoryBorderRadius    = "borderRadius"
)

// Categories lists every category of the extension record.
var Categories = []string{
	CategoryColors,
	CategoryFontFamily,
	CategoryFontSize,
	CategoryBoxShadow,
	CategoryBackgroundImage,
	CategoryAnimation,
	CategoryKeyframes,
	CategorySpacing,
	CategoryBorderRadius,
}

// FontSize is a base size plus its options. On the wire it is the toolchain
// tuple ["1rem", {"lineHeight": "1.5rem"}].
type FontSize struct {
	Size          string
	LineHeight    string
	LetterSpacing string
	FontWeight    string
}

type fontSizeOptions struct {
	LineHeight    string `json:"lineHeight,omitempty" yaml:"lineHeight,omitempty"`
	LetterSpacing string `json:"letterSpacing,omitempty" yaml:"letterSpacing,omitempty"`
	FontWeight    string `json:"fontWeight,omitempty" yaml:"fontWeight,omitempty"`
}

func (f FontSize) options() fontSizeOptions {
	return fontSizeOptions{
		LineHeight:    f.LineHeight,
		LetterSpacing: f.LetterSpacing,
		FontWeight:    f.FontWeight,
	}
}

func (f *FontSize) setOptions(opts fontSizeOptions) {
	f.LineHeight = opts.LineHeight
	f.LetterSpacing = opts.LetterSpacing
	f.FontWeight = opts.FontWeight
}

// Options returns the non-empty options keyed by their toolchain names.
func (f FontSize) Options() map[string]string {
	opts := make(map[string]string, 3)
	if f.LineHeight != "" {
		opts["lineHeight"] = f.LineHeight
	}
	if f.LetterSpacing != "" {
		opts["letterSpacing"] = f.LetterSpacing
	}
	if f.FontWeight != "" {
		opts["fontWeight"] = f.FontWeight
	}
	return opts
}

// MarshalJSON encodes the tuple form.
func (f FontSize) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{f.Size, f.options()})
}

// UnmarshalJSON accepts the tuple form or a bare size string.
func (f *FontSize) UnmarshalJSON(data []byte) error {
	var size string
	if err := json.Unmarshal(data, &size); err == nil {
		*f = FontSize{Size: size}
		return nil
	}

	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("font size must be a string or [size, options]: %w", err)
	}
	if len(tuple) == 0 || len(tuple) > 2 {
		return fmt.Errorf("font size tuple must have 1 or 2 elements, got %d", len(tuple))
	}

	var out FontSize
	if err := json.Unmarshal(tuple[0], &out.Size); err != nil {
		return fmt.Errorf("font size base: %w", err)
	}
	if len(tuple) == 2 {
		// A bare line-height string is shorthand for {lineHeight: ...}.
		var lineHeight string
		if err := json.Unmarshal(tuple[1], &lineHeight); err == nil {
			out.LineHeight = lineHeight
		} else {
			var opts fontSizeOptions
			if err := json.Unmarshal(tuple[1], &opts); err != nil {
				return fmt.Errorf("font size options: %w", err)
			}
			out.setOptions(opts)
		}
	}
	*f = out
	return nil
}

// MarshalYAML encodes the tuple form.
func (f FontSize) MarshalYAML() (any, error) {
	return []any{f.Size, f.options()}, nil
}

// UnmarshalYAML accepts the tuple form or a bare size scalar.
func (f *FontSize) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*f = FontSize{Size: strings.TrimSpace(node.Value)}
		return nil
	case yaml.SequenceNode:
		if len(node.Content) == 0 || len(node.Content) > 2 {
			return fmt.Errorf("line %d: font size tuple must have 1 or 2 elements", node.Line)
		}
		var out FontSize
		if err := node.Content[0].Decode(&out.Size); err != nil {
			return fmt.Errorf("line %d: font size base: %w", node.Line, err)
		}
		if len(node.Content) == 2 {
			opt := node.Content[1]
			if opt.Kind == yaml.ScalarNode {
				out.LineHeight = opt.Value
			} else {
				var opts fontSizeOptions
				if err := opt.Decode(&opts); err != nil {
					return fmt.Errorf("line %d: font size options: %w", opt.Line, err)
				}
				out.setOptions(opts)
			}
		}
		*f = out
		return nil
	default:
		return fmt.Errorf("line %d: font size must be a scalar or sequence", node.Line)
	}
}

// Count returns the number of entries in a category, or -1 for an unknown one.
func (e Extension) Count(category string) int {
	switch category {
	case CategoryColors:
		return len(e.Colors)
	case CategoryFontFamily:
		return len(e.FontFamily)
	case CategoryFontSize:
		return len(e.FontSize)
	case CategoryBoxShadow:
		return len(e.BoxShadow)
	case CategoryBackgroundImage:
		return len(e.BackgroundImage)
	case CategoryAnimation:
		return len(e.Animation)
	case CategoryKeyframes:
		return len(e.Keyframes)
	case CategorySpacing:
		return len(e.Spacing)
	case CategoryBorderRadius:
		return len(e.BorderRadius)
	default:
		return -1
	}
}

// StringMap returns the flat string-valued category with the given name, if
// the category is one of the simple name → value maps.
func (e Extension) StringMap(category string) (map[string]string, bool) {
	switch category {
	case CategoryBoxShadow:
		return e.BoxShadow, true
	case CategoryBackgroundImage:
		return e.BackgroundImage, true
	case CategoryAnimation:
		return e.Animation, true
	case CategorySpacing:
		return e.Spacing, true
	case CategoryBorderRadius:
		return e.BorderRadius, true
	default:
		return nil, false
	}
}

// AnimationKeyframes returns the keyframes name an animation shorthand
// references: its first token.
func AnimationKeyframes(shorthand string) string {
	fields := strings.Fields(shorthand)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
