package tokens

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var (
	// ErrInvalidColor is returned for a palette value that is not #rrggbb.
	ErrInvalidColor = errors.New("invalid hex color")
	// ErrShadeKeys is returned when a palette's shades differ from ShadeKeys.
	ErrShadeKeys = errors.New("palette shade keys mismatch")
	// ErrMissingKeyframes is returned when an animation names undeclared keyframes.
	ErrMissingKeyframes = errors.New("animation references missing keyframes")
	// ErrInvalidLength is returned for a value that is not a CSS length.
	ErrInvalidLength = errors.New("invalid length")
	// ErrInvalidStop is returned for a keyframe stop that is not from/to/N%.
	ErrInvalidStop = errors.New("invalid keyframe stop")
	// ErrInvalidShadow is returned for a malformed box-shadow value.
	ErrInvalidShadow = errors.New("invalid box shadow")
	// ErrInvalidFontStack is returned for a font stack without a generic fallback.
	ErrInvalidFontStack = errors.New("invalid font stack")
	// ErrInvalidBackground is returned for a background image that is not a gradient or url().
	ErrInvalidBackground = errors.New("invalid background image")
	// ErrInvalidContent is returned for an empty or malformed content glob.
	ErrInvalidContent = errors.New("invalid content pattern")
)

// Severity grades an Issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single finding against a path in the record.
type Issue struct {
	Path     string   `json:"path"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Err      error    `json:"-"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// ValidationError collects every error-severity issue found by Validate.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return e.Issues[0].String()
	}
	lines := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		lines = append(lines, "  "+issue.String())
	}
	return fmt.Sprintf("theme has %d problems:\n%s", len(e.Issues), strings.Join(lines, "\n"))
}

// Unwrap exposes the sentinel errors so errors.Is works on the aggregate.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Err != nil {
			errs = append(errs, issue.Err)
		}
	}
	return errs
}

type checker struct {
	issues []Issue
}

func (c *checker) fail(err error, path string, format string, args ...any) {
	c.issues = append(c.issues, Issue{
		Path:     path,
		Severity: SeverityError,
		Message:  fmt.Sprintf(format, args...),
		Err:      err,
	})
}

// Validate checks every structural invariant of the record and returns a
// *ValidationError listing all violations, or nil.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}

	c := &checker{}
	c.content(cfg.Content)

	ext := cfg.Theme.Extend
	c.colors(ext.Colors)
	c.fontFamily(ext.FontFamily)
	c.fontSize(ext.FontSize)
	c.boxShadow(ext.BoxShadow)
	c.backgroundImage(ext.BackgroundImage)
	c.keyframes(ext.Keyframes)
	c.animation(ext.Animation, ext.Keyframes)
	c.lengths(CategorySpacing, ext.Spacing)
	c.lengths(CategoryBorderRadius, ext.BorderRadius)

	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

func extendPath(parts ...string) string {
	return "theme.extend." + strings.Join(parts, ".")
}

func (c *checker) content(patterns []string) {
	for i, pattern := range patterns {
		path := fmt.Sprintf("content[%d]", i)
		trimmed := strings.TrimPrefix(strings.TrimSpace(pattern), "!")
		if trimmed == "" {
			c.fail(ErrInvalidContent, path, "pattern is empty")
			continue
		}
		if !doublestar.ValidatePattern(strings.TrimPrefix(trimmed, "./")) {
			c.fail(ErrInvalidContent, path, "malformed glob %q", pattern)
		}
	}
}

func (c *checker) colors(colors map[string]Palette) {
	for _, name := range SortedKeys(colors) {
		palette := colors[name]
		expected := make(map[string]bool, len(ShadeKeys))
		for _, shade := range ShadeKeys {
			expected[shade] = true
			if _, ok := palette[shade]; !ok {
				c.fail(ErrShadeKeys, extendPath(CategoryColors, name), "missing shade %s", shade)
			}
		}
		for _, shade := range SortedKeys(palette) {
			path := extendPath(CategoryColors, name, shade)
			if !expected[shade] {
				c.fail(ErrShadeKeys, path, "unexpected shade key")
				continue
			}
			if !IsHexColor(palette[shade]) {
				c.fail(ErrInvalidColor, path, "%q is not a #rrggbb color", palette[shade])
			}
		}
	}
}

func (c *checker) fontFamily(families map[string][]string) {
	for _, alias := range SortedKeys(families) {
		stack := families[alias]
		path := extendPath(CategoryFontFamily, alias)
		if len(stack) == 0 {
			c.fail(ErrInvalidFontStack, path, "font stack is empty")
			continue
		}
		for i, name := range stack {
			if strings.TrimSpace(name) == "" {
				c.fail(ErrInvalidFontStack, fmt.Sprintf("%s[%d]", path, i), "font name is empty")
			}
		}
		if last := stack[len(stack)-1]; !IsGenericFamily(last) {
			c.fail(ErrInvalidFontStack, path, "stack must end in a generic family, ends in %q", last)
		}
	}
}

func (c *checker) fontSize(sizes map[string]FontSize) {
	for _, key := range SortedKeys(sizes) {
		size := sizes[key]
		path := extendPath(CategoryFontSize, key)
		if !IsLength(size.Size) {
			c.fail(ErrInvalidLength, path, "size %q is not a length", size.Size)
		}
		switch {
		case size.LineHeight == "":
			c.fail(ErrInvalidLength, path+".lineHeight", "line height is required")
		case !IsLineHeight(size.LineHeight):
			c.fail(ErrInvalidLength, path+".lineHeight", "%q is not a length or number", size.LineHeight)
		}
		if size.LetterSpacing != "" && !IsLength(size.LetterSpacing) {
			c.fail(ErrInvalidLength, path+".letterSpacing", "%q is not a length", size.LetterSpacing)
		}
	}
}

func (c *checker) boxShadow(shadows map[string]string) {
	for _, name := range SortedKeys(shadows) {
		if _, err := ParseShadow(shadows[name]); err != nil {
			c.fail(ErrInvalidShadow, extendPath(CategoryBoxShadow, name), "%s", strings.TrimPrefix(err.Error(), ErrInvalidShadow.Error()+": "))
		}
	}
}

func (c *checker) backgroundImage(images map[string]string) {
	for _, name := range SortedKeys(images) {
		if !IsBackgroundImage(images[name]) {
			c.fail(ErrInvalidBackground, extendPath(CategoryBackgroundImage, name), "%q is not a gradient or url()", images[name])
		}
	}
}

func (c *checker) keyframes(keyframes map[string]Keyframes) {
	for _, name := range SortedKeys(keyframes) {
		kf := keyframes[name]
		path := extendPath(CategoryKeyframes, name)
		if len(kf) == 0 {
			c.fail(ErrInvalidStop, path, "keyframes declare no stops")
			continue
		}
		for _, stop := range SortedStops(kf) {
			if _, err := ParseStops(stop); err != nil {
				c.fail(ErrInvalidStop, path+"."+stop, "stop must be from, to or a percentage in 0%%-100%%")
			}
		}
	}
}

// animation checks references against the record's keyframes and the
// toolchain's base keyframes, since the record is merged into those.
func (c *checker) animation(animations map[string]string, keyframes map[string]Keyframes) {
	base := BaseKeyframes()
	for _, name := range SortedKeys(animations) {
		path := extendPath(CategoryAnimation, name)
		ref := AnimationKeyframes(animations[name])
		if ref == "" {
			c.fail(ErrMissingKeyframes, path, "animation is empty")
			continue
		}
		if ref == "none" {
			continue
		}
		if _, ok := keyframes[ref]; ok {
			continue
		}
		if _, ok := base[ref]; ok {
			continue
		}
		c.fail(ErrMissingKeyframes, path, "keyframes %q are not declared", ref)
	}
}

func (c *checker) lengths(category string, values map[string]string) {
	for _, key := range SortedKeys(values) {
		if !IsLength(values[key]) {
			c.fail(ErrInvalidLength, extendPath(category, key), "%q is not a length", values[key])
		}
	}
}
