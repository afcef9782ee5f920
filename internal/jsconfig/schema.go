package jsconfig

import (
	"fmt"
	"sort"
	"strings"

	"github.com/inkblue/themeconf/internal/tokens"
)

var fontSizeOptions = map[string]bool{
	"lineHeight":    true,
	"letterSpacing": true,
	"fontWeight":    true,
}

// checkKeys fails on the first key, in source order, that the record cannot
// hold: anything besides content/theme/plugins, theme keys other than extend,
// unknown extend categories and unknown font size options.
func (ev *evaluator) checkKeys(value map[string]any) error {
	var paths []string
	for key, item := range value {
		switch key {
		case "content", "plugins":
		case "theme":
			paths = append(paths, themeKeys(item)...)
		default:
			paths = append(paths, key)
		}
	}
	if len(paths) == 0 {
		return nil
	}

	sort.Slice(paths, func(i, j int) bool {
		a, b := ev.keys[paths[i]], ev.keys[paths[j]]
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return paths[i] < paths[j]
	})

	msg := "not part of the theme record"
	if len(paths) > 1 {
		msg += fmt.Sprintf(" (also unsupported: %s)", strings.Join(paths[1:], ", "))
	}
	return &ParseError{
		Line:    int(ev.keys[paths[0]].Row) + 1,
		Path:    paths[0],
		Message: msg,
	}
}

func themeKeys(value any) []string {
	theme, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	var paths []string
	for key, item := range theme {
		if key != "extend" {
			paths = append(paths, "theme."+key)
			continue
		}
		extend, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for category, entries := range extend {
			if (tokens.Extension{}).Count(category) < 0 {
				paths = append(paths, "theme.extend."+category)
				continue
			}
			if category == tokens.CategoryFontSize {
				paths = append(paths, fontSizeKeys(entries)...)
			}
		}
	}
	return paths
}

func fontSizeKeys(value any) []string {
	sizes, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	var paths []string
	for name, size := range sizes {
		tuple, ok := size.([]any)
		if !ok || len(tuple) < 2 {
			continue
		}
		opts, ok := tuple[1].(map[string]any)
		if !ok {
			continue
		}
		for opt := range opts {
			if !fontSizeOptions[opt] {
				paths = append(paths, fmt.Sprintf("theme.extend.fontSize.%s[1].%s", name, opt))
			}
		}
	}
	return paths
}
