package render

import (
	"regexp"
	"strings"

	"github.com/inkblue/themeconf/internal/tokens"
)

const jsHeader = "/** @type {import('tailwindcss').Config} */"

// inlineWidth is the column past which arrays are written one item per line.
const inlineWidth = 80

var (
	identPattern   = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	integerPattern = regexp.MustCompile(`^(0|[1-9][0-9]*)$`)
)

func renderJS(cfg *tokens.Config) []byte {
	w := &indentWriter{}
	w.line("%s", jsHeader)
	w.open("export default {")

	w.jsArray("content", cfg.Content)

	ext := cfg.Theme.Extend
	w.open("theme: {")
	w.open("extend: {")
	for _, category := range tokens.Categories {
		if ext.Count(category) == 0 {
			continue
		}
		w.open("%s: {", jsKey(category))
		switch category {
		case tokens.CategoryColors:
			for _, name := range tokens.SortedKeys(ext.Colors) {
				palette := ext.Colors[name]
				w.open("%s: {", jsKey(name))
				for _, shade := range tokens.SortedKeys(palette) {
					w.line("%s: %s,", jsKey(shade), jsString(palette[shade]))
				}
				w.close("},")
			}
		case tokens.CategoryFontFamily:
			for _, alias := range tokens.SortedKeys(ext.FontFamily) {
				w.jsArray(alias, ext.FontFamily[alias])
			}
		case tokens.CategoryFontSize:
			for _, key := range tokens.SortedKeys(ext.FontSize) {
				w.line("%s: %s,", jsKey(key), jsFontSize(ext.FontSize[key]))
			}
		case tokens.CategoryKeyframes:
			for _, name := range tokens.SortedKeys(ext.Keyframes) {
				kf := ext.Keyframes[name]
				w.open("%s: {", jsKey(name))
				for _, stop := range tokens.SortedStops(kf) {
					w.line("%s: %s,", jsKey(stop), jsObject(kf[stop], nil))
				}
				w.close("},")
			}
		default:
			values, _ := ext.StringMap(category)
			for _, key := range tokens.SortedKeys(values) {
				w.line("%s: %s,", jsKey(key), jsString(values[key]))
			}
		}
		w.close("},")
	}
	w.close("},")
	w.close("},")

	// Plugin entries are JavaScript expressions and are written as is.
	w.line("plugins: [%s],", strings.Join(cfg.Plugins, ", "))

	w.close("}")
	return w.buf.Bytes()
}

func (w *indentWriter) jsArray(key string, items []string) {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, jsString(item))
	}
	inline := jsKey(key) + ": [" + strings.Join(parts, ", ") + "],"
	if len(inline)+2*w.indent <= inlineWidth {
		w.line("%s", inline)
		return
	}
	w.open("%s: [", jsKey(key))
	for _, part := range parts {
		w.line("%s,", part)
	}
	w.close("],")
}

func jsFontSize(size tokens.FontSize) string {
	opts := size.Options()
	if len(opts) == 0 {
		return jsString(size.Size)
	}
	return "[" + jsString(size.Size) + ", " + jsObject(opts, []string{"lineHeight", "letterSpacing", "fontWeight"}) + "]"
}

// jsObject writes a flat string map on one line, keys in the given order and
// the rest lexically.
func jsObject(m map[string]string, order []string) string {
	keys := make([]string, 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, key := range order {
		if _, ok := m[key]; ok {
			keys = append(keys, key)
			seen[key] = true
		}
	}
	for _, key := range tokens.SortedKeys(m) {
		if !seen[key] {
			keys = append(keys, key)
		}
	}

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, jsKey(key)+": "+jsString(m[key]))
	}
	if len(parts) == 0 {
		return "{}"
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func jsKey(key string) string {
	if identPattern.MatchString(key) || integerPattern.MatchString(key) {
		return key
	}
	return jsString(key)
}

func jsString(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
