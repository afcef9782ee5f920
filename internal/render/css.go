package render

import (
	"regexp"
	"strings"

	"github.com/inkblue/themeconf/internal/tokens"
)

var cssIdentPattern = regexp.MustCompile(`^-?[A-Za-z_][A-Za-z0-9_-]*$`)

// renderCSS writes the record as custom properties on :root followed by its
// @keyframes blocks. Base keyframes referenced by an animation but not
// declared in the record are written too, so the stylesheet stands alone.
func renderCSS(cfg *tokens.Config) []byte {
	ext := cfg.Theme.Extend
	w := &indentWriter{}

	w.open(":root {")
	for _, name := range tokens.SortedKeys(ext.Colors) {
		palette := ext.Colors[name]
		for _, shade := range tokens.SortedKeys(palette) {
			w.line("--color-%s-%s: %s;", cssName(name), cssName(shade), palette[shade])
		}
	}
	for _, alias := range tokens.SortedKeys(ext.FontFamily) {
		w.line("--font-%s: %s;", cssName(alias), cssFontStack(ext.FontFamily[alias]))
	}
	for _, key := range tokens.SortedKeys(ext.FontSize) {
		size := ext.FontSize[key]
		name := cssName(key)
		w.line("--text-%s: %s;", name, size.Size)
		if size.LineHeight != "" {
			w.line("--text-%s--line-height: %s;", name, size.LineHeight)
		}
		if size.LetterSpacing != "" {
			w.line("--text-%s--letter-spacing: %s;", name, size.LetterSpacing)
		}
		if size.FontWeight != "" {
			w.line("--text-%s--font-weight: %s;", name, size.FontWeight)
		}
	}
	w.properties("shadow", ext.BoxShadow)
	w.properties("background-image", ext.BackgroundImage)
	w.properties("spacing", ext.Spacing)
	w.properties("radius", ext.BorderRadius)
	w.properties("animate", ext.Animation)
	w.close("}")

	keyframes := make(map[string]tokens.Keyframes, len(ext.Keyframes))
	for name, kf := range ext.Keyframes {
		keyframes[name] = kf
	}
	base := tokens.BaseKeyframes()
	for _, shorthand := range ext.Animation {
		ref := tokens.AnimationKeyframes(shorthand)
		if _, ok := keyframes[ref]; ok {
			continue
		}
		if kf, ok := base[ref]; ok {
			keyframes[ref] = kf
		}
	}

	for _, name := range tokens.SortedKeys(keyframes) {
		kf := keyframes[name]
		w.line("")
		w.open("@keyframes %s {", name)
		for _, stop := range tokens.SortedStops(kf) {
			w.open("%s {", stop)
			decls := kf[stop]
			for _, prop := range tokens.SortedKeys(decls) {
				w.line("%s: %s;", tokens.KebabCase(prop), decls[prop])
			}
			w.close("}")
		}
		w.close("}")
	}

	return w.buf.Bytes()
}

// properties writes one custom property per entry. The DEFAULT key maps to
// the bare prefix.
func (w *indentWriter) properties(prefix string, values map[string]string) {
	for _, key := range tokens.SortedKeys(values) {
		if key == "DEFAULT" {
			w.line("--%s: %s;", prefix, values[key])
			continue
		}
		w.line("--%s-%s: %s;", prefix, cssName(key), values[key])
	}
}

// cssName escapes the characters of a token key that are not valid in a
// custom property name ("0.5" becomes "0\.5").
func cssName(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch {
		case r == '-' || r == '_',
			r >= '0' && r <= '9',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r > 0x7f:
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

func cssFontStack(stack []string) string {
	parts := make([]string, 0, len(stack))
	for _, name := range stack {
		if tokens.IsGenericFamily(name) || cssIdentPattern.MatchString(name) {
			parts = append(parts, name)
			continue
		}
		parts = append(parts, `"`+strings.ReplaceAll(name, `"`, `\"`)+`"`)
	}
	return strings.Join(parts, ", ")
}
