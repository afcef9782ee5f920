// Package render writes a theme record in the formats the utility-CSS
// toolchain and its neighbours consume.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/inkblue/themeconf/internal/tokens"
)

// Format names an output encoding.
type Format string

const (
	FormatJS   Format = "js"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatCSS  Format = "css"
)

// ErrUnknownFormat is returned for a format name no renderer handles.
var ErrUnknownFormat = errors.New("unknown format")

var formats = []Format{FormatJS, FormatJSON, FormatYAML, FormatTOML, FormatCSS}

var fileNames = map[Format]string{
	FormatJS:   "tailwind.config.js",
	FormatJSON: "theme.json",
	FormatYAML: "theme.yaml",
	FormatTOML: "theme.toml",
	FormatCSS:  "theme.css",
}

var contentTypes = map[Format]string{
	FormatJS:   "text/javascript; charset=utf-8",
	FormatJSON: "application/json",
	FormatYAML: "application/yaml",
	FormatTOML: "application/toml",
	FormatCSS:  "text/css; charset=utf-8",
}

// Formats lists every supported format.
func Formats() []Format {
	return append([]Format(nil), formats...)
}

// ParseFormat resolves a format name, accepting "yml" and a leading dot.
func ParseFormat(name string) (Format, error) {
	normalized := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	switch normalized {
	case "yml":
		return FormatYAML, nil
	case "javascript", "mjs":
		return FormatJS, nil
	}
	for _, f := range formats {
		if string(f) == normalized {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, name, strings.Join(formatNames(), ", "))
}

func formatNames() []string {
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, string(f))
	}
	return names
}

// FileName returns the conventional output file name for f.
func FileName(f Format) string {
	return fileNames[f]
}

// ContentType returns the HTTP media type for f.
func ContentType(f Format) string {
	return contentTypes[f]
}

// Render writes cfg to w in format f.
func Render(w io.Writer, cfg *tokens.Config, f Format) error {
	data, err := Bytes(cfg, f)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", f, err)
	}
	return nil
}

// Bytes renders cfg in format f.
func Bytes(cfg *tokens.Config, f Format) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("render %s: config is required", f)
	}
	cfg = exportable(cfg)

	var (
		data []byte
		err  error
	)
	switch f {
	case FormatJS:
		data = renderJS(cfg)
	case FormatJSON:
		data, err = renderJSON(cfg)
	case FormatYAML:
		data, err = renderYAML(cfg)
	case FormatTOML:
		data, err = renderTOML(cfg)
	case FormatCSS:
		data = renderCSS(cfg)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", f, err)
	}
	return data, nil
}

// exportable returns a copy with nil lists replaced by empty ones, so every
// format writes `content: []` and `plugins: []` rather than null.
func exportable(cfg *tokens.Config) *tokens.Config {
	out := cfg.Clone()
	if out.Content == nil {
		out.Content = []string{}
	}
	if out.Plugins == nil {
		out.Plugins = []string{}
	}
	return out
}

type indentWriter struct {
	buf    bytes.Buffer
	indent int
}

func (w *indentWriter) line(format string, args ...any) {
	w.buf.WriteString(strings.Repeat("  ", w.indent))
	fmt.Fprintf(&w.buf, format, args...)
	w.buf.WriteByte('\n')
}

func (w *indentWriter) open(format string, args ...any) {
	w.line(format, args...)
	w.indent++
}

func (w *indentWriter) close(text string) {
	w.indent--
	w.line("%s", text)
}
