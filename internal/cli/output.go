package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/tidwall/pretty"
)

const (
	colorGreen   = "green"
	colorRed     = "red"
	colorYellow  = "yellow"
	colorCyan    = "cyan"
	colorMagenta = "magenta"
)

var colorAttrs = map[string]color.Attribute{
	colorGreen:   color.FgGreen,
	colorRed:     color.FgRed,
	colorYellow:  color.FgYellow,
	colorCyan:    color.FgCyan,
	colorMagenta: color.FgMagenta,
}

func colorize(text, name string) string {
	attr, ok := colorAttrs[name]
	if !ok {
		return text
	}
	return color.New(attr).Sprint(text)
}

// WriteOutput writes v as indented JSON. With --jsonl it writes one compact
// line per element when v is a list, or a single line otherwise.
func WriteOutput(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	if !IsJSONLOutput() {
		_, err = w.Write(pretty.PrettyOptions(data, &pretty.Options{Width: 80, Indent: "  "}))
		return err
	}

	lines := []json.RawMessage{data}
	if len(data) > 0 && data[0] == '[' {
		if err := json.Unmarshal(data, &lines); err != nil {
			return fmt.Errorf("failed to split output: %w", err)
		}
	}
	for _, line := range lines {
		if _, err := w.Write(append(line, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// PreflightError is a precondition failure with guidance for the user.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
	}
	if e.NextStep != "" {
		b.WriteString("\nNext: ")
		b.WriteString(e.NextStep)
	}
	return b.String()
}
