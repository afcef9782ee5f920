package cli

import (
	"fmt"

	"github.com/inkblue/themeconf/internal/tokens"
)

func formatSeverity(severity tokens.Severity) string {
	label, color := severityLabel(severity)
	return colorize(label, color)
}

func severityLabel(severity tokens.Severity) (string, string) {
	switch severity {
	case tokens.SeverityError:
		return "ERR", colorRed
	case tokens.SeverityWarning:
		return "WARN", colorYellow
	default:
		return "OK", colorGreen
	}
}

func formatSummary(errs, warnings int) string {
	switch {
	case errs > 0:
		return colorize(fmt.Sprintf("ERR %s, %s", formatCount(errs, "error"), formatCount(warnings, "warning")), colorRed)
	case warnings > 0:
		return colorize(fmt.Sprintf("WARN %s", formatCount(warnings, "warning")), colorYellow)
	default:
		return colorize("OK theme is valid", colorGreen)
	}
}
