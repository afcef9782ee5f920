package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkblue/themeconf/internal/tokens"
)

var validateStrict bool

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "treat warnings as errors")
}

type validateResult struct {
	Valid    bool           `json:"valid"`
	Sources  []string       `json:"sources"`
	Errors   int            `json:"errors"`
	Warnings int            `json:"warnings"`
	Issues   []tokens.Issue `json:"issues"`
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the resolved theme",
	Long: `Check the resolved theme against every structural rule (shade keys, hex
colors, lengths, font stacks, keyframe references, content globs) and lint it
for palettes whose shades do not darken monotonically.

Exits non-zero when errors are found, or warnings with --strict.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		resolved, err := loadTheme()
		if err != nil {
			return err
		}

		result := validateResult{
			Sources: resolved.Sources,
			Issues:  []tokens.Issue{},
		}
		if result.Sources == nil {
			result.Sources = []string{}
		}

		if err := tokens.Validate(resolved.Config); err != nil {
			var verr *tokens.ValidationError
			if !errors.As(err, &verr) {
				return fmt.Errorf("failed to validate theme: %w", err)
			}
			result.Issues = append(result.Issues, verr.Issues...)
		}
		result.Issues = append(result.Issues, tokens.Lint(resolved.Config)...)

		for _, issue := range result.Issues {
			if issue.Severity == tokens.SeverityError {
				result.Errors++
			} else {
				result.Warnings++
			}
		}
		result.Valid = result.Errors == 0 && (!validateStrict || result.Warnings == 0)

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			if err := WriteOutput(out, result); err != nil {
				return err
			}
		} else {
			if len(result.Issues) > 0 {
				rows := make([][]string, 0, len(result.Issues))
				for _, issue := range result.Issues {
					rows = append(rows, []string{formatSeverity(issue.Severity), issue.Path, issue.Message})
				}
				if err := writeTable(out, []string{"SEVERITY", "PATH", "MESSAGE"}, rows); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, formatSummary(result.Errors, result.Warnings))
		}

		if !result.Valid {
			if result.Errors > 0 {
				return fmt.Errorf("theme has %s", formatCount(result.Errors, "error"))
			}
			return fmt.Errorf("theme has %s (--strict)", formatCount(result.Warnings, "warning"))
		}
		return nil
	},
}
