package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/inkblue/themeconf/internal/jsconfig"
	"github.com/inkblue/themeconf/internal/render"
	"github.com/inkblue/themeconf/internal/tokens"
)

var (
	importTo    string
	importForce bool
)

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importTo, "to", "", "theme file to write; format from its extension (default: YAML on stdout)")
	importCmd.Flags().BoolVar(&importForce, "force", false, "overwrite an existing --to file")
}

var importCmd = &cobra.Command{
	Use:   "import <tailwind.config.js>",
	Short: "Convert a tailwind.config.js into a theme file",
	Long: `Read a tailwind.config.js (ESM or CommonJS) and write the theme it exports
as YAML, JSON or TOML. Only literal values are supported: objects, arrays,
strings, numbers and plugin calls. Anything computed is rejected with the
line and token path where it appears.`,
	Example: `  themeconf import tailwind.config.js
  themeconf import tailwind.config.js --to .themeconf/theme.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		cfg, err := jsconfig.Parse(src)
		if err != nil {
			return fmt.Errorf("failed to import %s: %w", args[0], err)
		}
		if err := tokens.Validate(cfg); err != nil {
			return fmt.Errorf("imported theme is invalid: %w", err)
		}

		if importTo == "" || importTo == "-" {
			return render.Render(cmd.OutOrStdout(), cfg, render.FormatYAML)
		}

		format, err := render.ParseFormat(filepath.Ext(importTo))
		if err != nil {
			return err
		}
		switch format {
		case render.FormatYAML, render.FormatJSON, render.FormatTOML:
		default:
			return &PreflightError{
				Message:  fmt.Sprintf("cannot import into %s", importTo),
				Hint:     "Theme files are .yaml, .yml, .json or .toml",
				NextStep: "themeconf export --format " + string(format),
			}
		}

		if !importForce {
			if _, err := os.Stat(importTo); err == nil {
				return &PreflightError{
					Message: fmt.Sprintf("%s already exists", importTo),
					Hint:    "Pass --force to overwrite it",
				}
			} else if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to stat %s: %w", importTo, err)
			}
		}

		step := startProgress(cmd.ErrOrStderr(), "Writing "+importTo)
		data, err := render.Bytes(cfg, format)
		if err == nil {
			if dir := filepath.Dir(importTo); dir != "." {
				err = os.MkdirAll(dir, 0o755)
			}
		}
		if err == nil {
			err = os.WriteFile(importTo, data, 0o644)
		}
		if err != nil {
			step.Fail(err)
			return fmt.Errorf("failed to write %s: %w", importTo, err)
		}
		step.Done()

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), exportedFile{Format: format, Path: importTo, Bytes: len(data)})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %s into %s\n", args[0], importTo)
		return nil
	},
}
