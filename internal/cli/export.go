package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/inkblue/themeconf/internal/render"
)

var (
	exportFormats []string
	exportOut     string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringSliceVar(&exportFormats, "format", nil, "formats to render: js, json, yaml, toml, css (default from config)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output directory, or - for stdout (default from config)")
}

type exportedFile struct {
	Format render.Format `json:"format"`
	Path   string        `json:"path"`
	Bytes  int           `json:"bytes"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the theme to files",
	Long: `Render the validated theme in one or more formats.

Each format is written to its conventional file name in the output directory:
tailwind.config.js, theme.json, theme.yaml, theme.toml and theme.css.`,
	Example: `  themeconf export
  themeconf export --format css,json --out dist
  themeconf export --format js --out -`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		names := exportFormats
		if len(names) == 0 {
			names = cfg.Export.Formats
		}
		formats := make([]render.Format, 0, len(names))
		for _, name := range names {
			f, err := render.ParseFormat(name)
			if err != nil {
				return err
			}
			formats = append(formats, f)
		}

		outDir := exportOut
		if outDir == "" {
			outDir = cfg.Export.OutDir
		}

		resolved, err := loadValidTheme()
		if err != nil {
			return err
		}

		if outDir == "-" {
			for _, f := range formats {
				if err := render.Render(cmd.OutOrStdout(), resolved.Config, f); err != nil {
					return fmt.Errorf("failed to render %s: %w", f, err)
				}
			}
			return nil
		}

		outDir = projectPath(outDir)
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		written := make([]exportedFile, 0, len(formats))
		for _, f := range formats {
			path := filepath.Join(outDir, render.FileName(f))
			step := startProgress(cmd.ErrOrStderr(), "Writing "+path)
			data, err := render.Bytes(resolved.Config, f)
			if err == nil {
				err = os.WriteFile(path, data, 0o644)
			}
			if err != nil {
				step.Fail(err)
				return fmt.Errorf("failed to export %s: %w", f, err)
			}
			step.Done()
			written = append(written, exportedFile{Format: f, Path: path, Bytes: len(data)})
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, written)
		}

		rows := make([][]string, 0, len(written))
		for _, file := range written {
			rows = append(rows, []string{string(file.Format), file.Path, fmt.Sprintf("%d", file.Bytes)})
		}
		return writeTable(out, []string{"FORMAT", "PATH", "BYTES"}, rows)
	},
}
