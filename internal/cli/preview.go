package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inkblue/themeconf/internal/preview"
	"github.com/inkblue/themeconf/internal/tokens"
)

var previewInteractive bool

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().BoolVarP(&previewInteractive, "interactive", "i", false, "open the interactive palette browser")
}

var previewCmd = &cobra.Command{
	Use:   "preview [palette]",
	Short: "Preview palettes and scales in the terminal",
	Long: `Print color swatches for every palette (or only the named one) followed by
the font size, spacing and border radius scales.

With --interactive, open a browser to step through palettes and shades with
their lightness and contrast ratios. The browser needs a terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start := ""
		if len(args) == 1 {
			start = args[0]
		}

		resolved, err := loadTheme()
		if err != nil {
			return err
		}
		cfg := resolved.Config

		if previewInteractive {
			if IsNonInteractive() {
				return &PreflightError{
					Message:  "interactive preview requires a terminal",
					Hint:     "Run without --non-interactive and with a TTY, or drop --interactive",
					NextStep: "themeconf preview",
				}
			}
			return preview.Run(cfg, start)
		}

		names := tokens.SortedKeys(cfg.Theme.Extend.Colors)
		if start != "" {
			if _, ok := cfg.Theme.Extend.Colors[start]; !ok {
				return fmt.Errorf("palette %q not found (have %s)", start, strings.Join(names, ", "))
			}
			names = []string{start}
		}

		out := cmd.OutOrStdout()
		for _, name := range names {
			fmt.Fprintln(out, preview.RenderPalette(name, cfg.Theme.Extend.Colors[name]))
			fmt.Fprintln(out)
		}
		if start == "" {
			fmt.Fprintln(out, preview.RenderScale(cfg))
		}
		return nil
	},
}
