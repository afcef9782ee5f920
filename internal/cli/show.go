package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inkblue/themeconf/internal/tokens"
)

const (
	showContent = "content"
	showPlugins = "plugins"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

type showSummary struct {
	Sources []string       `json:"sources"`
	Tokens  map[string]int `json:"tokens"`
	Content []string       `json:"content"`
	Plugins []string       `json:"plugins"`
}

var showCmd = &cobra.Command{
	Use:   "show [category]",
	Short: "List the resolved tokens",
	Long: `List the resolved theme. Without an argument, print a count per category.
With a category (colors, fontFamily, fontSize, boxShadow, backgroundImage,
animation, keyframes, spacing, borderRadius, content, plugins), list its
entries.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolved, err := loadTheme()
		if err != nil {
			return err
		}
		cfg := resolved.Config
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			summary := showSummary{
				Sources: nonNil(resolved.Sources),
				Tokens:  make(map[string]int, len(tokens.Categories)),
				Content: nonNil(cfg.Content),
				Plugins: nonNil(cfg.Plugins),
			}
			rows := make([][]string, 0, len(tokens.Categories)+2)
			for _, category := range tokens.Categories {
				count := cfg.Theme.Extend.Count(category)
				summary.Tokens[category] = count
				rows = append(rows, []string{category, strconv.Itoa(count)})
			}
			if IsJSONOutput() || IsJSONLOutput() {
				return WriteOutput(out, summary)
			}
			rows = append(rows,
				[]string{showContent, strconv.Itoa(len(cfg.Content))},
				[]string{showPlugins, strconv.Itoa(len(cfg.Plugins))},
			)
			if len(summary.Sources) > 0 {
				fmt.Fprintf(out, "Sources: %s\n\n", strings.Join(summary.Sources, ", "))
			} else {
				fmt.Fprint(out, "Sources: built-in defaults\n\n")
			}
			return writeTable(out, []string{"CATEGORY", "ENTRIES"}, rows)
		}

		category, err := parseCategory(args[0])
		if err != nil {
			return err
		}
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, categoryValue(cfg, category))
		}
		headers, rows := categoryRows(cfg, category)
		return writeTable(out, headers, rows)
	},
}

func parseCategory(name string) (string, error) {
	for _, category := range append(append([]string(nil), tokens.Categories...), showContent, showPlugins) {
		if strings.EqualFold(name, category) {
			return category, nil
		}
	}
	return "", &PreflightError{
		Message:  fmt.Sprintf("unknown category %q", name),
		Hint:     "Categories: " + strings.Join(tokens.Categories, ", ") + ", content, plugins",
		NextStep: "themeconf show",
	}
}

func categoryValue(cfg *tokens.Config, category string) any {
	ext := cfg.Theme.Extend
	switch category {
	case tokens.CategoryColors:
		return ext.Colors
	case tokens.CategoryFontFamily:
		return ext.FontFamily
	case tokens.CategoryFontSize:
		return ext.FontSize
	case tokens.CategoryKeyframes:
		return ext.Keyframes
	case showContent:
		return nonNil(cfg.Content)
	case showPlugins:
		return nonNil(cfg.Plugins)
	}
	values, _ := ext.StringMap(category)
	return values
}

func categoryRows(cfg *tokens.Config, category string) ([]string, [][]string) {
	ext := cfg.Theme.Extend
	var rows [][]string

	switch category {
	case tokens.CategoryColors:
		for _, name := range tokens.SortedKeys(ext.Colors) {
			palette := ext.Colors[name]
			for _, shade := range tokens.SortedKeys(palette) {
				rows = append(rows, []string{name, shade, palette[shade]})
			}
		}
		return []string{"PALETTE", "SHADE", "VALUE"}, rows

	case tokens.CategoryFontFamily:
		for _, name := range tokens.SortedKeys(ext.FontFamily) {
			rows = append(rows, []string{name, strings.Join(ext.FontFamily[name], ", ")})
		}
		return []string{"NAME", "STACK"}, rows

	case tokens.CategoryFontSize:
		for _, name := range tokens.SortedKeys(ext.FontSize) {
			size := ext.FontSize[name]
			rows = append(rows, []string{name, size.Size, formatOptions(size.Options())})
		}
		return []string{"NAME", "SIZE", "OPTIONS"}, rows

	case tokens.CategoryKeyframes:
		for _, name := range tokens.SortedKeys(ext.Keyframes) {
			kf := ext.Keyframes[name]
			for _, stop := range tokens.SortedStops(kf) {
				rows = append(rows, []string{name, stop, formatOptions(kf[stop])})
			}
		}
		return []string{"NAME", "STOP", "DECLARATIONS"}, rows

	case showContent, showPlugins:
		values := cfg.Content
		header := "PATTERN"
		if category == showPlugins {
			values = cfg.Plugins
			header = "PLUGIN"
		}
		for _, value := range values {
			rows = append(rows, []string{value})
		}
		return []string{header}, rows
	}

	values, _ := ext.StringMap(category)
	for _, name := range tokens.SortedKeys(values) {
		rows = append(rows, []string{name, values[name]})
	}
	return []string{"NAME", "VALUE"}, rows
}

func formatOptions(opts map[string]string) string {
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+opts[k])
	}
	return strings.Join(parts, "; ")
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
