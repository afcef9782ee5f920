package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/inkblue/themeconf/internal/content"
	"github.com/inkblue/themeconf/internal/tokens"
)

var (
	contentRoot    string
	contentSummary bool
)

func init() {
	rootCmd.AddCommand(contentCmd)
	contentCmd.Flags().StringVar(&contentRoot, "root", "", "directory the content globs are relative to (default: project directory)")
	contentCmd.Flags().BoolVar(&contentSummary, "summary", false, "print a count per file extension instead of the file list")
}

type contentMatch struct {
	File    string `json:"file"`
	Matched bool   `json:"matched"`
}

var contentCmd = &cobra.Command{
	Use:   "content [file...]",
	Short: "List the files the content globs select",
	Long: `Expand the theme's content globs and list the matching files, the set the
toolchain scans for class names. Patterns starting with ! exclude files.

With file arguments, report whether each file is covered instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		resolved, err := loadTheme()
		if err != nil {
			return err
		}
		patterns := resolved.Config.Content
		out := cmd.OutOrStdout()

		if len(args) > 0 {
			matches := make([]contentMatch, 0, len(args))
			for _, file := range args {
				ok, err := content.Match(patterns, file)
				if err != nil {
					return err
				}
				matches = append(matches, contentMatch{File: file, Matched: ok})
			}
			if IsJSONOutput() || IsJSONLOutput() {
				return WriteOutput(out, matches)
			}
			rows := make([][]string, 0, len(matches))
			for _, m := range matches {
				rows = append(rows, []string{m.File, formatYesNo(m.Matched)})
			}
			return writeTable(out, []string{"FILE", "MATCHED"}, rows)
		}

		root := contentRoot
		if root == "" {
			root = GetConfig().ProjectDir
		}
		files, err := content.Resolve(root, patterns)
		if err != nil {
			return fmt.Errorf("failed to expand content globs: %w", err)
		}

		if contentSummary {
			counts := content.CountByExt(files)
			if IsJSONOutput() || IsJSONLOutput() {
				return WriteOutput(out, counts)
			}
			rows := make([][]string, 0, len(counts))
			for _, ext := range tokens.SortedKeys(counts) {
				label := ext
				if label == "" {
					label = "(none)"
				}
				rows = append(rows, []string{label, strconv.Itoa(counts[ext])})
			}
			return writeTable(out, []string{"EXTENSION", "FILES"}, rows)
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, files)
		}
		for _, file := range files {
			fmt.Fprintln(out, file)
		}
		if len(files) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), colorize("WARN no files match the content globs", colorYellow))
		}
		return nil
	},
}
