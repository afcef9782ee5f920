package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkblue/themeconf/internal/render"
	"github.com/inkblue/themeconf/internal/themefile"
	"github.com/inkblue/themeconf/internal/tokens"
)

func resetFlags(cmd *cobra.Command) {
	for _, flags := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()} {
		flags.VisitAll(func(f *pflag.Flag) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				_ = sv.Replace(nil)
			} else {
				_ = f.Value.Set(f.DefValue)
			}
			f.Changed = false
		})
	}
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	appConfig = nil
	t.Cleanup(func() { color.NoColor = false })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--no-color", "--no-progress", "--log-level", "error"}, args...))
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// newProject returns an empty project directory with HOME pointed elsewhere so
// user-level overlays cannot leak in.
func newProject(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	return t.TempDir()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

const brokenOverlay = `theme:
  extend:
    colors:
      primary:
        600: blue
`

func TestValidateDefaultTheme(t *testing.T) {
	dir := newProject(t)

	stdout, _, err := runCLI(t, "--project", dir, "validate")
	require.NoError(t, err)
	assert.Contains(t, stdout, "OK theme is valid")
}

func TestValidateReportsErrors(t *testing.T) {
	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".themeconf", "theme.yaml"), brokenOverlay)

	stdout, _, err := runCLI(t, "--project", dir, "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 error")
	assert.Contains(t, stdout, "SEVERITY")
	assert.Contains(t, stdout, "ERR")
	assert.Contains(t, stdout, "theme.extend.colors.primary.600")

	stdout, _, err = runCLI(t, "--project", dir, "--json", "validate")
	require.Error(t, err)
	var result validateResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.False(t, result.Valid)
	assert.Equal(t, 1, result.Errors)
	require.Len(t, result.Sources, 1)
	assert.Equal(t, filepath.Join(dir, ".themeconf", "theme.yaml"), result.Sources[0])
}

func TestValidateStrictFailsOnWarnings(t *testing.T) {
	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".themeconf", "theme.yaml"), `theme:
  extend:
    colors:
      primary:
        50: "#000000"
`)

	stdout, _, err := runCLI(t, "--project", dir, "validate")
	require.NoError(t, err)
	assert.Contains(t, stdout, "WARN")
	assert.Contains(t, stdout, "theme.extend.colors.primary.100")

	_, _, err = runCLI(t, "--project", dir, "validate", "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--strict")
}

func TestExportWritesFiles(t *testing.T) {
	dir := newProject(t)

	stdout, _, err := runCLI(t, "--project", dir, "export", "--format", "css,json", "--out", "dist")
	require.NoError(t, err)
	assert.Contains(t, stdout, "theme.css")
	assert.Contains(t, stdout, "theme.json")

	css, err := os.ReadFile(filepath.Join(dir, "dist", "theme.css"))
	require.NoError(t, err)
	assert.Contains(t, string(css), "--color-primary-600: #486581;")

	data, err := os.ReadFile(filepath.Join(dir, "dist", "theme.json"))
	require.NoError(t, err)
	decoded, err := themefile.Decode(data, ".json")
	require.NoError(t, err)
	assert.Equal(t, tokens.Default(), decoded)

	_, err = os.Stat(filepath.Join(dir, "dist", "tailwind.config.js"))
	assert.True(t, os.IsNotExist(err))
}

func TestExportUsesConfigDefaults(t *testing.T) {
	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".themeconf", "config.yaml"), `export:
  out_dir: build
  formats: [toml, js]
`)

	_, _, err := runCLI(t, "--project", dir, "export")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "build", "theme.toml"))
	assert.FileExists(t, filepath.Join(dir, "build", "tailwind.config.js"))
}

func TestExportReadsProjectConfigFromWorkingDirectory(t *testing.T) {
	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".themeconf", "config.yaml"), `export:
  formats: [css]
`)
	t.Chdir(dir)

	stdout, _, err := runCLI(t, "export", "--out", "-")
	require.NoError(t, err)
	assert.Contains(t, stdout, "--color-primary-600: #486581;")
	assert.NotContains(t, stdout, "export default")
	assert.Equal(t, ".", GetConfig().ProjectDir)
}

func TestExportToStdout(t *testing.T) {
	dir := newProject(t)

	stdout, _, err := runCLI(t, "--project", dir, "export", "--format", "js", "--out", "-")
	require.NoError(t, err)
	assert.Contains(t, stdout, "export default {")
	assert.Contains(t, stdout, "600: '#486581',")
}

func TestExportErrors(t *testing.T) {
	dir := newProject(t)

	_, _, err := runCLI(t, "--project", dir, "export", "--format", "scss")
	require.Error(t, err)
	assert.True(t, errors.Is(err, render.ErrUnknownFormat))

	writeFile(t, filepath.Join(dir, ".themeconf", "theme.yaml"), brokenOverlay)
	_, _, err = runCLI(t, "--project", dir, "export", "--out", "dist")
	require.Error(t, err)
	assert.ErrorIs(t, err, tokens.ErrInvalidColor)
	assert.NoDirExists(t, filepath.Join(dir, "dist"))
}

func TestShowSummary(t *testing.T) {
	dir := newProject(t)

	stdout, _, err := runCLI(t, "--project", dir, "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Sources: built-in defaults")
	assert.Contains(t, stdout, "CATEGORY")
	assert.Contains(t, stdout, "fontSize")

	stdout, _, err = runCLI(t, "--project", dir, "--json", "show")
	require.NoError(t, err)
	var summary showSummary
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	assert.Equal(t, 3, summary.Tokens[tokens.CategoryColors])
	assert.Equal(t, 13, summary.Tokens[tokens.CategoryFontSize])
	assert.Equal(t, []string{tokens.DefaultContent}, summary.Content)
	assert.Empty(t, summary.Plugins)
}

func TestShowCategory(t *testing.T) {
	dir := newProject(t)

	stdout, _, err := runCLI(t, "--project", dir, "show", "colors")
	require.NoError(t, err)
	assert.Contains(t, stdout, "PALETTE")
	assert.Contains(t, stdout, "#486581")
	assert.Less(t, strings.Index(stdout, "primary"), strings.Index(stdout, "slate"))

	stdout, _, err = runCLI(t, "--project", dir, "show", "fontsize")
	require.NoError(t, err)
	assert.Contains(t, stdout, "lineHeight: 1")

	stdout, _, err = runCLI(t, "--project", dir, "--json", "show", "spacing")
	require.NoError(t, err)
	var spacing map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &spacing))
	assert.Equal(t, "32rem", spacing["128"])

	_, _, err = runCLI(t, "--project", dir, "show", "gradients")
	var preflight *PreflightError
	require.ErrorAs(t, err, &preflight)
	assert.Contains(t, preflight.Hint, "borderRadius")
}

func TestShowWithThemeFile(t *testing.T) {
	dir := newProject(t)
	path := filepath.Join(dir, "solo.json")
	writeFile(t, path, `{
  "content": ["./index.html"],
  "theme": {"extend": {"spacing": {"18": "4.5rem"}}},
  "plugins": []
}`)

	stdout, _, err := runCLI(t, "--project", dir, "--file", path, "--json", "show")
	require.NoError(t, err)
	var summary showSummary
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	assert.Equal(t, []string{path}, summary.Sources)
	assert.Equal(t, 0, summary.Tokens[tokens.CategoryColors])
	assert.Equal(t, 1, summary.Tokens[tokens.CategorySpacing])
}

func TestConfiguredThemeFiles(t *testing.T) {
	dir := newProject(t)
	writeFile(t, filepath.Join(dir, "brand.toml"), `[theme.extend.spacing]
"144" = "36rem"
`)
	writeFile(t, filepath.Join(dir, ".themeconf", "config.yaml"), `theme:
  files: [brand.toml]
`)

	stdout, _, err := runCLI(t, "--project", dir, "show", "spacing")
	require.NoError(t, err)
	assert.Contains(t, stdout, "36rem")
	assert.Contains(t, stdout, "32rem")
}

func TestPreviewPalette(t *testing.T) {
	dir := newProject(t)

	stdout, _, err := runCLI(t, "--project", dir, "preview", "primary")
	require.NoError(t, err)
	assert.Contains(t, stdout, "#486581")
	assert.NotContains(t, stdout, "Font sizes")

	stdout, _, err = runCLI(t, "--project", dir, "preview")
	require.NoError(t, err)
	assert.Contains(t, stdout, "#2d3748")
	assert.Contains(t, stdout, "Border radius")

	_, _, err = runCLI(t, "--project", dir, "preview", "brand")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "primary, secondary, slate")

	_, _, err = runCLI(t, "--project", dir, "--non-interactive", "preview", "--interactive")
	var preflight *PreflightError
	require.ErrorAs(t, err, &preflight)
	assert.Equal(t, "themeconf preview", preflight.NextStep)
}

func TestImport(t *testing.T) {
	dir := newProject(t)
	src, err := filepath.Abs(filepath.Join("..", "jsconfig", "testdata", "tailwind.config.js"))
	require.NoError(t, err)

	stdout, _, err := runCLI(t, "--project", dir, "import", src)
	require.NoError(t, err)
	decoded, err := themefile.Decode([]byte(stdout), ".yaml")
	require.NoError(t, err)
	assert.Equal(t, tokens.Default(), decoded)

	target := filepath.Join(dir, "out", "theme.toml")
	stdout, _, err = runCLI(t, "--project", dir, "import", src, "--to", target)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Imported")
	loaded, err := themefile.LoadFile(target)
	require.NoError(t, err)
	assert.Equal(t, tokens.Default(), loaded)

	_, _, err = runCLI(t, "--project", dir, "import", src, "--to", target)
	var preflight *PreflightError
	require.ErrorAs(t, err, &preflight)
	assert.Contains(t, preflight.Hint, "--force")

	_, _, err = runCLI(t, "--project", dir, "import", src, "--to", target, "--force")
	require.NoError(t, err)

	_, _, err = runCLI(t, "--project", dir, "import", src, "--to", filepath.Join(dir, "theme.css"))
	require.ErrorAs(t, err, &preflight)
}

func TestImportRejectsComputedValues(t *testing.T) {
	dir := newProject(t)
	src := filepath.Join(dir, "tailwind.config.js")
	writeFile(t, src, "export default { content: [dir + '/src'] }\n")

	_, _, err := runCLI(t, "--project", dir, "import", src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to import")
}

func TestImportRejectsUnsupportedKeys(t *testing.T) {
	dir := newProject(t)
	src := filepath.Join(dir, "tailwind.config.js")
	writeFile(t, src, "export default {\n  darkMode: 'class',\n  theme: { extend: { spacing: { 128: '32rem' } } },\n}\n")
	target := filepath.Join(dir, "theme.yaml")

	stdout, _, err := runCLI(t, "--project", dir, "import", src, "--to", target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "darkMode")
	assert.NotContains(t, stdout, "Imported")
	assert.NoFileExists(t, target)
}

func TestContent(t *testing.T) {
	dir := newProject(t)
	writeFile(t, filepath.Join(dir, "src", "index.html"), "<div></div>")
	writeFile(t, filepath.Join(dir, "src", "components", "Button.tsx"), "export {}")
	writeFile(t, filepath.Join(dir, "src", "notes.txt"), "x")

	stdout, _, err := runCLI(t, "--project", dir, "content")
	require.NoError(t, err)
	assert.Equal(t, "src/components/Button.tsx\nsrc/index.html\n", stdout)

	stdout, _, err = runCLI(t, "--project", dir, "--json", "content", "--summary")
	require.NoError(t, err)
	var counts map[string]int
	require.NoError(t, json.Unmarshal([]byte(stdout), &counts))
	assert.Equal(t, map[string]int{"html": 1, "tsx": 1}, counts)

	stdout, _, err = runCLI(t, "--project", dir, "content", "src/index.html", "docs/readme.md")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "yes")
	assert.Contains(t, lines[2], "no")
}

func TestContentJSONLinesOnePerMatch(t *testing.T) {
	dir := newProject(t)

	stdout, _, err := runCLI(t, "--project", dir, "--jsonl", "content", "src/index.html", "docs/readme.md")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 2)

	var first, second contentMatch
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, contentMatch{File: "src/index.html", Matched: true}, first)
	assert.Equal(t, contentMatch{File: "docs/readme.md", Matched: false}, second)
}

func TestWriteOutputJSONLines(t *testing.T) {
	jsonlOutput = true
	t.Cleanup(func() { jsonlOutput = false })

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, []exportedFile{
		{Format: render.FormatCSS, Path: "theme.css", Bytes: 10},
		{Format: render.FormatJSON, Path: "theme.json", Bytes: 20},
	}))
	assert.Equal(t, `{"format":"css","path":"theme.css","bytes":10}`+"\n"+
		`{"format":"json","path":"theme.json","bytes":20}`+"\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteOutput(&buf, versionInfo{Version: "1.0.0"}))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))

	buf.Reset()
	require.NoError(t, WriteOutput(&buf, []string{}))
	assert.Empty(t, buf.String())
}

func TestContentEmptyWarns(t *testing.T) {
	dir := newProject(t)

	stdout, stderr, err := runCLI(t, "--project", dir, "content")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "no files match")
}

func TestVersion(t *testing.T) {
	stdout, _, err := runCLI(t, "--json", "version")
	require.NoError(t, err)
	var info versionInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Equal(t, version, info.Version)
	assert.NotEmpty(t, info.Go)
}

func TestInvalidLogFormat(t *testing.T) {
	dir := newProject(t)
	_, _, err := runCLI(t, "--project", dir, "--log-format", "xml", "version")
	assert.Error(t, err)
}

func TestWatchPaths(t *testing.T) {
	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".themeconf", "theme.yaml"), "{}\n")
	writeFile(t, filepath.Join(dir, ".themeconf", "config.yaml"), `theme:
  files: [brand.json, missing/extra.yaml]
`)

	_, _, err := runCLI(t, "--project", dir, "version")
	require.NoError(t, err)

	paths := watchPaths()
	assert.Contains(t, paths, filepath.Join(dir, ".themeconf", "theme.yaml"))
	assert.Contains(t, paths, filepath.Join(dir, ".themeconf", "theme.toml"))
	assert.Contains(t, paths, filepath.Join(dir, "brand.json"))
	assert.NotContains(t, paths, filepath.Join(dir, "missing", "extra.yaml"))
}

func TestPreflightError(t *testing.T) {
	err := &PreflightError{Message: "cannot do it", Hint: "try this", NextStep: "themeconf help"}
	assert.Equal(t, "cannot do it\nHint: try this\nNext: themeconf help", err.Error())
	assert.Equal(t, "bare", (&PreflightError{Message: "bare"}).Error())
}

func TestFormatSummary(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	assert.Equal(t, "OK theme is valid", formatSummary(0, 0))
	assert.Equal(t, "WARN 1 warning", formatSummary(0, 1))
	assert.Equal(t, "ERR 2 errors, 0 warnings", formatSummary(2, 0))
	assert.Equal(t, "ERR", formatSeverity(tokens.SeverityError))
	assert.Equal(t, "WARN", formatSeverity(tokens.SeverityWarning))
}
