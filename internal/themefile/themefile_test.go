package themefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkblue/themeconf/internal/tokens"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	writeFile(t, path, `content:
  - ./app/**/*.tsx
theme:
  extend:
    colors:
      primary:
        600: "#3b5b7a"
    fontSize:
      hero: ["4rem", { lineHeight: 1 }]
      caption: 0.7rem
    spacing:
      "160": 40rem
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"./app/**/*.tsx"}, cfg.Content)
	assert.Equal(t, "#3b5b7a", cfg.Theme.Extend.Colors["primary"]["600"])
	assert.Equal(t, tokens.FontSize{Size: "4rem", LineHeight: "1"}, cfg.Theme.Extend.FontSize["hero"])
	assert.Equal(t, tokens.FontSize{Size: "0.7rem"}, cfg.Theme.Extend.FontSize["caption"])
	assert.Equal(t, "40rem", cfg.Theme.Extend.Spacing["160"])
	assert.Nil(t, cfg.Plugins)
}

func TestLoadFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	writeFile(t, path, `
[theme.extend.colors.accent]
50 = "#fff7ed"
950 = "#431407"

[theme.extend.fontSize]
display = ["5rem", { lineHeight = 1, letterSpacing = "-0.02em" }]

[theme.extend.keyframes.wiggle]
"0%, 100%" = { transform = "rotate(-3deg)" }
"50%" = { transform = "rotate(3deg)" }
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, tokens.Palette{"50": "#fff7ed", "950": "#431407"}, cfg.Theme.Extend.Colors["accent"])
	assert.Equal(t, tokens.FontSize{Size: "5rem", LineHeight: "1", LetterSpacing: "-0.02em"}, cfg.Theme.Extend.FontSize["display"])
	assert.Equal(t, "rotate(3deg)", cfg.Theme.Extend.Keyframes["wiggle"]["50%"]["transform"])
}

func TestLoadFileJSONAndJS(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "theme.json")
	writeFile(t, jsonPath, `{"theme": {"extend": {"borderRadius": {"4xl": "2rem"}}}, "plugins": []}`)
	cfg, err := LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "2rem", cfg.Theme.Extend.BorderRadius["4xl"])
	assert.Equal(t, []string{}, cfg.Plugins)

	jsPath := filepath.Join(dir, "tailwind.config.mjs")
	writeFile(t, jsPath, "export default { theme: { extend: { spacing: { 18: '4.5rem' } } } }\n")
	cfg, err = LoadFile(jsPath)
	require.NoError(t, err)
	assert.Equal(t, "4.5rem", cfg.Theme.Extend.Spacing["18"])
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "theme.ini")
	writeFile(t, path, "[theme]\n")
	_, err = LoadFile(path)
	assert.ErrorIs(t, err, ErrUnsupportedExtension)

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "theme: [\n")
	_, err = LoadFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse theme "+bad)

	_, err = LoadFile("  ")
	assert.Error(t, err)
}

func TestSearchPaths(t *testing.T) {
	paths := SearchPaths("/work/site")
	require.GreaterOrEqual(t, len(paths), 2)
	assert.Equal(t, filepath.Join("/work/site", ".themeconf"), paths[0])
	assert.Equal(t, filepath.Join(string(filepath.Separator), "usr", "share", "themeconf"), paths[len(paths)-1])
}

func TestResolvePrecedence(t *testing.T) {
	root := t.TempDir()
	project := filepath.Join(root, "project")
	user := filepath.Join(root, "user")
	system := filepath.Join(root, "system")

	writeFile(t, filepath.Join(system, "theme.json"), `{"theme": {"extend": {"spacing": {"160": "40rem"}, "borderRadius": {"xl": "1rem"}}}}`)
	writeFile(t, filepath.Join(user, "theme.toml"), "[theme.extend.borderRadius]\nxl = \"0.875rem\"\n")
	writeFile(t, filepath.Join(project, "theme.yaml"), "theme:\n  extend:\n    colors:\n      primary:\n        600: \"#3b5b7a\"\n")
	// Shadowed by theme.yaml in the same directory.
	writeFile(t, filepath.Join(project, "theme.json"), `{"theme": {"extend": {"spacing": {"160": "1px"}}}}`)

	explicit := filepath.Join(root, "override.yaml")
	writeFile(t, explicit, "theme:\n  extend:\n    animation:\n      wobble: \"spin 3s linear infinite\"\n")

	resolved, err := ResolveFrom([]string{project, user, system, filepath.Join(root, "absent")}, []string{explicit})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(system, "theme.json"),
		filepath.Join(user, "theme.toml"),
		filepath.Join(project, "theme.yaml"),
		explicit,
	}, resolved.Sources)

	ext := resolved.Config.Theme.Extend
	assert.Equal(t, "40rem", ext.Spacing["160"])
	assert.Equal(t, "32rem", ext.Spacing["128"])
	assert.Equal(t, "0.875rem", ext.BorderRadius["xl"])
	assert.Equal(t, "#3b5b7a", ext.Colors["primary"]["600"])
	assert.Equal(t, "#f0f4f8", ext.Colors["primary"]["50"])
	assert.Equal(t, "spin 3s linear infinite", ext.Animation["wobble"])
	assert.Equal(t, []string{tokens.DefaultContent}, resolved.Config.Content)
	require.NoError(t, tokens.Validate(resolved.Config))
}

func TestResolveDefaultsOnly(t *testing.T) {
	resolved, err := ResolveFrom([]string{filepath.Join(t.TempDir(), "none")}, nil)
	require.NoError(t, err)
	assert.Empty(t, resolved.Sources)
	assert.Equal(t, tokens.Default(), resolved.Config)
}

func TestResolveMissingExtra(t *testing.T) {
	_, err := ResolveFrom(nil, []string{filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
