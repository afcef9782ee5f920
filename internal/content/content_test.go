package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkblue/themeconf/internal/tokens"
)

func touch(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("<div class=\"text-primary-600\"></div>\n"), 0o644))
	}
}

func TestResolveDefaultContent(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		"src/pages/index.astro",
		"src/components/Button.tsx",
		"src/components/Card.vue",
		"src/content/post.mdx",
		"src/styles/global.css",
		"src/env.d.ts",
		"public/favicon.svg",
		"index.html",
	)

	files, err := Resolve(root, []string{tokens.DefaultContent})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"src/components/Button.tsx",
		"src/components/Card.vue",
		"src/content/post.mdx",
		"src/env.d.ts",
		"src/pages/index.astro",
	}, files)
}

func TestResolveExcludesAndDedupes(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		"src/app.ts",
		"src/gen/types.ts",
		"src/gen/nested/more.ts",
		"index.html",
	)

	files, err := Resolve(root, []string{"./src/**/*.ts", "src/app.ts", "!./src/gen/**", "./*.html"})
	require.NoError(t, err)
	assert.Equal(t, []string{"index.html", "src/app.ts"}, files)
}

func TestExcludeAppliesRegardlessOfPosition(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "src/app.ts", "src/gen/types.ts")

	patterns := []string{"!./src/gen/**", "./src/**/*.ts"}
	files, err := Resolve(root, patterns)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/app.ts"}, files)

	ok, err := Match(patterns, "src/gen/types.ts")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolveOutsideRoot(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "site")
	touch(t, base, "shared/ui/Badge.tsx", "site/src/main.ts")

	files, err := Resolve(root, []string{"./src/**/*.ts", "../shared/**/*.tsx"})
	require.NoError(t, err)
	assert.Equal(t, []string{"../shared/ui/Badge.tsx", "src/main.ts"}, files)
}

func TestResolveNoMatches(t *testing.T) {
	files, err := Resolve(t.TempDir(), []string{"./src/**/*.astro"})
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.NotNil(t, files)
}

func TestResolveBadPattern(t *testing.T) {
	for _, pattern := range []string{"", "!", "./src/[", "  "} {
		_, err := Resolve(t.TempDir(), []string{pattern})
		require.Error(t, err, pattern)
		assert.ErrorIs(t, err, ErrBadPattern, pattern)
	}
}

func TestMatch(t *testing.T) {
	patterns := []string{tokens.DefaultContent, "!./src/legacy/**"}

	ok, err := Match(patterns, "src/components/Button.tsx")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Match(patterns, "./src/pages/blog/[slug].astro")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Match(patterns, "src/legacy/Old.jsx")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = Match(patterns, "src/styles/global.css")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = Match([]string{"src/{a"}, "src/a")
	assert.ErrorIs(t, err, ErrBadPattern)
}

func TestCountByExt(t *testing.T) {
	counts := CountByExt([]string{"a.ts", "b/c.ts", "d.astro", "Makefile"})
	assert.Equal(t, map[string]int{"ts": 2, "astro": 1, "": 1}, counts)
}
