// Package content expands the record's content globs into the source files
// the utility-CSS toolchain scans.
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrBadPattern is returned for an empty or malformed glob.
var ErrBadPattern = errors.New("bad content pattern")

type pattern struct {
	raw     string
	glob    string
	exclude bool
	outside bool
}

func parsePattern(raw string) (pattern, error) {
	p := pattern{raw: raw}
	glob := strings.TrimSpace(raw)
	if strings.HasPrefix(glob, "!") {
		p.exclude = true
		glob = strings.TrimPrefix(glob, "!")
	}
	glob = strings.TrimPrefix(filepath.ToSlash(glob), "./")
	if glob == "" || !doublestar.ValidatePattern(glob) {
		return p, fmt.Errorf("%w %q", ErrBadPattern, raw)
	}
	p.outside = strings.HasPrefix(glob, "../") || path.IsAbs(glob)
	p.glob = glob
	return p, nil
}

// Resolve expands patterns relative to root. A pattern prefixed with "!"
// excludes the files it matches wherever it appears in the list. The result
// is sorted, unique and slash-separated, relative to root.
func Resolve(root string, patterns []string) ([]string, error) {
	if root == "" {
		root = "."
	}

	parsed := make([]pattern, 0, len(patterns))
	for _, raw := range patterns {
		p, err := parsePattern(raw)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, p)
	}

	fsys := os.DirFS(root)
	seen := make(map[string]bool)
	for _, p := range parsed {
		if p.exclude {
			continue
		}
		matches, err := p.expand(fsys, root)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			seen[match] = true
		}
	}

	files := make([]string, 0, len(seen))
	for file := range seen {
		if excluded(parsed, file) {
			continue
		}
		files = append(files, file)
	}
	sort.Strings(files)
	return files, nil
}

func (p pattern) expand(fsys fs.FS, root string) ([]string, error) {
	if !p.outside {
		matches, err := doublestar.Glob(fsys, p.glob, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", p.raw, err)
		}
		return matches, nil
	}

	full := p.glob
	if !path.IsAbs(full) {
		full = filepath.ToSlash(root) + "/" + full
	}
	matches, err := doublestar.FilepathGlob(filepath.FromSlash(full), doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("expand %q: %w", p.raw, err)
	}
	out := make([]string, 0, len(matches))
	for _, match := range matches {
		rel, err := filepath.Rel(root, match)
		if err != nil {
			return nil, fmt.Errorf("relativize %s: %w", match, err)
		}
		out = append(out, filepath.ToSlash(rel))
	}
	return out, nil
}

func excluded(patterns []pattern, file string) bool {
	for _, p := range patterns {
		if !p.exclude {
			continue
		}
		if doublestar.MatchUnvalidated(p.glob, file) {
			return true
		}
	}
	return false
}

// Match reports whether file, relative to the project root, is covered by
// patterns. As in Resolve, a matching "!" pattern excludes the file wherever
// it appears.
func Match(patterns []string, file string) (bool, error) {
	file = strings.TrimPrefix(filepath.ToSlash(file), "./")
	matched := false
	for _, raw := range patterns {
		p, err := parsePattern(raw)
		if err != nil {
			return false, err
		}
		if !doublestar.MatchUnvalidated(p.glob, file) {
			continue
		}
		if p.exclude {
			return false, nil
		}
		matched = true
	}
	return matched, nil
}

// CountByExt tallies files by extension, without the dot. Files without an
// extension count under "".
func CountByExt(files []string) map[string]int {
	counts := make(map[string]int)
	for _, file := range files {
		counts[strings.TrimPrefix(path.Ext(file), ".")]++
	}
	return counts
}
