package atomize

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// DefaultIncludes are the glob patterns used when a directory is given without includes
var DefaultIncludes = []string{"**/*.css", "**/*.json", "**/*.jsonc"}

// ScanInputs expands a path into input files. A file is returned as is;
// a directory is matched against includes (doublestar globs relative to it),
// skipping files excluded by the directory's .gitignore.
func ScanInputs(root string, includes []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	if len(includes) == 0 {
		includes = DefaultIncludes
	}

	gi := loadGitIgnore(root)

	seen := make(map[string]bool)
	var files []string
	for _, pattern := range includes {
		matches, err := doublestar.FilepathGlob(filepath.Join(root, pattern))
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, m := range matches {
			if seen[m] || shouldSkipFile(gi, root, m) {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}

	sort.Strings(files)
	return files, nil
}

// loadGitIgnore compiles root/.gitignore. A missing file means nothing is ignored.
func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// shouldSkipFile reports directories and gitignored paths
func shouldSkipFile(gi *ignore.GitIgnore, root, path string) bool {
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return true
	}
	if gi == nil {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return gi.MatchesPath(filepath.ToSlash(rel))
}
