package classy

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// DefaultThemeIncludes are the glob patterns used when the caller does
// not supply any.
var DefaultThemeIncludes = []string{"**/*.yaml", "**/*.yml"}

// Gitignore matcher is compiled once per process. A missing .gitignore
// is not an error; discovery simply skips nothing.
var (
	gitignoreOnce    sync.Once
	gitignoreMatcher *ignore.GitIgnore
)

func getGitignore() *ignore.GitIgnore {
	gitignoreOnce.Do(func() {
		matcher, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			return
		}
		gitignoreMatcher = matcher
	})
	return gitignoreMatcher
}

// DiscoverThemeFiles finds theme YAML files under the given directories
// matching the include patterns. Results are deduplicated and contain
// only regular files; gitignored paths are skipped.
func DiscoverThemeFiles(dirs []string, includes []string) ([]string, error) {
	if len(includes) == 0 {
		includes = DefaultThemeIncludes
	}

	var files []string
	for _, dir := range dirs {
		for _, pattern := range includes {
			fullPattern := filepath.Join(dir, pattern)

			// Use doublestar for ** glob support
			matches, err := doublestar.FilepathGlob(fullPattern)
			if err != nil {
				return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
			}

			files = append(files, matches...)
		}
	}

	// Remove duplicates and filter out directories
	seen := make(map[string]bool)
	unique := make([]string, 0, len(files))
	for _, f := range files {
		if seen[f] {
			continue
		}
		seen[f] = true

		if shouldSkipThemeFile(f) {
			continue
		}

		unique = append(unique, f)
	}

	log.Debug().Int("count", len(unique)).Strs("dirs", dirs).Msg("discovered theme files")
	return unique, nil
}

// shouldSkipThemeFile filters out non-files and gitignored paths.
func shouldSkipThemeFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return true
	}

	if matcher := getGitignore(); matcher != nil && matcher.MatchesPath(path) {
		log.Debug().Str("path", path).Msg("skipping gitignored theme file")
		return true
	}

	return false
}
