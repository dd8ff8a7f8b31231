package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExtensions are the extensions processed when none are given
var DefaultExtensions = []string{".svelte"}

// HasValidExtension checks if a file has one of the valid extensions
func HasValidExtension(path string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// IsExcluded reports whether path, relative to root, matches one of the
// exclude globs. Globs use doublestar syntax, e.g. "**/generated/**".
func IsExcluded(root, path string, excludes []string) (bool, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range excludes {
		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// FindFiles finds all files with the given extensions under root, skipping
// hidden directories, node_modules and excluded paths
func FindFiles(root string, extensions []string, recursive bool, excludes []string) ([]string, error) {
	for _, pattern := range excludes {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("exclude pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}

	var files []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		excluded, err := IsExcluded(root, path, excludes)
		if err != nil {
			return err
		}

		// Skip hidden directories and node_modules
		if info.IsDir() {
			baseName := filepath.Base(path)
			if path != root && (strings.HasPrefix(baseName, ".") || baseName == "node_modules" || excluded) {
				return filepath.SkipDir
			}
			// Skip subdirectories if not recursive
			if !recursive && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		if !excluded && HasValidExtension(path, extensions) {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}
