package utils

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// SourceExtensions lists the file extensions treated as program sources.
var SourceExtensions = []string{".f", ".for", ".f77", ".txt"}

func IsSourceFile(path string) bool {
	return slices.Contains(SourceExtensions, strings.ToLower(filepath.Ext(path)))
}

// FindSourceFiles walks dir and returns every source file, sorted by path.
func FindSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsSourceFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)

	return files, nil
}
