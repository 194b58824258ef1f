package source

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanDir walks a data directory and discovers usage report JSON files.
// Results are sorted by path so downstream processing is deterministic.
// A missing directory is not an error; it just yields no files.
func ScanDir(dataDir string) ([]string, error) {
	info, err := os.Stat(dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	var files []string

	err = filepath.WalkDir(dataDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // intentionally skip unreadable entries
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if filepath.Ext(name) != ".json" {
			return nil
		}
		// Dotfiles and editor droppings are not usage reports.
		if strings.HasPrefix(name, ".") {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
