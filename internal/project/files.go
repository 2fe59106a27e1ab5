package project

import (
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// CollectSources lists files under dir whose extension is in exts, sorted.
// Hidden directories and the cache directory are skipped.
func CollectSources(dir string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = []string{".joy"}
	}
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != dir && len(name) > 1 && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if slices.Contains(exts, filepath.Ext(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
