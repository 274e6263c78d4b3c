package goldentest

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CollectCases finds every ".picol" file under paths (files or
// directories) and loads its paired ".expected" file.
func CollectCases(paths []string) ([]Case, error) {
	var scripts []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			found, err := collectFromDir(path)
			if err != nil {
				return nil, err
			}
			scripts = append(scripts, found...)
		} else {
			scripts = append(scripts, path)
		}
	}
	sort.Strings(scripts)

	cases := make([]Case, 0, len(scripts))
	for _, path := range scripts {
		name := strings.TrimSuffix(filepath.Base(path), ".picol")
		c, err := loadCase(name, path)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func collectFromDir(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".picol" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
