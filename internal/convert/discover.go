package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// extensionGroups lists the eligible source extensions in processing order:
// the PNG group completes before the JPG group starts.
var extensionGroups = []string{".png", ".jpg"}

// Discover lists eligible source images in dir, keyed by extension group.
// Matching is case-insensitive and non-recursive; dotfiles and directories
// are skipped. Each group comes back sorted for a deterministic processing
// order. An absent group is simply missing from the map.
func Discover(dir string) (map[string][]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %q: %w", dir, err)
	}

	groups := make(map[string][]string, len(extensionGroups))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		for _, group := range extensionGroups {
			if ext == group {
				groups[group] = append(groups[group], filepath.Join(dir, name))
				break
			}
		}
	}

	for _, files := range groups {
		sort.Strings(files)
	}
	return groups, nil
}
