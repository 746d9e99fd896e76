// internal/migration/scan.go
package migration

import (
	"fmt"
	"os"
	"path"
	"regexp"
	"sort"
	"strings"
)

// ReadFromDir lists timestamp-versioned migrations in dir, sorted by file
// name ascending. Files with the migration extension that don't carry a
// 14-digit version are skipped, not an error; other migration tooling may
// keep files in the same directory.
func ReadFromDir(dir string) ([]Migration, error) {
	return readMatching(dir, filenameRegex)
}

// ReadRenamed lists migrations in dir that already carry a unix-millisecond
// version, sorted by file name ascending.
func ReadRenamed(dir string) ([]Migration, error) {
	return readMatching(dir, unixVersionRegex)
}

func readMatching(dir string, re *regexp.Regexp) ([]Migration, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations directory: %w", err)
	}

	var migrations []Migration
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}

		matches := re.FindStringSubmatch(entry.Name())
		if matches == nil {
			continue
		}

		migrations = append(migrations, Migration{
			Version: matches[1],
			Name:    matches[2],
			Path:    path.Join(dir, entry.Name()),
		})
	}

	// Lexicographic filename order; the zero-padded fixed-width version
	// prefix makes this chronological as well.
	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Filename() < migrations[j].Filename()
	})

	return migrations, nil
}
