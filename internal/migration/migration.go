// Package migration provides parsing and rename planning for versioned
// migration files. Migration files carry a 14-digit timestamp version
// (YYYYMMDDHHmmss, interpreted as UTC) that this tool converts to a
// unix-epoch-millisecond version.
package migration

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Ext is the migration file extension used in this project's source tree.
const Ext = ".ts"

// versionLayout is the 14-digit timestamp version layout.
const versionLayout = "20060102150405"

// Migration represents a single migration file found on disk.
type Migration struct {
	Version string // Timestamp version (YYYYMMDDHHmmss) or unix-ms version
	Name    string // Human-readable name after the version
	Path    string // Path to the file, forward slashes
}

// filenameRegex matches migration filenames: YYYYMMDDHHmmss_name.ts
var filenameRegex = regexp.MustCompile(`^(\d{14})_(.+)\.ts$`)

// unixVersionRegex matches filenames already carrying a unix-ms version.
var unixVersionRegex = regexp.MustCompile(`^(\d{13})_(.+)\.ts$`)

// ParseFilename parses a migration filename into a Migration struct.
// Returns an error if the filename doesn't match the expected format.
func ParseFilename(filename string) (Migration, error) {
	matches := filenameRegex.FindStringSubmatch(filename)
	if matches == nil {
		return Migration{}, fmt.Errorf("invalid migration filename: %s", filename)
	}

	return Migration{
		Version: matches[1],
		Name:    matches[2],
	}, nil
}

// Base returns the migration base name without extension: version_name.
func (m Migration) Base() string {
	return m.Version + "_" + m.Name
}

// Filename returns the migration filename in the format: version_name.ts
func (m Migration) Filename() string {
	return m.Base() + Ext
}

// VersionTime parses the 14-digit version as a UTC timestamp.
// A version that matched the digit pattern but is not a valid calendar
// date (month 13 and the like) is an error.
func (m Migration) VersionTime() (time.Time, error) {
	t, err := time.Parse(versionLayout, m.Version)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse version %s: %w", m.Version, err)
	}
	return t, nil
}

// UnixMilliVersion converts the 14-digit version to a unix-epoch-millisecond
// version string. The source format has one-second resolution, so the result
// is always a multiple of 1000.
func (m Migration) UnixMilliVersion() (string, error) {
	t, err := m.VersionTime()
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(t.Unix()*1000, 10), nil
}
