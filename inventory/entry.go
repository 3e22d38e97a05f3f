package inventory

import (
	"log/slog"
	"regexp"
	"strings"
)

var (
	entryPattern   = regexp.MustCompile(`^\w+\s.*\s+\d+\.\d+\.\d+\.\d+\s.*$`)
	namePattern    = regexp.MustCompile(`^\w+\s+([\w\-._]*)`)
	ipPattern      = regexp.MustCompile(`\d+\.\d+\.\d+\.\d+`)
	versionPattern = regexp.MustCompile(`\s([\w\-._]+)$`)
)

// Entry is a classified inventory line.
type Entry struct {
	Line    int    // 1-based line number, zero when unknown
	Name    string // base node name
	IP      string
	Version string // empty when the line has no trailing token
}

// Valid reports an [ErrDegenerateEntry] when a required field is missing.
func (e Entry) Valid() error {
	if e.Name == "" || e.IP == "" {
		return ErrDegenerateEntry.With(
			slog.Int("line", e.Line),
			slog.String("name", e.Name),
			slog.String("ip", e.IP),
		)
	}

	return nil
}

// Normalize replaces tabs with spaces and trims surrounding whitespace.
func Normalize(line string) string {
	return strings.TrimSpace(strings.ReplaceAll(line, "\t", " "))
}

// IsEntry reports whether the normalized line has the shape of an entry.
func IsEntry(line string) bool {
	return entryPattern.MatchString(line)
}

// ExtractName returns the token following the first token of line.
func ExtractName(line string) (string, bool) {
	m := namePattern.FindStringSubmatch(line)
	if m == nil || m[1] == "" {
		return "", false
	}

	return m[1], true
}

// ExtractIP returns the first dotted quad in line.
func ExtractIP(line string) (string, bool) {
	ip := ipPattern.FindString(line)

	return ip, ip != ""
}

// ExtractVersion returns the last whitespace-delimited token of line.
func ExtractVersion(line string) (string, bool) {
	m := versionPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}

	return m[1], true
}

// Classify normalizes line and extracts its fields. It returns false when the
// line is not an entry. An entry whose name could not be extracted is still
// returned; see [Entry.Valid].
func Classify(line string) (Entry, bool) {
	line = Normalize(line)
	if !IsEntry(line) {
		return Entry{}, false
	}

	var e Entry

	e.Name, _ = ExtractName(line)
	e.IP, _ = ExtractIP(line)
	e.Version, _ = ExtractVersion(line)

	return e, true
}
