//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version of jsonify embedded at build time.
var Version = strings.TrimSpace(version)

const (
	// Name is the canonical command identifier. It appears in help text, log
	// records, and the default config path.
	Name = "jsonify"
	// Description is a short summary of the tool used in help output.
	Description = "Convert a node inventory into certificate request records"
)
