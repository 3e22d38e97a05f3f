package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// ConfigBase is the base name of the YAML configuration file.
const ConfigBase = "config.yaml"

// Prefix returns the base name of the running executable, used as the name of
// the configuration directory.
//
// The following substitutions are applied:
//   - "__debug_bin<N>" (dlv output): replaced with [Name]
//   - "^\.+" (dot-prefixed names): leading dots removed
//   - "<pkg>.test" (go test binaries): replaced with [Name]
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(
	func() string {
		id := os.Args[0]
		if exe, err := os.Executable(); err == nil {
			id = exe
		}

		id = filepath.Base(id)
		id = strings.TrimSuffix(id, filepath.Ext(id))

		for rex, rep := range map[*regexp.Regexp]string{
			regexp.MustCompile(`^__debug_bin\d+$`): Name,
			regexp.MustCompile(`^\.+`):             "",
		} {
			id = rex.ReplaceAllString(id, rep)
		}

		if id == "" || strings.HasSuffix(os.Args[0], ".test") {
			id = Name
		}

		return id
	},
)

// ConfigDir returns the directory holding the configuration file. It is not
// cached so tests can relocate it with XDG_CONFIG_HOME.
func ConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir, err = os.UserHomeDir()
		if err == nil {
			dir = filepath.Join(dir, ".config")
		} else {
			dir = "."
		}
	}

	return filepath.Join(dir, Prefix())
}

// ConfigFile returns the absolute path of the default configuration file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigBase)
}

// CacheDir returns the directory holding transient files such as profiles.
func CacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir, err = os.UserHomeDir()
		if err == nil {
			dir = filepath.Join(dir, ".cache")
		} else {
			dir = "."
		}
	}

	return filepath.Join(dir, Prefix())
}
