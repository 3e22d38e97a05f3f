// Package cli contains the command line interface for jsonify.
//
// # Usage
//
//	jsonify -p inventory.txt                  # one JSON document per record
//	jsonify -p inventory.txt -q node1         # a single record
//	jsonify -p - --aggregate < inventory.txt  # one document keyed by name
//	jsonify -p inventory.txt --format=yaml --filter='len(alternateNames) > 1'
//	jsonify init                              # save current flags as config
//
// Emit is the default command, so the flags above need no subcommand.
//
// # Configuration
//
// Flag defaults are read from $XDG_CONFIG_HOME/jsonify/config.yaml when it
// exists. The file is a flat YAML mapping from flag name to value, and
// command-line flags override it. `jsonify init` writes the file from the
// current flag values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-file: Write logs to a file instead of stderr
//   - --log-time: Set timestamp format (RFC3339, Kitchen, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     $XDG_CACHE_HOME/jsonify/pprof)
package cli
