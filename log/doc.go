// Package log is a small structured logging layer built on [log/slog].
//
// A [Logger] is configured once with functional options and then used for
// leveled, attribute-based messages:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText))
//	logger.Info("ingest finished", slog.Int("records", n))
//
// The package also keeps a default logger used by the package-level
// functions ([Debug], [InfoContext], ...). [Config] rebuilds it from the
// current settings plus the given options, which is how the CLI applies
// its --log-* flags.
//
// # Formats
//
// [FormatText] writes key=value lines; [FormatJSON] writes one JSON object
// per line. With [WithPretty] enabled, text output is colorized using
// lipgloss styles bound to the output writer, so color is dropped
// automatically when the writer is not a terminal.
//
// # Time Layouts
//
// [WithTimeLayout] accepts the named layouts of package [time] (for example
// "RFC3339" or "Kitchen"), a few short aliases ("ms", "us", "ns"), or a custom
// layout string. The layout "none" (or an empty string) omits timestamps.
package log
