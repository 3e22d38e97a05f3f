package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/jsonify/log"
)

// logFormat is a custom type that configures the logger format as a side
// effect of parsing via encoding.TextUnmarshaler.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-format flag, this method is called, allowing us
// to configure the logger early enough to affect error messages during parsing.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel is a custom type that configures the logger level as a side
// effect of parsing via encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level  logLevel  `default:"warn"    enum:"debug,info,warn,error" help:"Set log level."`
	Format logFormat `default:"text"    enum:"json,text"             help:"Set log format."`
	File   string    `                                               help:"Write log records to this file (truncated) instead of stderr." placeholder:"FILE" type:"path"`
	Time   string    `default:"RFC3339"                              help:"Set timestamp format (Go layout, layout name, or none)."`
	Caller bool      `default:"false"                                help:"Include caller information."       negatable:""`
	Pretty bool      `default:"true"                                 help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

// start applies every logging flag to the default logger, writing to the
// log file if one was given and to stderr otherwise. The returned function
// closes the log file.
func (f *logConfig) start(ctx context.Context, stderr io.Writer) (stop func(), err error) {
	var (
		output io.Writer = stderr
		file   *os.File
	)

	if f.File != "" {
		file, err = os.Create(f.File)
		if err != nil {
			return nil, ErrLogFile.Wrap(err).With(slog.String("file", f.File))
		}

		output = file
	}

	log.Config(
		log.WithOutput(output),
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.Time),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty && file == nil),
	)

	logger := log.Default()
	logger.DebugContext(ctx, "logger initialized",
		slog.String("level", logger.Level().String()),
		slog.String("format", logger.Format().String()),
		slog.String("file", f.File),
		slog.String("time", f.Time),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)

	return func() {
		if file == nil {
			return
		}

		log.Config(log.WithOutput(stderr))

		_ = file.Close()
	}, nil
}
