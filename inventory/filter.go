package inventory

import (
	"log/slog"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled boolean expression evaluated against records.
//
// The expression sees the variables key (base name), name, alternateNames,
// clientAuthEnabled and requestedBy, for example:
//
//	len(alternateNames) > 1
//	key startsWith "db" && requestedBy == "staticuser"
type Filter struct {
	source  string
	program *vm.Program
}

// CompileFilter compiles source. An empty source yields a nil filter, which
// matches every record.
func CompileFilter(source string) (*Filter, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, nil
	}

	program, err := expr.Compile(source, expr.Env(filterEnv("", &Record{})), expr.AsBool())
	if err != nil {
		return nil, ErrFilterCompile.Wrap(err).With(slog.String("source", source))
	}

	return &Filter{source: source, program: program}, nil
}

// String returns the source of f.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}

	return f.source
}

// Match reports whether the record stored under key satisfies f.
func (f *Filter) Match(key string, rec *Record) (bool, error) {
	if f == nil {
		return true, nil
	}

	out, err := expr.Run(f.program, filterEnv(key, rec))
	if err != nil {
		return false, ErrFilterEvaluate.Wrap(err).With(
			slog.String("source", f.source),
			slog.String("key", key),
		)
	}

	ok, _ := out.(bool)

	return ok, nil
}

func filterEnv(key string, rec *Record) map[string]any {
	alternates := rec.AlternateNames
	if alternates == nil {
		alternates = []string{}
	}

	return map[string]any{
		"key":               key,
		"name":              rec.Name,
		"alternateNames":    alternates,
		"clientAuthEnabled": rec.ClientAuthEnabled,
		"requestedBy":       rec.RequestedBy,
	}
}
