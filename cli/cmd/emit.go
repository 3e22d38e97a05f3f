package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/jsonify/inventory"
	"github.com/ardnew/jsonify/log"
)

// Emit reads an inventory and writes its records.
type Emit struct{}

// Run executes the emit command.
func (e *Emit) Run(ctx context.Context) error {
	opts := optionsFrom(ctx)
	out := outputFrom(ctx)

	format, err := inventory.ParseFormat(opts.Format)
	if err != nil {
		return ErrEmit.Wrap(err)
	}

	filter, err := inventory.CompileFilter(opts.Filter)
	if err != nil {
		return ErrEmit.Wrap(err)
	}

	store, err := load(ctx, opts)
	if err != nil {
		return err
	}

	selected := store

	if opts.Query != "" {
		selected, err = store.Only(opts.Query)
		if errors.Is(err, inventory.ErrQueryNotFound) {
			log.WarnContext(ctx, "query not found", slog.Any("error", err))

			return notFound(out, opts.Query, suggestions(err))
		}

		if err != nil {
			return ErrEmit.Wrap(err)
		}
	}

	if filter != nil {
		selected, err = selected.Select(filter.Match)
		if err != nil {
			return ErrEmit.Wrap(err)
		}

		log.DebugContext(ctx, "filtered records",
			slog.String("filter", filter.String()),
			slog.Int("records", selected.Len()),
		)
	}

	err = selected.Write(ctx, out, format, opts.layout(), opts.Indent)
	if err != nil {
		return ErrEmit.Wrap(err).With(slog.String("format", format.String()))
	}

	return nil
}

// load reads the inventory named by opts into a new store.
// The parser does not require --path since init shares the flags.
func load(ctx context.Context, opts Options) (*inventory.Store, error) {
	if opts.Path == "" {
		return nil, ErrIngest.Wrap(inventory.ErrInvalidPath.Wrap(ErrMissingPath))
	}

	store := inventory.NewStore(opts.storeOptions()...)

	stats, err := inventory.IngestFile(ctx, opts.Path, store)
	if err != nil {
		return nil, ErrIngest.Wrap(err)
	}

	log.InfoContext(ctx, "read inventory",
		slog.String("path", opts.Path),
		slog.Any("stats", stats),
		slog.Int("records", store.Len()),
	)

	return store, nil
}

// suggestions returns the names a lookup miss offered in place of its query.
func suggestions(err error) []string {
	var e *inventory.Error
	if !errors.As(err, &e) {
		return nil
	}

	for _, a := range e.Attrs() {
		if names, ok := a.Value.Any().([]string); ok && a.Key == "suggestions" {
			return names
		}
	}

	return nil
}

// notFound prints the query miss notice followed by any suggestions.
func notFound(w io.Writer, query string, suggestions []string) error {
	r := lipgloss.NewRenderer(w)
	notice := r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	hint := r.NewStyle().Faint(true)

	_, err := fmt.Fprintln(w, notice.Render(fmt.Sprintf("entry [%s] was not found!", query)))
	if err != nil {
		return err
	}

	if len(suggestions) == 0 {
		return nil
	}

	_, err = fmt.Fprintln(w, hint.Render("did you mean: "+strings.Join(suggestions, ", ")+"?"))

	return err
}
