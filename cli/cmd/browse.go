package cmd

import (
	"context"

	"github.com/ardnew/jsonify/cli/cmd/browse"
	"github.com/ardnew/jsonify/inventory"
)

// Browse reads an inventory and looks up records interactively.
type Browse struct{}

// Run executes the browse command.
func (b *Browse) Run(ctx context.Context) error {
	opts := optionsFrom(ctx)

	format, err := inventory.ParseFormat(opts.Format)
	if err != nil {
		return ErrEmit.Wrap(err)
	}

	filter, err := inventory.CompileFilter(opts.Filter)
	if err != nil {
		return ErrEmit.Wrap(err)
	}

	if opts.Path == inventory.StdinPath {
		return ErrBrowseStdin
	}

	store, err := load(ctx, opts)
	if err != nil {
		return err
	}

	if filter != nil {
		store, err = store.Select(filter.Match)
		if err != nil {
			return ErrEmit.Wrap(err)
		}
	}

	return browse.Run(ctx, store, browse.Options{
		Format: format,
		Indent: opts.Indent,
		Output: outputFrom(ctx),
	})
}
