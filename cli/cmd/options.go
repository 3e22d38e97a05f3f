package cmd

import (
	"github.com/ardnew/jsonify/inventory"
)

// Options are the flags shared by every command. [Init] saves them, [Emit]
// acts on them.
type Options struct {
	Path  string `help:"Inventory file, or '-' for stdin."       placeholder:"FILE" short:"p"`
	Query string `help:"Emit only the record of this base name." placeholder:"NAME" short:"q"`

	Format    string `default:"json" enum:"${formats}" help:"Output format (${enum})."`
	Indent    int    `default:"4"                      help:"Indentation width; 0 emits compact output."`
	Aggregate bool   `                                 help:"Emit a single document keyed by base name."`
	Filter    string `                                 help:"Emit only records matching this expression." placeholder:"EXPR"`

	Domain          string `default:"${domain}"    help:"Domain appended to base names."`
	Requestor       string `default:"${requestor}" help:"Value of requestedBy."`
	QualifyMembers  bool   `                       help:"Append the domain to merged cluster member names."`
	AllowDuplicates bool   `                       help:"Let a repeated node replace the earlier record."`
}

// DefaultOptions returns the options of a bare invocation.
func DefaultOptions() Options {
	return Options{
		Format:    inventory.FormatJSON.String(),
		Indent:    inventory.DefaultIndent,
		Domain:    inventory.DefaultDomain,
		Requestor: inventory.DefaultRequestor,
	}
}

func (o Options) storeOptions() []inventory.Option {
	return []inventory.Option{
		inventory.WithDomain(o.Domain),
		inventory.WithRequestor(o.Requestor),
		inventory.WithQualifiedMembers(o.QualifyMembers),
		inventory.WithOverwrite(o.AllowDuplicates),
	}
}

func (o Options) layout() inventory.Layout {
	if o.Aggregate {
		return inventory.LayoutAggregate
	}

	return inventory.LayoutStream
}
