package inventory

import (
	"context"
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/ardnew/jsonify/log"
)

const (
	// DefaultDomain qualifies base names into record names.
	DefaultDomain = "garmin.com"
	// DefaultRequestor is the requestedBy value of every record.
	DefaultRequestor = "staticuser"
)

type options struct {
	domain    string
	requestor string
	overwrite bool
	qualify   bool
}

// Option configures a [Store].
type Option func(options) options

// WithDomain sets the domain appended to base names. An empty domain leaves
// names unqualified.
func WithDomain(domain string) Option {
	return func(o options) options {
		o.domain = strings.Trim(strings.TrimSpace(domain), ".")

		return o
	}
}

// WithRequestor sets the requestedBy value of new records.
func WithRequestor(requestor string) Option {
	return func(o options) options {
		o.requestor = requestor

		return o
	}
}

// WithOverwrite makes a repeated standalone node replace the earlier record
// instead of failing with [ErrDuplicateNode]. The replacement keeps the
// position of the earlier record.
func WithOverwrite(enable bool) Option {
	return func(o options) options {
		o.overwrite = enable

		return o
	}
}

// WithQualifiedMembers qualifies cluster member names with the domain before
// they are merged into the parent record.
func WithQualifiedMembers(enable bool) Option {
	return func(o options) options {
		o.qualify = enable

		return o
	}
}

// Store maps base node names to records in first-seen order.
//
// A Store is not safe for concurrent use.
type Store struct {
	opts    options
	records map[string]*Record
	order   []string
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	o := options{domain: DefaultDomain, requestor: DefaultRequestor}
	for _, opt := range opts {
		o = opt(o)
	}

	return &Store{opts: o, records: make(map[string]*Record)}
}

// Qualify returns name with the store's domain appended.
func (s *Store) Qualify(name string) string {
	if s.opts.domain == "" {
		return name
	}

	return name + "." + s.opts.domain
}

// Insert creates the record of a standalone node.
func (s *Store) Insert(name, ip string) (*Record, error) {
	rec := NewRecord(s.Qualify(name), ip, s.opts.requestor)

	if _, exists := s.records[name]; exists {
		if !s.opts.overwrite {
			return nil, ErrDuplicateNode.With(slog.String("name", name))
		}
	} else {
		s.order = append(s.order, name)
	}

	s.records[name] = rec

	return rec, nil
}

// MergeCluster folds a cluster member into the record of parent.
func (s *Store) MergeCluster(parent, member, ip string) (*Record, error) {
	rec, ok := s.records[parent]
	if !ok {
		return nil, ErrUnknownParent.With(
			slog.String("parent", parent),
			slog.String("member", member),
		)
	}

	if s.opts.qualify {
		member = s.Qualify(member)
	}

	rec.Merge(member, ip)

	return rec, nil
}

// Add stores a classified entry, inserting standalone nodes and merging
// cluster members.
func (s *Store) Add(ctx context.Context, e Entry) error {
	if err := e.Valid(); err != nil {
		return err
	}

	parent, member := ParentName(e.Name)
	if !member {
		if _, err := s.Insert(e.Name, e.IP); err != nil {
			return WrapError(err).With(slog.Int("line", e.Line))
		}

		log.DebugContext(ctx, "inserted node",
			slog.Int("line", e.Line),
			slog.String("name", e.Name),
			slog.String("ip", e.IP),
		)

		return nil
	}

	rec, err := s.MergeCluster(parent, e.Name, e.IP)
	if err != nil {
		return WrapError(err).With(slog.Int("line", e.Line))
	}

	log.DebugContext(ctx, "merged cluster member",
		slog.Int("line", e.Line),
		slog.String("parent", parent),
		slog.String("member", e.Name),
		slog.Int("alternates", len(rec.AlternateNames)),
	)

	return nil
}

// Get returns the record stored under the base name.
func (s *Store) Get(name string) (*Record, bool) {
	rec, ok := s.records[name]

	return rec, ok
}

// Lookup is like [Store.Get] but reports a miss as [ErrQueryNotFound]
// carrying the closest known names.
func (s *Store) Lookup(name string) (*Record, error) {
	if rec, ok := s.records[name]; ok {
		return rec, nil
	}

	return nil, ErrQueryNotFound.With(
		slog.String("query", name),
		slog.Any("suggestions", s.Suggest(name, defaultSuggestions)),
	)
}

// Len returns the number of records.
func (s *Store) Len() int { return len(s.order) }

// Keys returns the base names in first-seen order.
func (s *Store) Keys() []string { return slices.Clone(s.order) }

// All iterates over base names and records in first-seen order.
func (s *Store) All() iter.Seq2[string, *Record] {
	return func(yield func(string, *Record) bool) {
		for _, key := range s.order {
			if !yield(key, s.records[key]) {
				return
			}
		}
	}
}

// Select returns a store holding the records for which keep returns true.
// Records are shared with s, not copied.
func (s *Store) Select(keep func(key string, rec *Record) (bool, error)) (*Store, error) {
	sub := &Store{opts: s.opts, records: make(map[string]*Record)}

	for key, rec := range s.All() {
		ok, err := keep(key, rec)
		if err != nil {
			return nil, err
		}

		if ok {
			sub.order = append(sub.order, key)
			sub.records[key] = rec
		}
	}

	return sub, nil
}

// Only returns a store holding just the named record.
func (s *Store) Only(name string) (*Store, error) {
	rec, err := s.Lookup(name)
	if err != nil {
		return nil, err
	}

	return &Store{
		opts:    s.opts,
		records: map[string]*Record{name: rec},
		order:   []string{name},
	}, nil
}
