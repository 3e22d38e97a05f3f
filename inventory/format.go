package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format is an output encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// Formats lists the accepted format names.
var Formats = []string{"json", "yaml"}

func (f Format) String() string {
	if int(f) >= 0 && int(f) < len(Formats) {
		return Formats[f]
	}

	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	i := slices.Index(Formats, strings.ToLower(strings.TrimSpace(s)))
	if i < 0 {
		return 0, ErrInvalidFormat.With(
			slog.String("format", s),
			slog.String("valid", strings.Join(Formats, ", ")),
		)
	}

	return Format(i), nil
}

// Layout selects how a store is split into documents.
type Layout int

const (
	// LayoutStream writes one document per record.
	LayoutStream Layout = iota
	// LayoutAggregate writes one document keyed by base name.
	LayoutAggregate
)

// DefaultIndent matches the indentation of the records consumed downstream.
const DefaultIndent = 4

// Write renders rec to w.
func (r *Record) Write(ctx context.Context, w io.Writer, f Format, indent int) error {
	switch f {
	case FormatJSON:
		return r.FormatJSON(w, indent)
	case FormatYAML:
		return r.FormatYAML(ctx, w, indent)
	default:
		return ErrInvalidFormat.With(slog.String("format", f.String()))
	}
}

// FormatJSON writes r as a JSON document followed by a newline.
func (r *Record) FormatJSON(w io.Writer, indent int) error {
	data, err := marshalJSON(r, indent)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes r as a YAML document.
func (r *Record) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	data, err := yaml.MarshalContext(ctx, r, yamlOptions(indent)...)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

// Write renders every record of s to w.
//
// In [LayoutStream], JSON documents follow each other separated by newlines
// and YAML documents are separated by "---". An empty store writes nothing.
// In [LayoutAggregate], a single document maps base names to records in
// first-seen order; an empty store writes "{}".
func (s *Store) Write(
	ctx context.Context,
	w io.Writer,
	f Format,
	layout Layout,
	indent int,
) error {
	if layout == LayoutAggregate {
		switch f {
		case FormatJSON:
			return s.FormatJSON(w, indent)
		case FormatYAML:
			return s.FormatYAML(ctx, w, indent)
		default:
			return ErrInvalidFormat.With(slog.String("format", f.String()))
		}
	}

	first := true

	for _, rec := range s.All() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if f == FormatYAML && !first {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}

		first = false

		if err := rec.Write(ctx, w, f, indent); err != nil {
			return err
		}
	}

	return nil
}

// MarshalJSON encodes s as an object keyed by base name, preserving
// first-seen order.
func (s *Store) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for key, rec := range s.All() {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		v, err := json.Marshal(rec)
		if err != nil {
			return nil, err
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// FormatJSON writes s as a single JSON object keyed by base name.
func (s *Store) FormatJSON(w io.Writer, indent int) error {
	data, err := marshalJSON(s, indent)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes s as a single YAML mapping keyed by base name.
func (s *Store) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	if s.Len() == 0 {
		_, err := io.WriteString(w, "{}\n")

		return err
	}

	doc := make(yaml.MapSlice, 0, s.Len())
	for key, rec := range s.All() {
		doc = append(doc, yaml.MapItem{Key: key, Value: rec})
	}

	data, err := yaml.MarshalContext(ctx, doc, yamlOptions(indent)...)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

func marshalJSON(v any, indent int) ([]byte, error) {
	if indent > 0 {
		return json.MarshalIndent(v, "", strings.Repeat(" ", indent))
	}

	return json.Marshal(v)
}

func yamlOptions(indent int) []yaml.EncodeOption {
	if indent > 0 {
		return []yaml.EncodeOption{yaml.Indent(indent), yaml.IndentSequence(true)}
	}

	return []yaml.EncodeOption{yaml.Flow(true)}
}
