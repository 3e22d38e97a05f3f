package inventory

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/jsonify/log"
)

// StdinPath is the input path that reads standard input.
const StdinPath = "-"

// maxLineSize bounds the length of a single inventory line.
const maxLineSize = 1 << 20

// Stats summarizes one ingest pass.
type Stats struct {
	Lines      int // lines read
	Entries    int // entries stored (standalone and members)
	Members    int // cluster members merged
	Skipped    int // lines that are not entries
	Degenerate int // entries dropped for missing fields
}

// LogValue implements [slog.LogValuer].
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("lines", s.Lines),
		slog.Int("entries", s.Entries),
		slog.Int("members", s.Members),
		slog.Int("skipped", s.Skipped),
		slog.Int("degenerate", s.Degenerate),
	)
}

// Ingest reads r line by line and adds every entry to s.
//
// Lines that are not entries are skipped, and entries without a name are
// dropped with a warning. Any other failure ([ErrUnknownParent],
// [ErrDuplicateNode], [ErrReadInput]) stops the pass; s keeps the records
// added before it.
func Ingest(ctx context.Context, r io.Reader, s *Store) (Stats, error) {
	var stats Stats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		stats.Lines++

		entry, ok := Classify(scanner.Text())
		if !ok {
			stats.Skipped++

			log.DebugContext(ctx, "skipped line", slog.Int("line", stats.Lines))

			continue
		}

		entry.Line = stats.Lines

		err := s.Add(ctx, entry)
		switch {
		case errors.Is(err, ErrDegenerateEntry):
			stats.Degenerate++

			log.WarnContext(ctx, "dropped entry", slog.Any("error", err))

			continue

		case err != nil:
			return stats, err
		}

		stats.Entries++

		if IsCluster(entry.Name) {
			stats.Members++
		}
	}

	if err := scanner.Err(); err != nil {
		return stats, ErrReadInput.Wrap(err).With(slog.Int("line", stats.Lines+1))
	}

	log.DebugContext(ctx, "ingest complete", slog.Any("stats", stats))

	return stats, nil
}

// IngestFile opens path (or standard input for [StdinPath]) and ingests it
// into s.
func IngestFile(ctx context.Context, path string, s *Store) (Stats, error) {
	if path == StdinPath {
		return Ingest(ctx, os.Stdin, s)
	}

	if path == "" {
		return Stats{}, ErrInvalidPath.With(slog.String("path", path))
	}

	info, err := os.Stat(path)
	if err != nil {
		return Stats{}, ErrInvalidPath.Wrap(err).With(slog.String("path", path))
	}

	if info.IsDir() {
		return Stats{}, ErrInvalidPath.
			Wrap(errors.New("is a directory")).
			With(slog.String("path", path))
	}

	file, err := os.Open(path)
	if err != nil {
		return Stats{}, ErrReadInput.Wrap(err).With(slog.String("path", path))
	}
	defer file.Close()

	stats, err := Ingest(ctx, file, s)
	if err != nil {
		return stats, WrapError(err).With(slog.String("path", path))
	}

	return stats, nil
}
