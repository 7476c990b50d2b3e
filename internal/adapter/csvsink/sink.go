// Package csvsink writes notes as rows of an Anki-importable CSV file.
package csvsink

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/heartmarshall/reverso-notes/internal/app/notemaker"
	"github.com/heartmarshall/reverso-notes/internal/domain"
)

// Sink appends one row per note and flushes after every row, so the file is
// a valid resume point whenever the process stops.
type Sink struct {
	path string
	f    *os.File
	w    *csv.Writer
	log  *slog.Logger
}

// Open opens path for appending, creating it if needed.
func Open(path string, logger *slog.Logger) (*Sink, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("csvsink: open %s: %w", path, err)
	}
	log := logger.With("adapter", "csvsink")
	dropped, err := repairTail(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("csvsink: repair %s: %w", path, err)
	}
	if dropped > 0 {
		log.Warn("dropped incomplete last row", slog.String("path", path), slog.Int64("bytes", dropped))
	}
	return &Sink{
		path: path,
		f:    f,
		w:    csv.NewWriter(f),
		log:  log,
	}, nil
}

// WriteNote appends the note and flushes it to the file.
func (s *Sink) WriteNote(ctx context.Context, note domain.Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.w.Write(notemaker.ToRow(note)); err != nil {
		return fmt.Errorf("csvsink: write row: %w", err)
	}
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return fmt.Errorf("csvsink: flush: %w", err)
	}
	return nil
}

// ExistingKeys returns the first column of every row already in the file.
func (s *Sink) ExistingKeys(ctx context.Context) ([]string, error) {
	keys, err := ReadKeys(s.path)
	if err != nil {
		return nil, err
	}
	s.log.DebugContext(ctx, "existing notes loaded", slog.String("path", s.path), slog.Int("count", len(keys)))
	return keys, nil
}

// Close flushes pending output and closes the file.
func (s *Sink) Close() error {
	s.w.Flush()
	flushErr := s.w.Error()
	closeErr := s.f.Close()
	return errors.Join(flushErr, closeErr)
}

// ReadKeys reads the first column of each row of the CSV file at path.
// A missing file yields no keys.
func ReadKeys(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("csvsink: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var keys []string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvsink: read %s: %w", path, err)
		}
		if len(rec) > 0 && rec[0] != "" {
			keys = append(keys, rec[0])
		}
	}
	return keys, nil
}

// repairTail makes the file safe to append to after a run was killed
// mid-row. A trailing record with an unclosed quoted field is cut off, since
// anything appended after it would land inside that field. A trailing record
// that is merely missing its newline gets one. It returns the number of
// bytes dropped.
func repairTail(f *os.File) (int64, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	size := info.Size()
	if size == 0 {
		return 0, nil
	}

	var (
		inQuotes bool
		boundary int64 // offset just past the last complete record
		last     byte
	)
	r := bufio.NewReader(io.NewSectionReader(f, 0, size))
	for pos := int64(0); ; pos++ {
		c, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case c == '\n' && !inQuotes:
			boundary = pos + 1
		}
		last = c
	}

	if inQuotes {
		if err := f.Truncate(boundary); err != nil {
			return 0, err
		}
		return size - boundary, nil
	}
	if last != '\n' {
		_, err = f.Write([]byte{'\n'})
	}
	return 0, err
}
