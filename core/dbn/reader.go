// core/dbn/reader.go

// Package dbn reads Vienna-style dot-bracket files: an optional
// ">header" line, one sequence line, one structure line per record.
// Multi-chain records joined with '&' are flattened before the record
// is emitted, so downstream consumers always see equal-length strings
// over the plain dot-bracket alphabet.
package dbn

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrBadRecord reports a structurally invalid dbn record.
var ErrBadRecord = errors.New("dbn: bad record")

// Record is one parsed entry: sequence and structure are equal-length
// with chain separators already removed.
type Record struct {
	ID        string
	Sequence  string
	Structure string
}

// ReadAllCtx parses dbn records from r, calling emit for each complete
// record. Cancellation via ctx is honored between lines. emit may
// return a non-nil error to stop early.
func ReadAllCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 16 * 1024 * 1024 // chromosome-scale single-line inputs
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		id      string
		seq     string
		sstr    string
		started bool
	)

	flush := func() error {
		if !started {
			return nil
		}
		if seq == "" || sstr == "" {
			return fmt.Errorf("%w: record %q needs a sequence line and a structure line", ErrBadRecord, id)
		}
		s := strings.ReplaceAll(seq, "&", "")
		t := strings.ReplaceAll(sstr, "&", "")
		if len(s) != len(t) {
			return fmt.Errorf("%w: record %q sequence length %d != structure length %d", ErrBadRecord, id, len(s), len(t))
		}
		if err := emit(Record{ID: id, Sequence: s, Structure: t}); err != nil {
			return err
		}
		id, seq, sstr, started = "", "", "", false
		return nil
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id = parseHeaderID(line[1:])
			started = true
			continue
		}
		started = true
		switch {
		case seq == "":
			seq = string(line)
		case sstr == "":
			sstr = string(line)
		default:
			return fmt.Errorf("%w: record %q has more than two data lines", ErrBadRecord, id)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("dbn scan: %w", err)
	}
	return flush()
}

// ReadAll collects every record from r.
func ReadAll(r io.Reader) ([]Record, error) {
	var recs []Record
	err := ReadAllCtx(context.Background(), r, func(rec Record) error {
		recs = append(recs, rec)
		return nil
	})
	return recs, err
}

// ReadPath opens path ("-" for stdin, gzip transparent) and collects
// every record.
func ReadPath(path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return ReadAll(rc)
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
