// SPDX-License-Identifier: MIT

// Package fasta reads FASTA records for alignment input.
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrNoHeader is returned when sequence data appears before any '>' header.
	ErrNoHeader = errors.New("fasta: sequence data before first header")

	// ErrEmptyID is returned for a header line without an identifier.
	ErrEmptyID = errors.New("fasta: header without identifier")
)

// Record is one FASTA entry. ID is the first whitespace-separated token of
// the header; Seq is the concatenation of its sequence lines, case preserved.
type Record struct {
	ID  string
	Seq []byte
}

// ForEach streams records from r to fn in file order. Blank lines and
// trailing '\r' are ignored. It stops at the first error from fn, the reader,
// or ctx (checked once per record).
func ForEach(ctx context.Context, r io.Reader, fn func(Record) error) error {
	br := bufio.NewReader(r)
	var (
		cur    *Record
		lineNo int
	)
	flush := func() error {
		if cur == nil {
			return nil
		}
		rec := *cur
		cur = nil

		return fn(rec)
	}

	for {
		line, err := br.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return err
		}
		eof := err == io.EOF
		lineNo++
		line = bytes.TrimSpace(line)

		switch {
		case len(line) == 0:
			// blank line
		case line[0] == '>':
			if err := flush(); err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			fields := strings.Fields(string(line[1:]))
			if len(fields) == 0 {
				return fmt.Errorf("line %d: %w", lineNo, ErrEmptyID)
			}
			cur = &Record{ID: fields[0]}
		default:
			if cur == nil {
				return fmt.Errorf("line %d: %w", lineNo, ErrNoHeader)
			}
			cur.Seq = append(cur.Seq, line...)
		}
		if eof {
			break
		}
	}

	return flush()
}

// Read returns all records of r.
func Read(r io.Reader) ([]Record, error) {
	var out []Record
	err := ForEach(context.Background(), r, func(rec Record) error {
		out = append(out, rec)

		return nil
	})

	return out, err
}

// ReadFile opens path with Open and returns all of its records.
func ReadFile(path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return Read(rc)
}

// Open returns a reader for path: "-" is stdin, a ".gz" suffix is
// decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return fh, nil
	}
	gr, err := gzip.NewReader(fh)
	if err != nil {
		fh.Close()

		return nil, err
	}

	return struct {
		io.Reader
		io.Closer
	}{Reader: gr, Closer: fh}, nil
}
