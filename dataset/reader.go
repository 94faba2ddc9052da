package dataset

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 16 << 20

// ReadOption configures Read.
type ReadOption func(*readOptions)

type readOptions struct {
	lineRecords bool
}

// WithLineRecords makes every non-blank line exactly one record, so a short
// or long line is reported with its line number instead of shifting the
// following records.
func WithLineRecords() ReadOption {
	return func(o *readOptions) { o.lineRecords = true }
}

// Read parses whitespace-separated numbers from r into records of width
// components each.
//
// Implementation:
//   - Stage 1: scan lines, split each into fields.
//   - Stage 2: parse every field as a finite float64.
//   - Stage 3: group fields into records (across lines, or per line with
//     WithLineRecords).
//
// Errors: ErrInvalidInput, ErrDimensionMismatch, ErrEmpty (see package doc),
// or the reader's own error wrapped with context.
func Read(r io.Reader, width int, opts ...ReadOption) (*Set, error) {
	if width < 1 {
		return nil, errors.Wrapf(ErrInvalidInput, "width %d", width)
	}
	var o readOptions
	for _, opt := range opts {
		opt(&o)
	}

	s := &Set{width: width}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		line    int
		pending = make(Vector, 0, width)
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if o.lineRecords && len(fields) != width {
			return nil, errors.Wrapf(ErrDimensionMismatch, "line %d: got %d components, want %d", line, len(fields), width)
		}
		for col, tok := range fields {
			x, err := parseToken(tok)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d, field %d", line, col+1)
			}
			pending = append(pending, x)
			if len(pending) == width {
				s.vectors = append(s.vectors, pending)
				pending = make(Vector, 0, width)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "dataset: read")
	}
	if len(pending) != 0 {
		return nil, errors.Wrapf(ErrDimensionMismatch, "trailing record has %d components, want %d", len(pending), width)
	}
	if len(s.vectors) == 0 {
		return nil, ErrEmpty
	}

	return s, nil
}

// ReadFile opens path and reads it with Read.
func ReadFile(path string, width int, opts ...ReadOption) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: open %q", path)
	}
	defer f.Close()

	s, err := Read(f, width, opts...)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s", path)
	}

	return s, nil
}

// parseToken parses one numeric token, rejecting NaN and ±Inf.
func parseToken(tok string) (float64, error) {
	x, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidInput, "token %q is not a number", tok)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, errors.Wrapf(ErrInvalidInput, "token %q is not finite", tok)
	}

	return x, nil
}
