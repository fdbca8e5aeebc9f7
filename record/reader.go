package record

import (
	"errors"
	"io"
)

// RowParser tokenizes one line of delimited input into its fields.
// Next returns io.EOF once the input is exhausted.
type RowParser interface {
	Next() ([]string, error)
}

// Combiner formats records for output. Combine builds an internal line
// buffer from the given fields, String returns the most recently combined
// line including its terminator, and Print formats and writes fields to w
// in one step.
type Combiner interface {
	Combine(fields []string) error
	String() string
	Print(w io.Writer, fields []string) error
}

// ErrNoCombiner is returned by Combine and Print when the reader was
// built without a Combiner.
var ErrNoCombiner = errors.New("record: no combiner configured")

// Reader maps rows produced by a RowParser into keyed Records using a
// mutable, ordered list of column names. The column name list can be
// read, replaced, or appended to at any time, independent of iteration.
//
// Reader is for single-threaded, pull-based use; it does no locking.
type Reader struct {
	parser    RowParser
	combiner  Combiner
	transform Transform

	names     []string
	raw       []string
	headerRow bool
	done      bool
}

// Option configures a Reader.
type Option func(*Reader)

// WithColumnNames supplies the column name list explicitly.
func WithColumnNames(names ...string) Option {
	return func(r *Reader) {
		r.names = names
		r.headerRow = false
	}
}

// WithHeaderRow derives the column name list from the first data row,
// consumed on the first call to Fetch.
func WithHeaderRow() Option {
	return func(r *Reader) {
		r.headerRow = true
	}
}

// WithTransform installs a transform applied to every record built by
// Fetch.
func WithTransform(t Transform) Option {
	return func(r *Reader) {
		r.transform = t
	}
}

// WithCombiner injects the formatting engine backing Combine, String,
// and Print.
func WithCombiner(c Combiner) Option {
	return func(r *Reader) {
		r.combiner = c
	}
}

// New creates a Reader that pulls rows from p.
func New(p RowParser, opts ...Option) *Reader {
	r := &Reader{parser: p}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ColumnNames returns the current column name list.
func (r *Reader) ColumnNames() []string {
	return r.names
}

// SetColumnNames replaces the column name list with names and returns the
// resulting list. An empty or nil slice clears the list; use ColumnNames
// to read it without modifying anything. Setting names also cancels any
// pending header-row derivation.
func (r *Reader) SetColumnNames(names []string) []string {
	r.names = names
	r.headerRow = false
	return r.names
}

// AppendColumnNames appends names to the end of the column name list,
// preserving existing order, and returns the resulting full list. Useful
// for registering names of fields a transform synthesizes that have no
// position in the raw row.
func (r *Reader) AppendColumnNames(names ...string) []string {
	r.names = append(r.names, names...)
	return r.names
}

// Fetch returns the next accepted record. It zips the current column name
// list with the raw row: names beyond the row's width stay absent (a
// transform may fill them in), and raw fields beyond the name list are
// left unkeyed but remain available via Fields. If a transform is
// installed and rejects the record, Fetch silently moves on to the next
// row. At end of input it returns io.EOF, on this and every later call.
func (r *Reader) Fetch() (Record, error) {
	if r.done {
		return nil, io.EOF
	}
	for {
		row, err := r.parser.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.done = true
			}
			return nil, err
		}

		if r.headerRow {
			r.names = row
			r.headerRow = false
			continue
		}

		r.raw = row
		rec := make(Record, len(r.names))
		for i, name := range r.names {
			if i >= len(row) {
				break
			}
			rec[name] = row[i]
		}

		if r.transform != nil {
			out, ok := r.transform(rec)
			if !ok {
				continue
			}
			rec = out
		}
		return rec, nil
	}
}

// Fields returns the most recent raw row exactly as tokenized, positional
// and untouched by any transform.
func (r *Reader) Fields() []string {
	return r.raw
}

// Combine delegates to the injected Combiner's line-building operation.
func (r *Reader) Combine(fields []string) error {
	if r.combiner == nil {
		return ErrNoCombiner
	}
	return r.combiner.Combine(fields)
}

// String returns the most recently combined line as formatted by the
// Combiner, or the empty string if none is configured.
func (r *Reader) String() string {
	if r.combiner == nil {
		return ""
	}
	return r.combiner.String()
}

// Print formats fields and writes them to w via the injected Combiner.
func (r *Reader) Print(w io.Writer, fields []string) error {
	if r.combiner == nil {
		return ErrNoCombiner
	}
	return r.combiner.Print(w, fields)
}
