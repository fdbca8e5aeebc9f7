// Package engine adapts encoding/csv to the RowParser and Combiner
// interfaces consumed by package record. All tokenizing, quoting, and
// escaping behavior is encoding/csv's; this package only forwards
// configuration.
package engine

import (
	"bytes"
	"encoding/csv"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

type options struct {
	comma            rune
	comment          rune
	lazyQuotes       bool
	trimLeadingSpace bool
	fieldsPerRecord  int
	enc              encoding.Encoding
	outComma         rune
	crlf             bool
}

// Option configures a CSV engine at construction time.
type Option func(*options)

// WithComma sets the field delimiter for both parsing and formatting.
// Default is ','.
func WithComma(c rune) Option {
	return func(o *options) { o.comma = c }
}

// WithComment sets the comment character; lines starting with it are
// ignored by the parser.
func WithComment(c rune) Option {
	return func(o *options) { o.comment = c }
}

// WithLazyQuotes allows bare quotes inside unquoted fields.
func WithLazyQuotes() Option {
	return func(o *options) { o.lazyQuotes = true }
}

// WithTrimLeadingSpace strips leading whitespace from fields.
func WithTrimLeadingSpace() Option {
	return func(o *options) { o.trimLeadingSpace = true }
}

// WithFieldsPerRecord makes the parser require exactly n fields per row.
// By default rows may have varying widths.
func WithFieldsPerRecord(n int) Option {
	return func(o *options) { o.fieldsPerRecord = n }
}

// WithEncoding decodes the input through the given character encoding
// before parsing.
func WithEncoding(enc encoding.Encoding) Option {
	return func(o *options) { o.enc = enc }
}

// WithOutComma sets the delimiter used when formatting output, if it
// differs from the parse delimiter.
func WithOutComma(c rune) Option {
	return func(o *options) { o.outComma = c }
}

// WithCRLF terminates formatted lines with \r\n instead of \n.
func WithCRLF() Option {
	return func(o *options) { o.crlf = true }
}

// CSV is an encoding/csv backed engine. It implements record.RowParser
// on the read side and record.Combiner on the write side.
type CSV struct {
	r        *csv.Reader
	outComma rune
	crlf     bool
	line     bytes.Buffer
}

// New creates a CSV engine reading from r. A nil r is allowed for
// write-only use; Next then reports io.EOF.
func New(r io.Reader, opts ...Option) *CSV {
	o := options{comma: ',', fieldsPerRecord: -1}
	for _, opt := range opts {
		opt(&o)
	}

	e := &CSV{outComma: o.outComma, crlf: o.crlf}
	if e.outComma == 0 {
		e.outComma = o.comma
	}

	if r != nil {
		if o.enc != nil {
			r = transform.NewReader(r, o.enc.NewDecoder())
		}
		cr := csv.NewReader(r)
		cr.Comma = o.comma
		cr.Comment = o.comment
		cr.LazyQuotes = o.lazyQuotes
		cr.TrimLeadingSpace = o.trimLeadingSpace
		cr.FieldsPerRecord = o.fieldsPerRecord
		e.r = cr
	}
	return e
}

// Next returns the fields of the next row, or io.EOF at end of input.
// Parse errors (csv.ParseError) are returned unchanged.
func (e *CSV) Next() ([]string, error) {
	if e.r == nil {
		return nil, io.EOF
	}
	return e.r.Read()
}

// Combine formats fields into the internal line buffer, replacing any
// previously combined line.
func (e *CSV) Combine(fields []string) error {
	e.line.Reset()
	w := e.newWriter(&e.line)
	if err := w.Write(fields); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// String returns the most recently combined line, including its
// terminator.
func (e *CSV) String() string {
	return e.line.String()
}

// Print formats fields and writes them to w in one step.
func (e *CSV) Print(w io.Writer, fields []string) error {
	cw := e.newWriter(w)
	if err := cw.Write(fields); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func (e *CSV) newWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = e.outComma
	cw.UseCRLF = e.crlf
	return cw
}
