package transform

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/andys/csvrec/record"
)

var numCtx = apd.BaseContext.WithPrecision(25)

// Product stores the decimal product of fields a and b into dst. Records
// where either operand is missing or fails to parse are rejected. The
// result is stored as a plain decimal string.
func Product(dst, a, b string) record.Transform {
	return func(rec record.Record) (record.Record, bool) {
		x, ok := parseDecimal(rec, a)
		if !ok {
			return rec, false
		}
		y, ok := parseDecimal(rec, b)
		if !ok {
			return rec, false
		}
		var res apd.Decimal
		if _, err := numCtx.Mul(&res, x, y); err != nil {
			return rec, false
		}
		rec[dst] = res.Text('f')
		return rec, true
	}
}

// Positive keeps only records whose named field parses as a decimal
// greater than zero.
func Positive(field string) record.Transform {
	return func(rec record.Record) (record.Record, bool) {
		d, ok := parseDecimal(rec, field)
		if !ok {
			return rec, false
		}
		return rec, d.Sign() > 0
	}
}

func parseDecimal(rec record.Record, name string) (*apd.Decimal, bool) {
	s, ok := fieldString(rec, name)
	if !ok {
		return nil, false
	}
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, false
	}
	return d, true
}
