// Package transform provides ready-made record transforms for use with
// record.WithTransform. Each transform takes the record explicitly and
// returns it along with a keep flag; returning false rejects the record.
package transform

import (
	"fmt"

	"github.com/andys/csvrec/record"
)

// Chain composes transforms left to right. The first rejection wins and
// short-circuits the rest.
func Chain(ts ...record.Transform) record.Transform {
	return func(rec record.Record) (record.Record, bool) {
		for _, t := range ts {
			var ok bool
			rec, ok = t(rec)
			if !ok {
				return rec, false
			}
		}
		return rec, true
	}
}

// Require keeps only records matching pred.
func Require(pred func(record.Record) bool) record.Transform {
	return func(rec record.Record) (record.Record, bool) {
		return rec, pred(rec)
	}
}

// Rename renames record keys per mapping (old name to new name). Keys
// absent from the record are ignored.
func Rename(mapping map[string]string) record.Transform {
	return func(rec record.Record) (record.Record, bool) {
		for old, name := range mapping {
			if v, ok := rec[old]; ok {
				rec[name] = v
				delete(rec, old)
			}
		}
		return rec, true
	}
}

// Select keeps only the given fields, dropping everything else.
func Select(fields ...string) record.Transform {
	return func(rec record.Record) (record.Record, bool) {
		kept := make(record.Record, len(fields))
		for _, f := range fields {
			if v, ok := rec[f]; ok {
				kept[f] = v
			}
		}
		return kept, true
	}
}

func fieldString(rec record.Record, name string) (string, bool) {
	v, ok := rec[name]
	if !ok {
		return "", false
	}
	if s, isStr := v.(string); isStr {
		return s, true
	}
	return fmt.Sprint(v), true
}
