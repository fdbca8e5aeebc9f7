package transform

import (
	"testing"

	"github.com/frankban/quicktest"

	"github.com/andys/csvrec/record"
)

func TestChain_AppliesInOrderAndShortCircuits(t *testing.T) {
	c := quicktest.New(t)
	var calls []string
	step := func(name string, keep bool) record.Transform {
		return func(rec record.Record) (record.Record, bool) {
			calls = append(calls, name)
			return rec, keep
		}
	}

	_, ok := Chain(step("a", true), step("b", false), step("c", true))(record.Record{})
	c.Assert(ok, quicktest.IsFalse)
	c.Assert(calls, quicktest.DeepEquals, []string{"a", "b"})
}

func TestRequire_Filters(t *testing.T) {
	c := quicktest.New(t)
	keepFoo := Require(func(rec record.Record) bool {
		return rec["kind"] == "foo"
	})

	_, ok := keepFoo(record.Record{"kind": "foo"})
	c.Assert(ok, quicktest.IsTrue)
	_, ok = keepFoo(record.Record{"kind": "bar"})
	c.Assert(ok, quicktest.IsFalse)
}

func TestRename_MovesValues(t *testing.T) {
	c := quicktest.New(t)
	rec, ok := Rename(map[string]string{"old": "new", "missing": "other"})(
		record.Record{"old": "v", "keep": "k"})
	c.Assert(ok, quicktest.IsTrue)
	c.Assert(rec, quicktest.DeepEquals, record.Record{"new": "v", "keep": "k"})
}

func TestSelect_KeepsOnlyNamedFields(t *testing.T) {
	c := quicktest.New(t)
	rec, ok := Select("a", "c")(record.Record{"a": "1", "b": "2", "c": "3"})
	c.Assert(ok, quicktest.IsTrue)
	c.Assert(rec, quicktest.DeepEquals, record.Record{"a": "1", "c": "3"})
}

func TestAnonymize_ReplacesFields(t *testing.T) {
	c := quicktest.New(t)
	anon := Anonymize(map[string]string{"email": "email", "name": "name"})

	rec, ok := anon(record.Record{
		"email": "real@email.com",
		"name":  "Real Name",
		"id":    "123",
	})
	c.Assert(ok, quicktest.IsTrue)
	c.Assert(rec["email"], quicktest.Not(quicktest.Equals), "real@email.com")
	c.Assert(rec["name"], quicktest.Not(quicktest.Equals), "Real Name")
	c.Assert(rec["id"], quicktest.Equals, "123")
}

func TestAnonymize_LeavesNilAndEmptyValues(t *testing.T) {
	c := quicktest.New(t)
	anon := Anonymize(map[string]string{"email": "email", "phone": "phone"})

	rec, ok := anon(record.Record{"email": nil, "phone": ""})
	c.Assert(ok, quicktest.IsTrue)
	c.Assert(rec["email"], quicktest.IsNil)
	c.Assert(rec["phone"], quicktest.Equals, "")
}

func TestProduct_MultipliesDecimals(t *testing.T) {
	c := quicktest.New(t)
	rec, ok := Product("product", "factor1", "factor2")(
		record.Record{"factor1": "5.4", "factor2": "4.6"})
	c.Assert(ok, quicktest.IsTrue)
	c.Assert(rec["product"], quicktest.Equals, "24.84")
}

func TestProduct_RejectsUnparsableOperands(t *testing.T) {
	c := quicktest.New(t)
	p := Product("product", "factor1", "factor2")

	_, ok := p(record.Record{"factor1": "not a number", "factor2": "4.6"})
	c.Assert(ok, quicktest.IsFalse)
	_, ok = p(record.Record{"factor1": "5.4"})
	c.Assert(ok, quicktest.IsFalse)
}

func TestPositive_RejectsZeroAndNegative(t *testing.T) {
	c := quicktest.New(t)
	pos := Positive("product")

	_, ok := pos(record.Record{"product": "24.84"})
	c.Assert(ok, quicktest.IsTrue)
	_, ok = pos(record.Record{"product": "0"})
	c.Assert(ok, quicktest.IsFalse)
	_, ok = pos(record.Record{"product": "-1.5"})
	c.Assert(ok, quicktest.IsFalse)
}
