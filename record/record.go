package record

// Record is a single keyed row: column name to field value. Values start
// out as the raw field strings; transforms may store any type.
type Record map[string]any

// Transform processes a record before it is handed to the caller. It
// returns the (possibly mutated) record and whether to keep it. Returning
// false rejects the record and the reader moves on to the next row.
type Transform func(Record) (Record, bool)
