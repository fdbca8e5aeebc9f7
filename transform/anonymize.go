package transform

import (
	"github.com/brianvoe/gofakeit/v7"

	"github.com/andys/csvrec/record"
)

// Anonymize replaces the named fields with fake values. The map value
// selects the kind of fake data: name, first_name, last_name, email,
// phone, address, city, country, company, username, or word for anything
// else. Fields absent from the record, nil, or empty are left untouched.
func Anonymize(fields map[string]string) record.Transform {
	return func(rec record.Record) (record.Record, bool) {
		for field, kind := range fields {
			v, ok := rec[field]
			if !ok || v == nil || v == "" {
				continue
			}
			rec[field] = fakeValue(kind)
		}
		return rec, true
	}
}

func fakeValue(kind string) string {
	switch kind {
	case "name":
		return gofakeit.Name()
	case "first_name":
		return gofakeit.FirstName()
	case "last_name":
		return gofakeit.LastName()
	case "email":
		return gofakeit.Email()
	case "phone":
		return gofakeit.Phone()
	case "address":
		return gofakeit.Address().Address
	case "city":
		return gofakeit.City()
	case "country":
		return gofakeit.Country()
	case "company":
		return gofakeit.Company()
	case "username":
		return gofakeit.Username()
	default:
		return gofakeit.Word()
	}
}
