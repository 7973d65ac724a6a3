package store

import (
	"encoding/json"
	"fmt"

	"github.com/user/datamon-go/apperror"
)

// Field names the filter engine relies on. Everything else a record carries is
// opaque to the application and round-trips verbatim.
const (
	IDField      = "id"
	AgeField     = "age"
	SexField     = "sex"
	RegionField  = "region"
	CountryField = "country"
)

// Record represents one stored survey entry. It is deliberately a
// semi-structured value rather than a rigid struct: clients may submit any
// set of fields, and all of them are preserved. The typed accessors below
// cover the fields the application actually interprets.
type Record map[string]any

// ID returns the record's generated identifier, or the empty string if the
// record has none (which never happens for records created through Append).
func (r Record) ID() string {
	id, _ := r[IDField].(string)
	return id
}

// Age returns the record's age as an integer. A record with a missing or
// non-numeric age field yields a ValidationError, since such a record cannot
// participate in an age comparison.
func (r Record) Age() (int, error) {
	v, ok := r[AgeField]
	if !ok {
		return 0, apperror.NewValidationError(fmt.Sprintf("record %q has no age field", r.ID()), nil)
	}
	switch n := v.(type) {
	case json.Number:
		// Records loaded from disk carry json.Number (see readJSONFile).
		if i, err := n.Int64(); err == nil {
			return int(i), nil
		}
		if f, err := n.Float64(); err == nil {
			return int(f), nil
		}
	case float64:
		// Records freshly decoded from a request body by encoding/json.
		return int(n), nil
	case int:
		return n, nil
	}
	return 0, apperror.NewValidationError(fmt.Sprintf("record %q has a non-numeric age field", r.ID()), nil)
}

// StringField returns the named field as a string, or the empty string when
// the field is absent or not a string. Used for the exact-match filter fields.
func (r Record) StringField(name string) string {
	s, _ := r[name].(string)
	return s
}
