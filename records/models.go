// Package records implements the record API and the filter engine: listing
// and appending survey records, and computing conjunctive filter queries over
// them. This file defines the data structures exchanged with API clients.
package records

import (
	"github.com/user/datamon-go/store"
)

// FilterParams holds the optional predicates of a filter query. Every field
// may be absent; absent predicates impose no constraint.
type FilterParams struct {
	// AgeMin keeps records whose age is greater than or equal to it.
	// A pointer distinguishes "no age filter" from "minimum age 0".
	AgeMin *int
	// Sex, Region, and Country are exact, case-sensitive string matches.
	// The empty string means the predicate is absent.
	Sex     string
	Region  string
	Country string
}

// FilteredResult is the derived output of a filter query: the matching
// records and their count. It is regenerated on every query and persisted as
// a single overwritten snapshot; it is never a source of truth.
type FilteredResult struct {
	Count int            `json:"count"`
	Data  []store.Record `json:"data"`
}
