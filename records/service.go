package records

import (
	"context"

	"github.com/user/datamon-go/store"
)

// RecordService provides the record operations behind the API: full listing,
// appends, and filter queries. It reads from the record store and owns the
// derived filter snapshot it writes.
type RecordService struct {
	records  *store.RecordStore
	snapshot *store.SnapshotStore
}

// NewRecordService creates a new RecordService.
func NewRecordService(records *store.RecordStore, snapshot *store.SnapshotStore) *RecordService {
	return &RecordService{
		records:  records,
		snapshot: snapshot,
	}
}

// List returns all stored records in insertion order.
func (s *RecordService) List(ctx context.Context) ([]store.Record, error) {
	return s.records.List(ctx)
}

// Add stores the given fields as a new record and returns it, including the
// server-generated id.
func (s *RecordService) Add(ctx context.Context, fields map[string]any) (store.Record, error) {
	return s.records.Append(ctx, fields)
}

// Filter applies the supplied predicates as a conjunction over the full
// record collection, in a fixed order: minimum age, then sex, then region,
// then country. Source order is preserved. The result is persisted as the
// current snapshot, unconditionally replacing the previous one, before it is
// returned.
func (s *RecordService) Filter(ctx context.Context, params FilterParams) (*FilteredResult, error) {
	data, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	if params.AgeMin != nil {
		kept := make([]store.Record, 0, len(data))
		for _, rec := range data {
			age, err := rec.Age()
			if err != nil {
				// A record that cannot answer an age comparison poisons the
				// whole query; the caller sees which record was malformed.
				return nil, err
			}
			if age >= *params.AgeMin {
				kept = append(kept, rec)
			}
		}
		data = kept
	}
	data = filterByField(data, store.SexField, params.Sex)
	data = filterByField(data, store.RegionField, params.Region)
	data = filterByField(data, store.CountryField, params.Country)

	result := &FilteredResult{
		Count: len(data),
		Data:  data,
	}
	if result.Data == nil {
		// Keep the snapshot and the API response a JSON array, never null.
		result.Data = []store.Record{}
	}

	if err := s.snapshot.Save(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// filterByField keeps the records whose named field exactly equals want.
// An empty want means the predicate is absent and the input passes through.
func filterByField(data []store.Record, field, want string) []store.Record {
	if want == "" {
		return data
	}
	kept := make([]store.Record, 0, len(data))
	for _, rec := range data {
		if rec.StringField(field) == want {
			kept = append(kept, rec)
		}
	}
	return kept
}
