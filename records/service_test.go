package records

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/datamon-go/apperror"
	"github.com/user/datamon-go/store"
)

func newTestService(t *testing.T) (*RecordService, *store.SnapshotStore) {
	t.Helper()
	dir := t.TempDir()
	recordStore := store.NewRecordStore(filepath.Join(dir, "data.json"))
	snapshotStore := store.NewSnapshotStore(filepath.Join(dir, "filtered_data.json"))
	return NewRecordService(recordStore, snapshotStore), snapshotStore
}

func seedRecords(t *testing.T, s *RecordService, fields ...map[string]any) {
	t.Helper()
	for _, f := range fields {
		_, err := s.Add(context.Background(), f)
		require.NoError(t, err)
	}
}

func intPtr(n int) *int { return &n }

func TestFilterMinimumAge(t *testing.T) {
	s, _ := newTestService(t)
	seedRecords(t, s,
		map[string]any{"age": 15, "sex": "F"},
		map[string]any{"age": 18, "sex": "M"},
		map[string]any{"age": 25, "sex": "F"},
	)

	result, err := s.Filter(context.Background(), FilterParams{AgeMin: intPtr(18)})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Data, 2)

	// The minimum is inclusive and source order is preserved.
	age0, err := result.Data[0].Age()
	require.NoError(t, err)
	age1, err := result.Data[1].Age()
	require.NoError(t, err)
	assert.Equal(t, 18, age0)
	assert.Equal(t, 25, age1)
}

func TestFilterNoParamsIsIdentity(t *testing.T) {
	s, _ := newTestService(t)
	seedRecords(t, s,
		map[string]any{"age": 15, "region": "a"},
		map[string]any{"age": 30, "region": "b"},
	)

	result, err := s.Filter(context.Background(), FilterParams{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Len(t, result.Data, 2)
}

func TestFilterConjunction(t *testing.T) {
	s, _ := newTestService(t)
	seedRecords(t, s,
		map[string]any{"age": 30, "sex": "F", "region": "west", "country": "ES"},
		map[string]any{"age": 30, "sex": "F", "region": "east", "country": "ES"},
		map[string]any{"age": 30, "sex": "M", "region": "west", "country": "ES"},
		map[string]any{"age": 12, "sex": "F", "region": "west", "country": "ES"},
	)

	result, err := s.Filter(context.Background(), FilterParams{
		AgeMin:  intPtr(18),
		Sex:     "F",
		Region:  "west",
		Country: "ES",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
}

func TestFilterStringMatchIsCaseSensitive(t *testing.T) {
	s, _ := newTestService(t)
	seedRecords(t, s, map[string]any{"age": 20, "sex": "f"})

	result, err := s.Filter(context.Background(), FilterParams{Sex: "F"})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.NotNil(t, result.Data, "empty result must still serialize as an array")
}

func TestFilterMalformedAge(t *testing.T) {
	s, _ := newTestService(t)
	seedRecords(t, s,
		map[string]any{"age": 20},
		map[string]any{"age": "unknown"},
	)

	// The malformed record only matters when an age predicate touches it.
	_, err := s.Filter(context.Background(), FilterParams{AgeMin: intPtr(18)})
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))

	result, err := s.Filter(context.Background(), FilterParams{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
}

func TestFilterIsIdempotent(t *testing.T) {
	s, _ := newTestService(t)
	seedRecords(t, s,
		map[string]any{"age": 15, "country": "AR"},
		map[string]any{"age": 40, "country": "AR"},
		map[string]any{"age": 40, "country": "CL"},
	)

	params := FilterParams{AgeMin: intPtr(18), Country: "AR"}
	first, err := s.Filter(context.Background(), params)
	require.NoError(t, err)
	second, err := s.Filter(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, first.Count, second.Count)
	assert.Equal(t, first.Data, second.Data)
}

func TestFilterPersistsSnapshot(t *testing.T) {
	s, snapshots := newTestService(t)
	seedRecords(t, s,
		map[string]any{"age": 15},
		map[string]any{"age": 40},
	)
	ctx := context.Background()

	_, err := s.Filter(ctx, FilterParams{AgeMin: intPtr(18)})
	require.NoError(t, err)

	var snap FilteredResult
	require.NoError(t, snapshots.Load(ctx, &snap))
	assert.Equal(t, 1, snap.Count)

	// A later query overwrites the slot unconditionally.
	_, err = s.Filter(ctx, FilterParams{})
	require.NoError(t, err)
	require.NoError(t, snapshots.Load(ctx, &snap))
	assert.Equal(t, 2, snap.Count)
}
