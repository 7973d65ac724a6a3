package records

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/datamon-go/store"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	dir := t.TempDir()
	service := NewRecordService(
		store.NewRecordStore(filepath.Join(dir, "data.json")),
		store.NewSnapshotStore(filepath.Join(dir, "filtered_data.json")),
	)
	handlers := NewHandlers(service)

	r := chi.NewRouter()
	r.Route("/api/data", func(r chi.Router) {
		r.Get("/", handlers.HandleListRecords())
		r.Post("/", handlers.HandleAddRecord())
		r.Get("/filter", handlers.HandleFilterRecords())
	})
	return r
}

func postRecord(t *testing.T, r http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/data", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHandleListRecordsEmpty(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestHandleAddRecord(t *testing.T) {
	r := newTestRouter(t)

	rr := postRecord(t, r, `{"age":30,"sex":"F","region":"X","country":"Y"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, "F", created["sex"])

	// The record shows up exactly once in the full listing.
	req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
	listRR := httptest.NewRecorder()
	r.ServeHTTP(listRR, req)
	require.Equal(t, http.StatusOK, listRR.Code)

	var listed []map[string]any
	require.NoError(t, json.Unmarshal(listRR.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created["id"], listed[0]["id"])
}

func TestHandleAddRecordRejectsBadBody(t *testing.T) {
	r := newTestRouter(t)

	rr := postRecord(t, r, `not json at all`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "error")
}

func TestHandleFilterRecords(t *testing.T) {
	r := newTestRouter(t)
	for _, body := range []string{
		`{"age":15,"sex":"F","region":"north","country":"ES"}`,
		`{"age":18,"sex":"M","region":"north","country":"ES"}`,
		`{"age":25,"sex":"F","region":"south","country":"ES"}`,
	} {
		require.Equal(t, http.StatusCreated, postRecord(t, r, body).Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/data/filter?age=18&country=ES", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var result struct {
		Count int              `json:"count"`
		Data  []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "M", result.Data[0]["sex"])
	assert.Equal(t, "F", result.Data[1]["sex"])
}

func TestHandleFilterRecordsNoMatches(t *testing.T) {
	r := newTestRouter(t)
	require.Equal(t, http.StatusCreated, postRecord(t, r, `{"age":30,"sex":"F"}`).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/data/filter?sex=M", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"count":0,"data":[]}`, rr.Body.String())
}

func TestHandleFilterRecordsBadAgeParam(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/data/filter?age=abc", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleFilterRecordsMalformedRecord(t *testing.T) {
	r := newTestRouter(t)
	require.Equal(t, http.StatusCreated, postRecord(t, r, `{"age":"not a number"}`).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/data/filter?age=18", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
