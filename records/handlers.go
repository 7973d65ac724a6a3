// Package records, as part of the record module.
// This file handles the HTTP requests of the JSON API: listing records,
// appending a record, and running filter queries. Unlike the browser-facing
// form endpoints, failures here are structured JSON error responses.
package records

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/user/datamon-go/apperror"
)

// Handlers wraps the RecordService to provide HTTP handlers.
type Handlers struct {
	service *RecordService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *RecordService) *Handlers {
	return &Handlers{service: service}
}

// HandleListRecords godoc
// @Summary List all records
// @Description Returns every stored record as a JSON array, in insertion order.
// @Tags Records
// @Produce json
// @Success 200 {array} object "All stored records"
// @Failure 503 {object} apperror.ErrorResponse "Record store unavailable"
// @Router /api/data [get]
func (h *Handlers) HandleListRecords() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := h.service.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, records)
	}
}

// HandleAddRecord godoc
// @Summary Append a record
// @Description Stores the JSON object in the request body as a new record. The id is generated server-side; any client-supplied id is overwritten.
// @Tags Records
// @Accept json
// @Produce json
// @Success 201 {object} object "The stored record, including its generated id"
// @Failure 400 {object} apperror.ErrorResponse "Request body is not a JSON object"
// @Failure 503 {object} apperror.ErrorResponse "Record store unavailable"
// @Router /api/data [post]
func (h *Handlers) HandleAddRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields map[string]any
		dec := json.NewDecoder(r.Body)
		// Numbers stay json.Number so the stored record matches the submitted
		// document byte-for-byte aside from the generated id.
		dec.UseNumber()
		if err := dec.Decode(&fields); err != nil {
			writeError(w, apperror.NewBadRequestError("request body must be a JSON object: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		rec, err := h.service.Add(r.Context(), fields)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, rec)
	}
}

// HandleFilterRecords godoc
// @Summary Filter records
// @Description Applies the supplied predicates as a conjunction and returns the matching records with their count. The result also replaces the persisted filter snapshot.
// @Tags Records
// @Produce json
// @Param age query int false "Minimum age (records with age >= this value are kept)"
// @Param sex query string false "Exact match on the sex field"
// @Param region query string false "Exact match on the region field"
// @Param country query string false "Exact match on the country field"
// @Success 200 {object} records.FilteredResult "Matching records and their count"
// @Failure 400 {object} apperror.ErrorResponse "Non-integer age parameter or malformed stored record"
// @Failure 503 {object} apperror.ErrorResponse "Record store unavailable"
// @Router /api/data/filter [get]
func (h *Handlers) HandleFilterRecords() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		params := FilterParams{
			Sex:     query.Get("sex"),
			Region:  query.Get("region"),
			Country: query.Get("country"),
		}
		if ageStr := query.Get("age"); ageStr != "" {
			age, err := strconv.Atoi(ageStr)
			if err != nil {
				writeError(w, apperror.NewBadRequestError("age parameter must be an integer", err))
				return
			}
			params.AgeMin = &age
		}

		result, err := h.service.Filter(r.Context(), params)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// Helper functions for writing responses.

// writeJSON serializes `data` to JSON and writes it with the given status.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// writeError converts any error into a standardized JSON error response using
// the apperror system.
func writeError(w http.ResponseWriter, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred: "+err.Error(), err)
	}
	writeJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
