package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// decodeJSON decodes the request body into dst. On failure it writes the
// error response itself and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge,
			errorBody("bad_request", fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)))
		return false
	}
	writeBadRequest(w, "malformed JSON body")
	return false
}

// lineIDParam binds the {lineId} path parameter. On failure it writes a 400
// and returns false.
func lineIDParam(w http.ResponseWriter, r *http.Request) (openapi_types.UUID, bool) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "lineId", chi.URLParam(r, "lineId"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeBadRequest(w, "lineId must be a UUID")
		return openapi_types.UUID{}, false
	}
	return id, true
}

// optionalIntQuery binds an optional integer query parameter; nil means absent.
func optionalIntQuery(r *http.Request, name string) (*int, error) {
	var v *int
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &v); err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}

// optionalStringQuery reports the first value of the named query parameter,
// or nil if the parameter is absent. "?name=" yields a pointer to "".
func optionalStringQuery(r *http.Request, name string) *string {
	values, ok := r.URL.Query()[name]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
