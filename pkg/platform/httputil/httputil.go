// Package httputil centralizes JSON response writing so every handler emits
// the same envelope. Error bodies carry the domain error code and, except for
// internal errors, the caller-facing description.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "bookstand/pkg/domain-errors"
)

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONIndent writes v pretty-printed. Used where the payload is meant to
// be read by people as much as by programs, such as the full catalog listing.
func WriteJSONIndent(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	_ = enc.Encode(v)
}

// WriteError translates a domain error into the JSON error envelope. Errors
// outside the taxonomy are treated as internal. Internal error descriptions
// are omitted from the body so infrastructure detail never leaks to callers.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	status := dErrors.ToHTTPStatus(code)

	body := map[string]string{"error": string(code)}
	if code != dErrors.CodeInternal {
		body["error_description"] = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
