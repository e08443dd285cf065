package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
)

// maxBodyBytes caps every JSON request body at one megabyte.
const maxBodyBytes = 1048576

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(data); err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON serializes data with the given status code; encoding failures
// are logged, the status line has already gone out by then.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// respondError writes the failure envelope for client-caused errors.
func respondError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Success: false, Error: msg})
}

// respondValidation reports field-level validation failures as a 400.
func respondValidation(w http.ResponseWriter, errs []ValidationError) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Success: false,
		Error:   "validation failed",
		Fields:  errs,
	})
}

// respondServerError writes the 500 envelope. The underlying error text is
// attached only outside production mode; the log always gets it.
func (h *Handler) respondServerError(w http.ResponseWriter, msg string, err error) {
	log.Printf("%s: %v", msg, err)
	resp := ErrorResponse{Success: false, Error: msg}
	if err != nil && !h.cfg.IsProduction() {
		resp.Detail = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, resp)
}
