package handler

import (
	"errors"
	"io"
	"net/http"

	"BattleFS/internal/domain"
	"BattleFS/internal/platform/codec/lzw"

	json "github.com/json-iterator/go"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

func WriteError(w http.ResponseWriter, err error) {
	WriteJSON(w, StatusFor(err), ErrorResponse{Error: err.Error()})
}

// StatusFor maps store errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, domain.ErrIO), errors.Is(err, domain.ErrNotADirectory):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDecode), errors.Is(err, lzw.ErrInvalidCode), errors.Is(err, lzw.ErrMalformedInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotInitialized):
		return http.StatusPreconditionFailed
	case errors.Is(err, domain.ErrNotImplemented):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// DecodeBody reads a JSON body into v. An empty body leaves v untouched.
func DecodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
