package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	perrors "github.com/cristianoliveira/peekshell/internal/errors"
)

const kindUnauthorized = "unauthorized"

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

func httpError(w http.ResponseWriter, code int, kind string, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(errorBody{Error: errorDetail{
		Message: fmt.Sprintf(format, args...),
		Kind:    kind,
	}})
}

// domainError writes err with its kind preserved and a matching status code.
func domainError(w http.ResponseWriter, err error) {
	kind := perrors.Kind(err)
	httpError(w, statusForKind(kind), kind, "%s", err.Error())
}

func statusForKind(kind string) int {
	switch kind {
	case perrors.KindInvalid:
		return http.StatusBadRequest
	case perrors.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
