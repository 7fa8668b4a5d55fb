package controllers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// parseUintParam reads a numeric route parameter.
func parseUintParam(r *http.Request, name string) (uint, error) {
	v, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	return uint(v), err
}

// firstMessage picks a single deterministic message out of a validation
// error map for the wire response.
func firstMessage(errs map[string]string) string {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return errs[fields[0]]
}
