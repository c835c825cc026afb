package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/angelmondragon/activitycart/pkg/errors"
)

// ParseRequiredQueryInt reads a mandatory integer query parameter.
func ParseRequiredQueryInt(r *http.Request, key string) (int, error) {
	value, err := ParseOptionalQueryInt(r, key)
	if err != nil {
		return 0, err
	}
	if value == nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter is required").WithDetails(map[string]any{"field": key})
	}
	return *value, nil
}

// ParseOptionalQueryInt returns nil when the parameter is absent or blank.
func ParseOptionalQueryInt(r *http.Request, key string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	return &value, nil
}

// ParseOptionalQueryString returns nil when the parameter is absent or blank.
func ParseOptionalQueryString(r *http.Request, key string) *string {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil
	}
	return &raw
}

// ParsePathIndex parses a non-negative list index taken from the URL path.
func ParsePathIndex(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "index must be a non-negative integer").WithDetails(map[string]any{"index": raw})
	}
	return value, nil
}
