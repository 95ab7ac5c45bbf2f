package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/practice-tracker/internal/domain"
)

// getPathID extracts a positive problem ID from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, domain.NewValidationError(paramName, "is required")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidID, raw)
	}
	return id, nil
}

// getQueryDate parses a YYYY-MM-DD query parameter. ok is false when the
// parameter is absent.
func getQueryDate(r *http.Request, name string) (date domain.Date, ok bool, err error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return domain.Date{}, false, nil
	}

	date, err = domain.ParseDate(raw)
	if err != nil {
		return domain.Date{}, false, err
	}
	return date, true, nil
}
