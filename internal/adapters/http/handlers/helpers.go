package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"library-management/internal/core/domain"
)

// dateLayouts are the accepted request date formats, most specific first
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

var errInvalidDate = domain.Validation("Invalid date, use YYYY-MM-DD or RFC3339")

// parseDate parses a request date. Dates without a zone are UTC.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errInvalidDate
}

// parseOptionalDate returns nil for an empty value
func parseOptionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseID parses a positive numeric identifier
func parseID(value string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
