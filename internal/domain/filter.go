package domain

import "fmt"

// SortKey selects the ordering of the list view.
type SortKey string

const (
	SortByName                SortKey = "name"
	SortByLocation            SortKey = "location"
	SortBySubmissionDate      SortKey = "submissionDate"
	SortByConferenceStartDate SortKey = "conferenceStartDate"
)

// ParseSortKey validates a sort key string.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortByName, SortByLocation, SortBySubmissionDate, SortByConferenceStartDate:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("%w: unknown sort key %q", ErrInvalidInput, s)
}

// FilterConfig is the view configuration: a free-text search, a sort key,
// and three independent visibility toggles. Upcoming and past partition
// records by submission date; active is orthogonal and can exclude a record
// regardless of its date class.
type FilterConfig struct {
	Search       string  `json:"search"`
	SortBy       SortKey `json:"sortBy"`
	ShowUpcoming bool    `json:"showUpcoming"`
	ShowPast     bool    `json:"showPast"`
	ShowActive   bool    `json:"showActive"`
}

// DefaultFilterConfig shows everything, sorted by name.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		SortBy:       SortByName,
		ShowUpcoming: true,
		ShowPast:     true,
		ShowActive:   true,
	}
}
