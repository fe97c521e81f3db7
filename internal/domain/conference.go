package domain

import (
	"context"
	"time"
)

// Category is the research field a conference belongs to.
type Category string

const (
	CategoryComputerScience Category = "computer-science"
	CategoryEngineering     Category = "engineering"
	CategoryMedicine        Category = "medicine"
	CategoryBusiness        Category = "business"
	CategorySocialSciences  Category = "social-sciences"
	CategoryOther           Category = "other"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryComputerScience, CategoryEngineering, CategoryMedicine,
		CategoryBusiness, CategorySocialSciences, CategoryOther:
		return true
	}
	return false
}

// Status is the submission lifecycle state of a tracked conference.
type Status string

const (
	StatusPlanned   Status = "planned"
	StatusSubmitted Status = "submitted"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusAttended  Status = "attended"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPlanned, StatusSubmitted, StatusAccepted, StatusRejected, StatusAttended:
		return true
	}
	return false
}

// Active reports whether the record counts as an active submission
// (submitted or accepted).
func (s Status) Active() bool {
	return s == StatusSubmitted || s == StatusAccepted
}

// Conference represents a tracked conference and its deadlines.
// swagger:model Conference
type Conference struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Location            string    `json:"location"`
	Website             string    `json:"website,omitempty"`
	Category            Category  `json:"category"`
	SubmissionDate      Date      `json:"submissionDate"`
	NotificationDate    Date      `json:"notificationDate"`
	ConferenceStartDate Date      `json:"conferenceStartDate"`
	ConferenceEndDate   Date      `json:"conferenceEndDate"`
	Status              Status    `json:"status"`
	Notes               string    `json:"notes,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Candidate is an unvalidated conference record as submitted by a caller.
// ID and timestamps are assigned by the store, never by the caller.
type Candidate struct {
	Name                string   `json:"name"`
	Location            string   `json:"location"`
	Website             string   `json:"website,omitempty"`
	Category            Category `json:"category"`
	SubmissionDate      Date     `json:"submissionDate"`
	NotificationDate    Date     `json:"notificationDate"`
	ConferenceStartDate Date     `json:"conferenceStartDate"`
	ConferenceEndDate   Date     `json:"conferenceEndDate"`
	Status              Status   `json:"status"`
	Notes               string   `json:"notes,omitempty"`
}

// Countdown is the urgency rendering data for a deadline: a display text
// ("Past", "Today", "1 day", "N days") and whether it is within the urgent
// window (today through seven days out).
type Countdown struct {
	Text   string `json:"text"`
	Urgent bool   `json:"urgent"`
}

// ConferenceView is a conference plus its submission deadline countdown,
// as presented in the list view.
type ConferenceView struct {
	*Conference
	Countdown Countdown `json:"countdown"`
}

// Stats are the header counters of the tracker: total records, records with
// an upcoming submission deadline, and active submissions.
type Stats struct {
	Total    int `json:"total"`
	Upcoming int `json:"upcoming"`
	Active   int `json:"active"`
}

// TrackerService is the core call surface of the tracker. All mutations are
// serialized; every mutation is persisted before the call returns.
type TrackerService interface {
	// Load runs the tiered load (remote, local, defaults) and replaces the
	// in-memory list with the result. It reports which source won.
	Load(ctx context.Context) (Source, int, error)
	// Refresh is Load re-invoked on user request.
	Refresh(ctx context.Context) (Source, int, error)
	// List returns the filtered, sorted view under the current filter
	// config, with countdowns and stats.
	List(ctx context.Context) ([]*ConferenceView, Stats, error)
	Add(ctx context.Context, cand *Candidate) (*Conference, error)
	Edit(ctx context.Context, id string, cand *Candidate) (*Conference, error)
	Delete(ctx context.Context, id string) error
	SetSearch(search string)
	SetSort(key SortKey) error
	SetVisibility(showUpcoming, showPast, showActive bool)
	Filters() FilterConfig
	// ImportSnapshot replaces the whole list from a raw snapshot document.
	// Every record is validated; the first invalid record rejects the whole
	// import and leaves the list unchanged.
	ImportSnapshot(ctx context.Context, raw []byte) (int, error)
	// ExportJSON returns the current list as a pretty-printed snapshot
	// document for download.
	ExportJSON(ctx context.Context) ([]byte, error)
}
