package domain

import "strings"

// Validate checks a candidate before it may be committed. Checks run in a
// fixed order and fail fast on the first violation: required fields, then
// the date ordering chain submission <= notification <= conferenceStart <=
// conferenceEnd. Equal dates pass at every boundary.
func (c *Candidate) Validate() *ValidationError {
	if strings.TrimSpace(c.Name) == "" {
		return &ValidationError{Field: "name", Reason: "name is required"}
	}
	if strings.TrimSpace(c.Location) == "" {
		return &ValidationError{Field: "location", Reason: "location is required"}
	}
	if c.SubmissionDate.After(c.NotificationDate) {
		return &ValidationError{
			Field:  "submissionDate",
			Reason: "submission deadline must be on or before the notification date",
		}
	}
	if c.NotificationDate.After(c.ConferenceStartDate) {
		return &ValidationError{
			Field:  "notificationDate",
			Reason: "notification date must be on or before the conference start date",
		}
	}
	if c.ConferenceStartDate.After(c.ConferenceEndDate) {
		return &ValidationError{
			Field:  "conferenceStartDate",
			Reason: "conference start date must be on or before the end date",
		}
	}
	if !c.Category.Valid() {
		return &ValidationError{Field: "category", Reason: "unknown category"}
	}
	if !c.Status.Valid() {
		return &ValidationError{Field: "status", Reason: "unknown status"}
	}
	return nil
}

// Normalize trims free-text fields and applies enum defaults, mirroring
// what the form layer did in the original app.
func (c *Candidate) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Location = strings.TrimSpace(c.Location)
	c.Website = strings.TrimSpace(c.Website)
	c.Notes = strings.TrimSpace(c.Notes)
	if c.Category == "" {
		c.Category = CategoryOther
	}
	if c.Status == "" {
		c.Status = StatusPlanned
	}
}
