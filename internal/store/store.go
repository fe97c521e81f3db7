// Package store holds the in-memory conference list. The store is the sole
// owner of the records; callers only ever see copies. Every mutation is
// written through to the configured persister before the call returns.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"conftrack/internal/domain"
)

// Persister receives the full record list after every mutation. The whole
// list is written each time; there are no partial writes.
type Persister interface {
	Save(ctx context.Context, records []*domain.Conference) error
}

// Store is an ordered in-memory collection of conference records. A mutex
// serializes mutations so no two writers interleave.
type Store struct {
	mu        sync.Mutex
	records   []*domain.Conference
	persister Persister
	logger    *slog.Logger
	now       func() time.Time
}

// New returns an empty store writing through to the given persister.
// persister may be nil in tests.
func New(persister Persister, logger *slog.Logger) *Store {
	return &Store{
		persister: persister,
		logger:    logger,
		now:       time.Now,
	}
}

// List returns the records in insertion order. The returned slice and its
// elements are copies; mutating them does not affect the store.
func (s *Store) List() []*domain.Conference {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store) snapshot() []*domain.Conference {
	out := make([]*domain.Conference, len(s.records))
	for i, rec := range s.records {
		cp := *rec
		out[i] = &cp
	}
	return out
}

// Insert appends a new record built from the candidate, assigning its
// identifier and timestamps, and returns the stored copy.
func (s *Store) Insert(ctx context.Context, cand *domain.Candidate) (*domain.Conference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	rec := &domain.Conference{
		ID:                  uuid.NewString(),
		Name:                cand.Name,
		Location:            cand.Location,
		Website:             cand.Website,
		Category:            cand.Category,
		SubmissionDate:      cand.SubmissionDate,
		NotificationDate:    cand.NotificationDate,
		ConferenceStartDate: cand.ConferenceStartDate,
		ConferenceEndDate:   cand.ConferenceEndDate,
		Status:              cand.Status,
		Notes:               cand.Notes,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	s.records = append(s.records, rec)
	s.writeThrough(ctx)
	cp := *rec
	return &cp, nil
}

// Replace swaps the record with the given id for one built from the
// candidate, preserving the identifier and CreatedAt and refreshing
// UpdatedAt. Returns domain.ErrNotFound for an unknown id.
func (s *Store) Replace(ctx context.Context, id string, cand *domain.Candidate) (*domain.Conference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.records {
		if rec.ID != id {
			continue
		}
		updated := &domain.Conference{
			ID:                  rec.ID,
			Name:                cand.Name,
			Location:            cand.Location,
			Website:             cand.Website,
			Category:            cand.Category,
			SubmissionDate:      cand.SubmissionDate,
			NotificationDate:    cand.NotificationDate,
			ConferenceStartDate: cand.ConferenceStartDate,
			ConferenceEndDate:   cand.ConferenceEndDate,
			Status:              cand.Status,
			Notes:               cand.Notes,
			CreatedAt:           rec.CreatedAt,
			UpdatedAt:           s.now(),
		}
		s.records[i] = updated
		s.writeThrough(ctx)
		cp := *updated
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

// Remove deletes the record with the given id. Returns true if a record
// was removed.
func (s *Store) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.records {
		if rec.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			s.writeThrough(ctx)
			return true
		}
	}
	return false
}

// ReplaceAll swaps the whole list, assigning identifiers and timestamps to
// records that lack them. Used by the tiered load and the snapshot import.
// When persist is false the new list is not written back (the loader has
// already mirrored it).
func (s *Store) ReplaceAll(ctx context.Context, records []*domain.Conference, persist bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.records = make([]*domain.Conference, 0, len(records))
	for _, rec := range records {
		cp := *rec
		if cp.ID == "" {
			cp.ID = uuid.NewString()
		}
		if cp.CreatedAt.IsZero() {
			cp.CreatedAt = now
		}
		if cp.UpdatedAt.IsZero() {
			cp.UpdatedAt = now
		}
		s.records = append(s.records, &cp)
	}
	if persist {
		s.writeThrough(ctx)
	}
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// writeThrough persists the current list. A failed write is logged and the
// in-memory mutation stands; the next successful write catches up, so a
// crash loses at most the latest unsaved mutation. Caller holds the lock.
func (s *Store) writeThrough(ctx context.Context) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(ctx, s.snapshot()); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "write-through failed", "err", err)
	}
}
