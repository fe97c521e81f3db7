package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"conftrack/internal/domain"
	"conftrack/internal/query"
	"conftrack/internal/store"
)

type trackerService struct {
	store  *store.Store
	loader domain.SnapshotLoader
	logger *slog.Logger

	mu      sync.Mutex
	filters domain.FilterConfig

	today func() domain.Date
}

// NewTrackerService wires the record store, the tiered loader, and the
// filter config into the core call surface.
func NewTrackerService(st *store.Store, loader domain.SnapshotLoader, logger *slog.Logger) domain.TrackerService {
	return &trackerService{
		store:   st,
		loader:  loader,
		logger:  logger,
		filters: domain.DefaultFilterConfig(),
		today:   func() domain.Date { return domain.DateOf(time.Now()) },
	}
}

func (s *trackerService) Load(ctx context.Context) (domain.Source, int, error) {
	records, source, err := s.loader.Load(ctx)
	if err != nil {
		return source, 0, fmt.Errorf("load snapshot: %w", err)
	}
	// the loader already mirrored the result; no second write-through
	s.store.ReplaceAll(ctx, records, false)
	s.logger.InfoContext(ctx, "conference list loaded",
		"source", string(source), "count", len(records))
	return source, len(records), nil
}

func (s *trackerService) Refresh(ctx context.Context) (domain.Source, int, error) {
	return s.Load(ctx)
}

func (s *trackerService) List(ctx context.Context) ([]*domain.ConferenceView, domain.Stats, error) {
	records := s.store.List()
	today := s.today()
	cfg := s.Filters()

	visible := query.View(records, cfg, today)
	views := make([]*domain.ConferenceView, len(visible))
	for i, rec := range visible {
		views[i] = &domain.ConferenceView{
			Conference: rec,
			Countdown:  query.DaysUntil(rec.SubmissionDate, today),
		}
	}
	return views, query.Stats(records, today), nil
}

func (s *trackerService) Add(ctx context.Context, cand *domain.Candidate) (*domain.Conference, error) {
	cand.Normalize()
	if verr := cand.Validate(); verr != nil {
		return nil, verr
	}
	return s.store.Insert(ctx, cand)
}

func (s *trackerService) Edit(ctx context.Context, id string, cand *domain.Candidate) (*domain.Conference, error) {
	cand.Normalize()
	if verr := cand.Validate(); verr != nil {
		return nil, verr
	}
	return s.store.Replace(ctx, id, cand)
}

func (s *trackerService) Delete(ctx context.Context, id string) error {
	if !s.store.Remove(ctx, id) {
		return domain.ErrNotFound
	}
	return nil
}

func (s *trackerService) SetSearch(search string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Search = search
}

func (s *trackerService) SetSort(key domain.SortKey) error {
	parsed, err := domain.ParseSortKey(string(key))
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.SortBy = parsed
	return nil
}

func (s *trackerService) SetVisibility(showUpcoming, showPast, showActive bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.ShowUpcoming = showUpcoming
	s.filters.ShowPast = showPast
	s.filters.ShowActive = showActive
}

func (s *trackerService) Filters() domain.FilterConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

func (s *trackerService) ImportSnapshot(ctx context.Context, raw []byte) (int, error) {
	records, err := DecodeSnapshot(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	// every record revalidates; the first failure rejects the whole import
	for i, rec := range records {
		cand := candidateOf(rec)
		cand.Normalize()
		if verr := cand.Validate(); verr != nil {
			return 0, fmt.Errorf("record %d (%s): %w", i, rec.Name, verr)
		}
		applyCandidate(rec, cand)
	}
	s.store.ReplaceAll(ctx, records, true)
	s.logger.InfoContext(ctx, "snapshot imported", "count", len(records))
	return len(records), nil
}

func (s *trackerService) ExportJSON(ctx context.Context) ([]byte, error) {
	data, err := EncodeSnapshot(s.store.List(), time.Now(), true)
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return data, nil
}

func candidateOf(rec *domain.Conference) *domain.Candidate {
	return &domain.Candidate{
		Name:                rec.Name,
		Location:            rec.Location,
		Website:             rec.Website,
		Category:            rec.Category,
		SubmissionDate:      rec.SubmissionDate,
		NotificationDate:    rec.NotificationDate,
		ConferenceStartDate: rec.ConferenceStartDate,
		ConferenceEndDate:   rec.ConferenceEndDate,
		Status:              rec.Status,
		Notes:               rec.Notes,
	}
}

func applyCandidate(rec *domain.Conference, cand *domain.Candidate) {
	rec.Name = cand.Name
	rec.Location = cand.Location
	rec.Website = cand.Website
	rec.Category = cand.Category
	rec.Status = cand.Status
	rec.Notes = cand.Notes
}
