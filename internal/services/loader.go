package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"conftrack/internal/domain"
)

type snapshotLoader struct {
	fetcher domain.SnapshotFetcher
	blob    domain.BlobStore
	logger  *slog.Logger
	now     func() time.Time
}

// NewSnapshotLoader resolves the conference list through the three ordered
// tiers: remote snapshot, local blob, built-in defaults. fetcher may be nil
// when no remote is configured; the remote tier is then skipped.
func NewSnapshotLoader(fetcher domain.SnapshotFetcher, blob domain.BlobStore, logger *slog.Logger) domain.SnapshotLoader {
	return &snapshotLoader{
		fetcher: fetcher,
		blob:    blob,
		logger:  logger,
		now:     time.Now,
	}
}

func (l *snapshotLoader) Load(ctx context.Context) ([]*domain.Conference, domain.Source, error) {
	if l.fetcher != nil {
		records, err := l.fetcher.Fetch(ctx)
		if err == nil {
			l.mirror(ctx, records)
			return records, domain.SourceRemote, nil
		}
		l.logger.WarnContext(ctx, "remote snapshot unavailable, falling back to local",
			"err", &domain.PersistenceError{Tier: domain.SourceRemote, Err: err})
	}

	if records, ok := l.loadLocal(ctx); ok {
		l.mirror(ctx, records)
		return records, domain.SourceLocal, nil
	}

	records := DefaultConferences(l.now())
	l.mirror(ctx, records)
	return records, domain.SourceDefaults, nil
}

func (l *snapshotLoader) loadLocal(ctx context.Context) ([]*domain.Conference, bool) {
	data, err := l.blob.Read(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrBlobNotFound) {
			l.logger.WarnContext(ctx, "local snapshot unreadable",
				"err", &domain.PersistenceError{Tier: domain.SourceLocal, Err: err})
		}
		return nil, false
	}
	records, err := DecodeSnapshot(data)
	if err != nil {
		l.logger.WarnContext(ctx, "local snapshot corrupt, discarding",
			"err", &domain.PersistenceError{Tier: domain.SourceLocal, Err: err})
		return nil, false
	}
	if len(records) == 0 {
		return nil, false
	}
	return records, true
}

// mirror writes the freshly resolved list back to the local blob so the
// next load can fall back to it. Failure is non-fatal.
func (l *snapshotLoader) mirror(ctx context.Context, records []*domain.Conference) {
	if err := l.Save(ctx, records); err != nil {
		l.logger.WarnContext(ctx, "failed to mirror snapshot locally", "err", err)
	}
}

func (l *snapshotLoader) Save(ctx context.Context, records []*domain.Conference) error {
	data, err := EncodeSnapshot(records, l.now(), false)
	if err != nil {
		return &domain.PersistenceError{Tier: domain.SourceLocal, Err: err}
	}
	if err := l.blob.Write(ctx, data); err != nil {
		return &domain.PersistenceError{Tier: domain.SourceLocal, Err: err}
	}
	return nil
}

// DecodeSnapshot parses a persisted snapshot blob. Both the object form
// {version, lastUpdated, conferences} and the legacy bare array are
// accepted.
func DecodeSnapshot(data []byte) ([]*domain.Conference, error) {
	var doc struct {
		Conferences []*domain.Conference `json:"conferences"`
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		if doc.Conferences != nil {
			return doc.Conferences, nil
		}
		// an object without a conferences array is not a snapshot
		if len(data) > 0 && data[0] == '{' {
			return nil, fmt.Errorf("snapshot document has no conferences array")
		}
	}
	var records []*domain.Conference
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return records, nil
}

// EncodeSnapshot serializes records in the object form with the version tag
// and a last-updated timestamp. indent selects the pretty-printed form used
// for exports.
func EncodeSnapshot(records []*domain.Conference, now time.Time, indent bool) ([]byte, error) {
	if records == nil {
		records = []*domain.Conference{}
	}
	snap := domain.Snapshot{
		Version:     domain.SnapshotVersion,
		LastUpdated: now.UTC().Format(time.RFC3339),
		Conferences: records,
	}
	if indent {
		return json.MarshalIndent(snap, "", "  ")
	}
	return json.Marshal(snap)
}

// DefaultConferences are the built-in sample records used when every other
// tier fails. Dates are generated relative to now so the examples stay
// plausible whenever the app is first opened.
func DefaultConferences(now time.Time) []*domain.Conference {
	today := domain.DateOf(now)
	return []*domain.Conference{
		{
			ID:                  uuid.NewString(),
			Name:                "International Conference on Machine Learning",
			Location:            "Honolulu, Hawaii",
			Website:             "https://icml.cc",
			Category:            domain.CategoryComputerScience,
			SubmissionDate:      today.AddDays(7),
			NotificationDate:    today.AddDays(90),
			ConferenceStartDate: today.AddDays(180),
			ConferenceEndDate:   today.AddDays(186),
			Status:              domain.StatusPlanned,
			Notes:               "Premier conference on machine learning research. Planning to submit paper on neural architecture search.",
			CreatedAt:           now,
			UpdatedAt:           now,
		},
		{
			ID:                  uuid.NewString(),
			Name:                "ACM SIGCHI Conference",
			Location:            "Paris, France",
			Website:             "https://chi.acm.org",
			Category:            domain.CategoryComputerScience,
			SubmissionDate:      today.AddDays(-14),
			NotificationDate:    today.AddDays(60),
			ConferenceStartDate: today.AddDays(200),
			ConferenceEndDate:   today.AddDays(205),
			Status:              domain.StatusSubmitted,
			Notes:               "Human-Computer Interaction conference. Submitted paper on UX design patterns.",
			CreatedAt:           now,
			UpdatedAt:           now,
		},
	}
}
