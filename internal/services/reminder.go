package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"conftrack/internal/adapters/email"
	"conftrack/internal/domain"
	"conftrack/internal/query"
	"conftrack/internal/store"
)

type reminderService struct {
	store     *store.Store
	mailer    domain.Mailer
	recipient string
	logger    *slog.Logger
	today     func() domain.Date
}

// NewReminderService emails a digest of submission deadlines inside the
// urgent window (today through seven days out) to the configured recipient.
func NewReminderService(st *store.Store, mailer domain.Mailer, recipient string, logger *slog.Logger) domain.ReminderService {
	return &reminderService{
		store:     st,
		mailer:    mailer,
		recipient: recipient,
		logger:    logger,
		today:     func() domain.Date { return domain.DateOf(time.Now()) },
	}
}

func (s *reminderService) SendDigest(ctx context.Context) (int, error) {
	today := s.today()
	var deadlines []domain.DeadlineReminder
	for _, rec := range s.store.List() {
		cd := query.DaysUntil(rec.SubmissionDate, today)
		if !cd.Urgent {
			continue
		}
		deadlines = append(deadlines, domain.DeadlineReminder{
			Name:           rec.Name,
			Location:       rec.Location,
			SubmissionDate: rec.SubmissionDate,
			Countdown:      cd,
		})
	}
	if len(deadlines) == 0 {
		s.logger.InfoContext(ctx, "no urgent deadlines, skipping reminder")
		return 0, nil
	}
	sort.SliceStable(deadlines, func(i, j int) bool {
		return deadlines[i].SubmissionDate.Before(deadlines[j].SubmissionDate)
	})

	subject, html, text, err := email.RenderReminderDigest(email.ReminderDigestData{Deadlines: deadlines})
	if err != nil {
		return 0, fmt.Errorf("render reminder digest: %w", err)
	}
	if err := s.mailer.Send(s.recipient, subject, html, text); err != nil {
		return 0, fmt.Errorf("send reminder digest: %w", err)
	}
	s.logger.InfoContext(ctx, "reminder digest sent",
		"recipient", s.recipient, "deadlines", len(deadlines))
	return len(deadlines), nil
}
