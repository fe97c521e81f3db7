// Package query derives the presented view from the record list: search
// filtering, visibility classification, ordering, and deadline countdowns.
// It is pure; the record list and filter config are passed in explicitly.
package query

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"conftrack/internal/domain"
)

var collator = collate.New(language.English, collate.Loose)

// View returns the records passing the filter config, in the configured
// order. today must be midnight-normalized (a calendar date). The sort is
// stable, so equal keys keep their relative insertion order.
func View(records []*domain.Conference, cfg domain.FilterConfig, today domain.Date) []*domain.Conference {
	filtered := make([]*domain.Conference, 0, len(records))
	for _, rec := range records {
		if !matchesSearch(rec, cfg.Search) {
			continue
		}
		upcoming := isUpcoming(rec, today)
		if upcoming && !cfg.ShowUpcoming {
			continue
		}
		if !upcoming && !cfg.ShowPast {
			continue
		}
		// active is orthogonal to the date class: it can exclude a record
		// that already passed its date toggle.
		if rec.Status.Active() && !cfg.ShowActive {
			continue
		}
		filtered = append(filtered, rec)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return less(filtered[i], filtered[j], cfg.SortBy)
	})
	return filtered
}

func matchesSearch(rec *domain.Conference, search string) bool {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(rec.Name), term) ||
		strings.Contains(strings.ToLower(rec.Location), term) ||
		(rec.Notes != "" && strings.Contains(strings.ToLower(rec.Notes), term))
}

func isUpcoming(rec *domain.Conference, today domain.Date) bool {
	return !rec.SubmissionDate.Before(today)
}

func less(a, b *domain.Conference, key domain.SortKey) bool {
	switch key {
	case domain.SortBySubmissionDate:
		return a.SubmissionDate.Before(b.SubmissionDate)
	case domain.SortByConferenceStartDate:
		return a.ConferenceStartDate.Before(b.ConferenceStartDate)
	case domain.SortByLocation:
		return collator.CompareString(a.Location, b.Location) < 0
	default: // name
		return collator.CompareString(a.Name, b.Name) < 0
	}
}

// DaysUntil returns the countdown for a target date relative to today
// (both calendar dates). The urgent window runs from today through seven
// days out.
func DaysUntil(target, today domain.Date) domain.Countdown {
	days := today.DaysUntil(target)
	switch {
	case days < 0:
		return domain.Countdown{Text: "Past"}
	case days == 0:
		return domain.Countdown{Text: "Today", Urgent: true}
	case days == 1:
		return domain.Countdown{Text: "1 day", Urgent: true}
	case days <= 7:
		return domain.Countdown{Text: fmt.Sprintf("%d days", days), Urgent: true}
	default:
		return domain.Countdown{Text: fmt.Sprintf("%d days", days)}
	}
}

// Stats computes the header counters over the full (unfiltered) list.
func Stats(records []*domain.Conference, today domain.Date) domain.Stats {
	stats := domain.Stats{Total: len(records)}
	for _, rec := range records {
		if isUpcoming(rec, today) {
			stats.Upcoming++
		}
		if rec.Status.Active() {
			stats.Active++
		}
	}
	return stats
}
