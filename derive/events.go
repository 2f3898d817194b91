package derive

import (
	"sort"
	"time"

	"github.com/pagemark/go-catalog-client/catalog"
)

// recentWindow is how far back an event still counts as recent.
const recentWindow = 7 * 24 * time.Hour

// EventBuckets is the temporal partition of an event list. Every event
// lands in at most one bucket; an event more than seven days past and not
// today belongs to none of them.
type EventBuckets struct {
	// Current holds events starting on the same calendar day as the
	// reference instant, in input order.
	Current []catalog.Event
	// Upcoming holds events starting strictly after the reference
	// instant on a later day, ascending by start time. Truncation
	// ("next 3") is the caller's concern.
	Upcoming []catalog.Event
	// Recent holds events within the closed trailing seven-day window
	// that are not already current, in input order.
	Recent []catalog.Event
}

// ClassifyEvents partitions events against the reference instant now.
// now is injected rather than read from the clock so classification
// stays a pure function; calendar-day comparison uses now's location.
//
// Precedence: an event today is current even though today also falls
// inside the trailing recent window, and even when its start is still
// ahead of now.
func ClassifyEvents(events []catalog.Event, now time.Time) EventBuckets {
	var b EventBuckets
	horizon := now.Add(-recentWindow)

	for _, e := range events {
		start := e.StartTime.In(now.Location())
		switch {
		case sameDay(start, now):
			b.Current = append(b.Current, e)
		case start.After(now):
			b.Upcoming = append(b.Upcoming, e)
		case !start.Before(horizon):
			b.Recent = append(b.Recent, e)
		}
	}

	sort.SliceStable(b.Upcoming, func(i, j int) bool {
		return b.Upcoming[i].StartTime.Before(b.Upcoming[j].StartTime)
	})
	return b
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
