// Package expiry turns raw inventory snapshots into expiry advice: days
// remaining per item, an urgency tier, and a ranked "needs attention" prefix.
// Everything here is pure; the reference date always comes from the caller so
// nothing is ever computed against a cached clock.
package expiry

import (
	"sort"
	"time"
)

// Item is anything with an expiry date.
type Item interface {
	ExpiresOn() time.Time
}

// Tier is a derived classification, recomputed at query time and never stored.
type Tier string

const (
	TierExpired Tier = "expired"
	TierUrgent  Tier = "urgent"
	TierOK      Tier = "ok"
)

// Items with this many days left (or fewer) count as urgent.
const urgentWithinDays = 3

type Annotated[T Item] struct {
	Item          T    `json:"item"`
	DaysRemaining int  `json:"days_remaining"`
	Tier          Tier `json:"tier"`
}

// DaysRemaining is the whole-day difference between the expiry date and
// today, ignoring any time-of-day component. Negative once expired.
func DaysRemaining(expiresOn, today time.Time) int {
	e := midnight(expiresOn)
	t := midnight(today)
	return int(e.Sub(t).Hours() / 24)
}

func midnight(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// TierFor classifies a days-remaining value.
func TierFor(days int) Tier {
	switch {
	case days < 0:
		return TierExpired
	case days <= urgentWithinDays:
		return TierUrgent
	default:
		return TierOK
	}
}

// Annotate computes days remaining and tier for every item, preserving the
// input order.
func Annotate[T Item](items []T, today time.Time) []Annotated[T] {
	annotated := make([]Annotated[T], 0, len(items))
	for _, it := range items {
		days := DaysRemaining(it.ExpiresOn(), today)
		annotated = append(annotated, Annotated[T]{
			Item:          it,
			DaysRemaining: days,
			Tier:          TierFor(days),
		})
	}
	return annotated
}

// TopN returns the n items closest to expiry, smallest days remaining first.
// The sort is stable: ties keep their input order.
func TopN[T Item](annotated []Annotated[T], n int) []Annotated[T] {
	ranked := make([]Annotated[T], len(annotated))
	copy(ranked, annotated)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DaysRemaining < ranked[j].DaysRemaining
	})

	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
