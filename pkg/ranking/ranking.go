// Package ranking orders event candidates: a score baseline first, then
// an optional user-chosen sort that replaces the baseline ordering.
package ranking

import (
	"sort"
	"time"

	"seplanner/pkg/catalog"
	"seplanner/pkg/event"
	"seplanner/pkg/scoring"
	"seplanner/pkg/timeparse"
)

// SortType is the user-chosen secondary ordering. The empty value means
// baseline score order.
type SortType string

const (
	SortNone          SortType = ""
	SortDate          SortType = "date"
	SortCommonFriends SortType = "commonFriends"
	SortDistance      SortType = "distance"
)

// Valid reports whether s names a known sort.
func (s SortType) Valid() bool {
	switch s {
	case SortNone, SortDate, SortCommonFriends, SortDistance:
		return true
	}
	return false
}

// Toggle implements the sort-menu behavior: selecting the active sort
// again clears it back to the baseline order.
func Toggle(current, selected SortType) SortType {
	if current == selected {
		return SortNone
	}
	return selected
}

// DefaultVisible is how many ranked results are shown before "show more".
const DefaultVisible = 3

// Visible truncates a ranked list for display.
func Visible(ranked []event.Event, showAll bool) []event.Event {
	if showAll || len(ranked) <= DefaultVisible {
		return ranked
	}
	return ranked[:DefaultVisible]
}

// Rank orders candidates for display using the current wall clock.
func Rank(candidates []event.Event, bucket catalog.Bucket, friends []string, sortType SortType) []event.Event {
	return RankAt(candidates, bucket, friends, sortType, time.Now())
}

// RankAt is Rank with an injected reference time, used by the date sort.
// Step 1 always stable-sorts descending by suitability score; step 2, if
// a sort type is set, re-sorts with a comparator that replaces the
// baseline ordering.
func RankAt(candidates []event.Event, bucket catalog.Bucket, friends []string, sortType SortType, now time.Time) []event.Event {
	ranked := make([]event.Event, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		return scoring.Score(ranked[i], bucket, friends) > scoring.Score(ranked[j], bucket, friends)
	})

	switch sortType {
	case SortDate:
		sort.SliceStable(ranked, func(i, j int) bool {
			return DateKeyAt(ranked[i].TimeLabel, now) < DateKeyAt(ranked[j].TimeLabel, now)
		})
	case SortCommonFriends:
		sort.SliceStable(ranked, func(i, j int) bool {
			return scoring.FriendOverlapCount(ranked[i].Attendees, friends) >
				scoring.FriendOverlapCount(ranked[j].Attendees, friends)
		})
	case SortDistance:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Distance.SortOrder() < ranked[j].Distance.SortOrder()
		})
	}
	return ranked
}

// unknownDateKey sorts unparsable time labels after everything else.
const unknownDateKey = 9999

// DateKeyAt computes the composite date sort key weekdayIndex*100 +
// hour24. Today and tonight resolve to the current weekday, tomorrow to
// the next one, and named weekdays to their next future occurrence: a day
// that already passed this week lands in the following week. A label with
// no resolvable day sorts last; a missing clock time counts as noon.
func DateKeyAt(label string, now time.Time) int {
	p := timeparse.ParseAt(label, now, timeparse.MatchSubstring)
	if !p.HasDay() {
		return unknownDateKey
	}
	if !p.HasHour() {
		p.Hour24 = 12
	}

	today := int(now.Weekday())
	idx := timeparse.DayIndex(p.Day)

	// A relative term already resolved to the right weekday and is never
	// more than a day out, so only named days wrap to next week.
	if !p.Relative && idx < today {
		idx += 7
	}
	return idx*100 + p.Hour24
}
