package planner

import (
	"seplanner/pkg/event"
	"seplanner/pkg/store"
)

// Dashboard groups the upcoming items (seeded plus enrolled) into the
// "Keep These" priority list and the flexible list, using the same
// classification lookup as the calendar. Deadlines are not part of
// either grouping.
func Dashboard(st *store.Store, seeded []event.Event) (priority, flexible []Item) {
	seen := make(map[event.Key]bool)
	add := func(e event.Event) {
		if seen[e.Key()] {
			return
		}
		seen[e.Key()] = true
		it := Item{
			Title:     e.Title,
			TimeLabel: e.TimeLabel,
			Variant:   st.Classification(e.Key(), e.DefaultVariant),
		}
		if it.Variant == event.VariantPriority {
			priority = append(priority, it)
		} else {
			flexible = append(flexible, it)
		}
	}
	for _, e := range seeded {
		add(e)
	}
	for _, e := range st.EnrolledEvents() {
		add(e)
	}
	return priority, flexible
}
