// Package planner projects scheduled items onto the week grid, detects
// same-slot clashes, and builds the dashboard groupings.
package planner

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"seplanner/pkg/event"
	"seplanner/pkg/store"
	"seplanner/pkg/timeparse"
)

// Days is the grid's day order.
var Days = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Hours is the grid's slot order: 8 AM through 12 AM (17 one-hour
// slots). Midnight closes the day, so hour 0 comes last.
var Hours = [17]int{8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 0}

// Item is a single placed calendar entry.
type Item struct {
	Title     string
	TimeLabel string
	Variant   event.Variant
	Deadline  bool
	// DeadlineID identifies a deadline item for removal; zero for events.
	DeadlineID int64
}

// Cell addresses one day-hour slot.
type Cell struct {
	Day    string
	Hour24 int
}

// Grid is the populated week view.
type Grid struct {
	Cells map[Cell][]Item
}

// dayOrder returns the Mon-first column index of a day code, or -1.
func dayOrder(day string) int {
	for i, d := range Days {
		if d == day {
			return i
		}
	}
	return -1
}

// hourSlot returns the row index of an hour within the grid, or -1 when
// the hour falls outside the 8 AM-12 AM window.
func hourSlot(hour24 int) int {
	for i, h := range Hours {
		if h == hour24 {
			return i
		}
	}
	return -1
}

// BuildGrid places the union of enrolled events, seeded items, and
// deadlines onto the week grid. Non-deadline items are deduplicated by
// composite key so a joined seeded event appears once. Items whose time
// label does not resolve to both a day and an in-window hour are
// excluded silently.
func BuildGrid(st *store.Store, seeded []event.Event, mode timeparse.MatchMode, now time.Time) *Grid {
	g := &Grid{Cells: make(map[Cell][]Item)}

	seen := make(map[event.Key]bool)
	place := func(it Item) {
		p := timeparse.ParseAt(it.TimeLabel, now, mode)
		if !p.HasDay() || !p.HasHour() {
			return
		}
		if dayOrder(p.Day) < 0 || hourSlot(p.Hour24) < 0 {
			return
		}
		cell := Cell{Day: p.Day, Hour24: p.Hour24}
		g.Cells[cell] = append(g.Cells[cell], it)
	}

	addEvent := func(e event.Event) {
		if seen[e.Key()] {
			return
		}
		seen[e.Key()] = true
		place(Item{
			Title:     e.Title,
			TimeLabel: e.TimeLabel,
			Variant:   st.Classification(e.Key(), e.DefaultVariant),
		})
	}

	for _, e := range st.EnrolledEvents() {
		addEvent(e)
	}
	for _, e := range seeded {
		addEvent(e)
	}
	for _, d := range st.Deadlines() {
		place(Item{Title: d.Title, TimeLabel: d.TimeLabel, Deadline: true, DeadlineID: d.ID})
	}
	return g
}

// Conflict describes one slot where two or more non-deadline items
// clash. Records are descriptive only; nothing is auto-resolved.
type Conflict struct {
	Day           string
	Hour24        int
	Items         []Item
	PriorityCount int
	FlexibleCount int
}

// Conflicts scans the grid for slots holding at least two non-deadline
// items, ordered by day then hour.
func (g *Grid) Conflicts() []Conflict {
	var out []Conflict
	for cell, items := range g.Cells {
		var clashing []Item
		priority, flexible := 0, 0
		for _, it := range items {
			if it.Deadline {
				continue
			}
			clashing = append(clashing, it)
			if it.Variant == event.VariantPriority {
				priority++
			} else {
				flexible++
			}
		}
		if len(clashing) < 2 {
			continue
		}
		out = append(out, Conflict{
			Day:           cell.Day,
			Hour24:        cell.Hour24,
			Items:         clashing,
			PriorityCount: priority,
			FlexibleCount: flexible,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return dayOrder(out[i].Day) < dayOrder(out[j].Day)
		}
		return hourSlot(out[i].Hour24) < hourSlot(out[j].Hour24)
	})
	return out
}

// Summary renders a conflict as one human-readable line, e.g.
// "2 priority events clash on Thu at 8 PM: A, B".
func (c Conflict) Summary() string {
	titles := make([]string, len(c.Items))
	for i, it := range c.Items {
		titles[i] = it.Title
	}
	kind := "events"
	switch {
	case c.PriorityCount == len(c.Items):
		kind = "priority events"
	case c.FlexibleCount == len(c.Items):
		kind = "flexible events"
	}
	return fmt.Sprintf("%d %s clash on %s at %s: %s",
		len(c.Items), kind, c.Day, timeparse.DisplayHour(c.Hour24),
		strings.Join(titles, ", "))
}

// TopConflicts truncates the conflicts list the way the calendar view
// does (at most n summaries shown).
func TopConflicts(conflicts []Conflict, n int) []Conflict {
	if len(conflicts) <= n {
		return conflicts
	}
	return conflicts[:n]
}
