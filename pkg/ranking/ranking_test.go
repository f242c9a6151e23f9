package ranking

import (
	"testing"
	"time"

	"seplanner/pkg/catalog"
	"seplanner/pkg/event"
)

// 2026-01-07 is a Wednesday.
var refWednesday = time.Date(2026, 1, 7, 9, 0, 0, 0, time.UTC)

func titles(events []event.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Title
	}
	return out
}

func TestToggle(t *testing.T) {
	tests := []struct {
		current  SortType
		selected SortType
		want     SortType
	}{
		{SortNone, SortDate, SortDate},
		{SortDate, SortDate, SortNone},
		{SortDate, SortDistance, SortDistance},
		{SortCommonFriends, SortCommonFriends, SortNone},
	}
	for _, tt := range tests {
		if got := Toggle(tt.current, tt.selected); got != tt.want {
			t.Fatalf("Toggle(%q, %q) = %q, want %q", tt.current, tt.selected, got, tt.want)
		}
	}
}

func TestSortTypeValid(t *testing.T) {
	for _, s := range []SortType{SortNone, SortDate, SortCommonFriends, SortDistance} {
		if !s.Valid() {
			t.Fatalf("%q should be valid", s)
		}
	}
	if SortType("popularity").Valid() {
		t.Fatal("unknown sort type should be invalid")
	}
}

func TestBaselineScoreOrder(t *testing.T) {
	friends := []string{"Lucas Meyer", "Sarah Kim"}
	low := event.Event{Title: "Low", Rating: 2, Distance: event.DistanceFar}
	high := event.Event{
		Title:     "High",
		Rating:    5,
		IsNew:     true,
		Distance:  event.DistanceCampus,
		Attendees: friends,
	}

	ranked := RankAt([]event.Event{low, high}, catalog.BucketHigh, friends, SortNone, refWednesday)
	if ranked[0].Title != "High" || ranked[1].Title != "Low" {
		t.Fatalf("baseline order wrong: %v", titles(ranked))
	}
}

func TestClearingSortRestoresBaseline(t *testing.T) {
	friends := []string{"Lucas Meyer"}
	candidates := []event.Event{
		{Title: "A", TimeLabel: "Friday at 6:00 PM", Rating: 5, Distance: event.DistanceCampus},
		{Title: "B", TimeLabel: "Thursday at 9:00 AM", Rating: 4, Distance: event.DistanceCity},
		{Title: "C", TimeLabel: "Monday at 2:00 PM", Rating: 3, Distance: event.DistanceFar},
	}

	baseline := RankAt(candidates, catalog.BucketMedium, friends, SortNone, refWednesday)
	sorted := RankAt(candidates, catalog.BucketMedium, friends, SortDate, refWednesday)
	cleared := RankAt(candidates, catalog.BucketMedium, friends, SortNone, refWednesday)

	if len(sorted) != len(baseline) {
		t.Fatal("sorting must not change length")
	}
	for i := range baseline {
		if cleared[i].Title != baseline[i].Title {
			t.Fatalf("cleared order %v differs from baseline %v", titles(cleared), titles(baseline))
		}
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	candidates := []event.Event{
		{Title: "A", Rating: 1},
		{Title: "B", Rating: 5},
	}
	RankAt(candidates, catalog.BucketMedium, nil, SortNone, refWednesday)
	if candidates[0].Title != "A" || candidates[1].Title != "B" {
		t.Fatal("input slice was reordered")
	}
}

func TestDateKeyAt(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"Wednesday at 8:00 AM", 308},    // today, Wed index 3
		{"Thursday at 7:00 PM", 419},     // later this week
		{"Monday at 2:00 PM", 814},       // already passed, next week: 1+7
		{"Tuesday at 9:00 AM", 909},      // already passed, next week: 2+7
		{"Today at 6:00 PM", 318},        // relative, no wrap
		{"Tonight at 10:00 PM", 322},     // relative, no wrap
		{"Tomorrow at 11:00 AM", 411},    // Thursday
		{"Friday", 512},                  // no clock time, noon default
		{"Sunday brunch, tomorrow at 2:00 PM", 414}, // relative term wins, no wrap
		{"Sometime soon", unknownDateKey},
		{"", unknownDateKey},
	}
	for _, tt := range tests {
		if got := DateKeyAt(tt.label, refWednesday); got != tt.want {
			t.Fatalf("DateKeyAt(%q) = %d, want %d", tt.label, got, tt.want)
		}
	}
}

func TestDateSortPutsUnparsableLast(t *testing.T) {
	candidates := []event.Event{
		{Title: "Vague", TimeLabel: "Whenever"},
		{Title: "Soon", TimeLabel: "Thursday at 9:00 AM"},
		{Title: "Later", TimeLabel: "Saturday at 9:00 PM"},
	}
	ranked := RankAt(candidates, catalog.BucketMedium, nil, SortDate, refWednesday)
	got := titles(ranked)
	want := []string{"Soon", "Later", "Vague"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("date sort order %v, want %v", got, want)
		}
	}
}

func TestCommonFriendsSortDescending(t *testing.T) {
	friends := []string{"Lucas Meyer", "Sarah Kim", "Priya Patel"}
	candidates := []event.Event{
		{Title: "None", Attendees: []string{"Nobody Known"}},
		{Title: "Two", Attendees: []string{"Lucas Meyer", "Sarah Kim"}},
		{Title: "One", Attendees: []string{"Priya Patel"}},
	}
	ranked := RankAt(candidates, catalog.BucketMedium, friends, SortCommonFriends, refWednesday)
	got := titles(ranked)
	want := []string{"Two", "One", "None"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("commonFriends order %v, want %v", got, want)
		}
	}
}

func TestDistanceSortAscending(t *testing.T) {
	candidates := []event.Event{
		{Title: "Far", Distance: event.DistanceFar},
		{Title: "Campus", Distance: event.DistanceCampus},
		{Title: "Unknown"},
		{Title: "City", Distance: event.DistanceCity},
	}
	ranked := RankAt(candidates, catalog.BucketMedium, nil, SortDistance, refWednesday)
	if ranked[0].Title != "Campus" {
		t.Fatalf("campus should sort first, got %v", titles(ranked))
	}
	if ranked[len(ranked)-1].Title != "Far" {
		t.Fatalf("far should sort last, got %v", titles(ranked))
	}
}

func TestVisible(t *testing.T) {
	five := make([]event.Event, 5)
	if got := Visible(five, false); len(got) != DefaultVisible {
		t.Fatalf("expected %d visible, got %d", DefaultVisible, len(got))
	}
	if got := Visible(five, true); len(got) != 5 {
		t.Fatalf("showAll should keep all, got %d", len(got))
	}
	two := make([]event.Event, 2)
	if got := Visible(two, false); len(got) != 2 {
		t.Fatalf("short lists stay whole, got %d", len(got))
	}
}
