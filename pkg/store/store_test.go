package store

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"seplanner/pkg/event"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "state.sqlite"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestEnergyLevelRoundTrip(t *testing.T) {
	st := openTestStore(t)

	if _, ok := st.EnergyLevel(); ok {
		t.Fatal("fresh store should have no energy level")
	}
	if err := st.SetEnergyLevel(4); err != nil {
		t.Fatalf("set: %v", err)
	}
	level, ok := st.EnergyLevel()
	if !ok || level != 4 {
		t.Fatalf("got %d/%v, want 4/true", level, ok)
	}
	if err := st.ClearEnergyLevel(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := st.EnergyLevel(); ok {
		t.Fatal("cleared level should read as absent")
	}
}

func TestEnergyLevelRejectsGarbage(t *testing.T) {
	st := openTestStore(t)
	for _, raw := range []string{"banana", "0", "6", ""} {
		if err := st.PutRaw(KeyEnergyLevel, raw); err != nil {
			t.Fatalf("put: %v", err)
		}
		if _, ok := st.EnergyLevel(); ok {
			t.Fatalf("raw %q should not parse as a level", raw)
		}
	}
}

func TestEnrolledRoundTrip(t *testing.T) {
	st := openTestStore(t)

	e := event.Event{
		Title:     "Board Games Night",
		TimeLabel: "Friday at 7:00 PM",
		Location:  "Student Lounge",
		Attendees: []string{"Lucas Meyer", "Sarah Kim"},
		Rating:    5,
	}
	if _, err := st.AddEnrolledEvent(e); err != nil {
		t.Fatalf("add: %v", err)
	}

	events := st.EnrolledEvents()
	if len(events) != 1 {
		t.Fatalf("got %d enrolled events, want 1", len(events))
	}
	got := events[0]
	if got.Title != e.Title || got.TimeLabel != e.TimeLabel ||
		got.Location != e.Location || got.Rating != e.Rating {
		t.Fatalf("round trip mangled the event: %+v", got)
	}
	if !st.IsEventJoined(e.Key()) {
		t.Fatal("IsEventJoined should see the stored event")
	}
}

func TestAddEnrolledIsIdempotent(t *testing.T) {
	st := openTestStore(t)

	e := event.Event{Title: "Yoga", TimeLabel: "Monday at 8:00 AM"}
	for i := 0; i < 3; i++ {
		if _, err := st.AddEnrolledEvent(e); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
	if n := len(st.EnrolledEvents()); n != 1 {
		t.Fatalf("repeated joins produced %d entries, want 1", n)
	}

	// Same title at a different time is a different event.
	later := event.Event{Title: "Yoga", TimeLabel: "Tuesday at 8:00 AM"}
	if _, err := st.AddEnrolledEvent(later); err != nil {
		t.Fatalf("add later: %v", err)
	}
	if n := len(st.EnrolledEvents()); n != 2 {
		t.Fatalf("distinct time labels should coexist, got %d entries", n)
	}
}

func TestRemoveEnrolledEvent(t *testing.T) {
	st := openTestStore(t)

	a := event.Event{Title: "A", TimeLabel: "Monday at 9:00 AM"}
	b := event.Event{Title: "B", TimeLabel: "Monday at 9:00 AM"}
	st.AddEnrolledEvent(a)
	st.AddEnrolledEvent(b)

	kept, err := st.RemoveEnrolledEvent(a.Key())
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(kept) != 1 || kept[0].Title != "B" {
		t.Fatalf("remove kept %+v, want only B", kept)
	}
	if st.IsEventJoined(a.Key()) {
		t.Fatal("removed event still reads as joined")
	}
}

func TestMalformedCollectionsReadEmpty(t *testing.T) {
	st := openTestStore(t)

	st.PutRaw(KeyEnrolled, "{not json")
	st.PutRaw(KeyDeadlines, "][")
	st.PutRaw(KeyPriorityMap, "????")

	if n := len(st.EnrolledEvents()); n != 0 {
		t.Fatalf("malformed enrolled blob read %d events", n)
	}
	if n := len(st.Deadlines()); n != 0 {
		t.Fatalf("malformed deadline blob read %d deadlines", n)
	}
	if n := len(st.PriorityMap()); n != 0 {
		t.Fatalf("malformed priority blob read %d entries", n)
	}

	// Well-formed JSON of the wrong shape must also read as empty.
	for _, raw := range []string{`"oops"`, `42`, `{"a":1,"b":2}`} {
		st.PutRaw(KeyDeadlines, raw)
		if n := len(st.Deadlines()); n != 0 {
			t.Fatalf("deadline blob %s read %d deadlines", raw, n)
		}
	}
	st.PutRaw(KeyEnrolled, `{"a":1}`)
	if n := len(st.EnrolledEvents()); n != 0 {
		t.Fatalf("object enrolled blob read %d events", n)
	}
}

func TestJoinRecordsDefaultClassification(t *testing.T) {
	st := openTestStore(t)

	plain := event.Event{Title: "Movie Night", TimeLabel: "Friday at 8:00 PM"}
	st.AddEnrolledEvent(plain)
	if v := st.Classification(plain.Key(), plain.DefaultVariant); v != event.VariantFlexible {
		t.Fatalf("plain event classified %q, want flexible", v)
	}

	exam := event.Event{
		Title:          "Midterm Review",
		TimeLabel:      "Thursday at 10:00 AM",
		DefaultVariant: event.VariantPriority,
	}
	st.AddEnrolledEvent(exam)
	if v := st.Classification(exam.Key(), exam.DefaultVariant); v != event.VariantPriority {
		t.Fatalf("exam classified %q, want priority", v)
	}
}

func TestJoinKeepsExistingClassification(t *testing.T) {
	st := openTestStore(t)

	e := event.Event{Title: "Study Group", TimeLabel: "Wednesday at 4:00 PM"}
	if err := st.SetPriority(e.Key(), event.VariantPriority); err != nil {
		t.Fatalf("set priority: %v", err)
	}
	st.AddEnrolledEvent(e)
	if v := st.Classification(e.Key(), e.DefaultVariant); v != event.VariantPriority {
		t.Fatalf("join overwrote explicit classification, got %q", v)
	}
}

func TestReclassify(t *testing.T) {
	st := openTestStore(t)

	e := event.Event{Title: "Gym", TimeLabel: "Tuesday at 6:00 PM"}
	st.SetPriority(e.Key(), event.VariantPriority)
	st.SetPriority(e.Key(), event.VariantFlexible)

	m := st.PriorityMap()
	if len(m) != 1 {
		t.Fatalf("reclassifying grew the map to %d entries", len(m))
	}
	if m[e.Key()] != event.VariantFlexible {
		t.Fatalf("got %q, want flexible", m[e.Key()])
	}
}

func TestPriorityMapDecodesLegacyKeys(t *testing.T) {
	st := openTestStore(t)

	st.PutRaw(KeyPriorityMap, `{"Gym Session|Tuesday at 6:00 PM":"priority","Bad Entry|Monday":"someday"}`)

	m := st.PriorityMap()
	want := event.Key{Title: "Gym Session", TimeLabel: "Tuesday at 6:00 PM"}
	if m[want] != event.VariantPriority {
		t.Fatalf("legacy key not decoded, map: %v", m)
	}
	if len(m) != 1 {
		t.Fatalf("invalid variant should be skipped, map: %v", m)
	}

	// A write re-encodes every entry in the current format.
	st.SetPriority(want, event.VariantFlexible)
	raw, _ := st.GetRaw(KeyPriorityMap)
	if strings.Contains(raw, "Gym Session|") {
		t.Fatalf("legacy encoding survived a write: %s", raw)
	}
}

func TestDeadlineAddAssignsUniqueIDs(t *testing.T) {
	st := openTestStore(t)

	first, err := st.AddDeadline("Essay", "Friday at 11:00 PM")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := st.AddDeadline("Lab Report", "Friday at 11:00 PM")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("deadlines created in the same second share id %d", first.ID)
	}

	kept, err := st.RemoveDeadline(first.ID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(kept) != 1 || kept[0].Title != "Lab Report" {
		t.Fatalf("remove by id kept %+v", kept)
	}
}

func TestDeadlineLegacyLabelMigration(t *testing.T) {
	st := openTestStore(t)

	st.PutRaw(KeyDeadlines, `[
		{"id": 100, "title": "Problem Set", "timeLabel": "Thu at 8:00 AM"},
		{"id": 101, "title": "Reading", "timeLabel": "Saturday at 9:00 AM"}
	]`)

	deadlines := st.Deadlines()
	if len(deadlines) != 2 {
		t.Fatalf("got %d deadlines, want 2", len(deadlines))
	}
	if deadlines[0].TimeLabel != "Thursday at 8:00 AM" {
		t.Fatalf("legacy label not upgraded: %q", deadlines[0].TimeLabel)
	}
	if deadlines[1].TimeLabel != "Saturday at 9:00 AM" {
		t.Fatalf("modern label altered: %q", deadlines[1].TimeLabel)
	}
	if !deadlines[0].IsDeadline {
		t.Fatal("loaded deadline must carry the deadline marker")
	}

	// The upgrade is written back, so the raw blob is clean afterwards.
	raw, _ := st.GetRaw(KeyDeadlines)
	if strings.Contains(raw, `"Thu at`) {
		t.Fatalf("migration was not persisted: %s", raw)
	}
}

func TestBusPublishAndUnsubscribe(t *testing.T) {
	st := openTestStore(t)

	events, priorities := 0, 0
	stop := st.Bus().Subscribe(TopicEventsUpdated, func() { events++ })
	st.Bus().Subscribe(TopicEventPriorityUpdated, func() { priorities++ })

	e := event.Event{Title: "Picnic", TimeLabel: "Sunday at 1:00 PM"}
	st.AddEnrolledEvent(e)
	if events != 1 {
		t.Fatalf("join published %d eventsUpdated, want 1", events)
	}
	if priorities != 1 {
		t.Fatalf("default classification published %d eventPriorityUpdated, want 1", priorities)
	}

	stop()
	st.RemoveEnrolledEvent(e.Key())
	if events != 1 {
		t.Fatalf("unsubscribed handler still fired, count %d", events)
	}
}

func TestConversationsAppend(t *testing.T) {
	st := openTestStore(t)

	now := time.Date(2026, 1, 7, 14, 30, 0, 0, time.UTC)
	friends := []string{"Lucas Meyer", "Sarah Kim"}
	if err := st.AppendConversation(friends, "Want to join me?", now); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := st.AppendConversation([]string{"Lucas Meyer"}, "Second thought?", now); err != nil {
		t.Fatalf("append: %v", err)
	}

	conversations := st.Conversations()
	lucas := conversations["Lucas Meyer"]
	if len(lucas) != 2 {
		t.Fatalf("Lucas has %d messages, want 2", len(lucas))
	}
	if lucas[0].ID != 1 || lucas[1].ID != 2 {
		t.Fatalf("message ids not sequential: %d, %d", lucas[0].ID, lucas[1].ID)
	}
	if lucas[0].Sender != "me" || lucas[0].Timestamp != "14:30" {
		t.Fatalf("message metadata wrong: %+v", lucas[0])
	}
	if len(conversations["Sarah Kim"]) != 1 {
		t.Fatal("Sarah should have exactly the broadcast message")
	}
}

func TestSessionFlags(t *testing.T) {
	st := openTestStore(t)

	if st.SessionFlag("nudge_shown") {
		t.Fatal("flags start unset")
	}
	st.SetSessionFlag("nudge_shown")
	if !st.SessionFlag("nudge_shown") {
		t.Fatal("flag should stick for the process lifetime")
	}
}

func TestProfileStatusRoundTrip(t *testing.T) {
	st := openTestStore(t)

	if got := st.ProfileStatus(); got != "" {
		t.Fatalf("fresh status %q, want empty", got)
	}
	if err := st.SetProfileStatus("recharging"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := st.ProfileStatus(); got != "recharging" {
		t.Fatalf("got %q, want recharging", got)
	}
}
