package store

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"seplanner/pkg/event"
	"seplanner/pkg/timeparse"
)

// EnergyLevel returns the stored 1-5 energy level. ok is false when no
// level (or an unreadable one) is stored.
func (s *Store) EnergyLevel() (level int, ok bool) {
	raw, found := s.GetRaw(KeyEnergyLevel)
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 || n > 5 {
		return 0, false
	}
	return n, true
}

func (s *Store) SetEnergyLevel(level int) error {
	return s.PutRaw(KeyEnergyLevel, strconv.Itoa(level))
}

// ClearEnergyLevel removes the stored level (the "skip" action on the
// energy selection view).
func (s *Store) ClearEnergyLevel() error {
	return s.DeleteRaw(KeyEnergyLevel)
}

// EnrolledEvents loads the enrolled-events collection. Absent or
// malformed data reads as an empty list.
func (s *Store) EnrolledEvents() []event.Event {
	var events []event.Event
	if raw, ok := s.getJSON(KeyEnrolled); ok {
		_ = json.Unmarshal([]byte(raw), &events)
	}
	if events == nil {
		events = []event.Event{}
	}
	return events
}

func (s *Store) saveEnrolled(events []event.Event) error {
	b, err := json.Marshal(events)
	if err != nil {
		return err
	}
	return s.PutRaw(KeyEnrolled, string(b))
}

// AddEnrolledEvent joins an event. The add is idempotent under the
// composite key: joining an already-joined event changes nothing. A
// default classification is recorded for the key if none existed, so
// the event shows up in a dashboard grouping right away. Publishes
// eventsUpdated on success.
func (s *Store) AddEnrolledEvent(e event.Event) ([]event.Event, error) {
	events := s.EnrolledEvents()
	for _, existing := range events {
		if existing.Key() == e.Key() {
			return events, nil
		}
	}
	events = append(events, e)
	if err := s.saveEnrolled(events); err != nil {
		return nil, err
	}
	if _, ok := s.PriorityMap()[e.Key()]; !ok {
		def := e.DefaultVariant
		if !def.Valid() {
			def = event.VariantFlexible
		}
		if err := s.SetPriority(e.Key(), def); err != nil {
			return nil, err
		}
	}
	s.bus.Publish(TopicEventsUpdated)
	return events, nil
}

// RemoveEnrolledEvent leaves an event by key. Publishes eventsUpdated.
func (s *Store) RemoveEnrolledEvent(key event.Key) ([]event.Event, error) {
	events := s.EnrolledEvents()
	kept := events[:0]
	for _, e := range events {
		if e.Key() != key {
			kept = append(kept, e)
		}
	}
	if err := s.saveEnrolled(kept); err != nil {
		return nil, err
	}
	s.bus.Publish(TopicEventsUpdated)
	return kept, nil
}

// IsEventJoined reports whether the key is in the enrolled collection.
func (s *Store) IsEventJoined(key event.Key) bool {
	for _, e := range s.EnrolledEvents() {
		if e.Key() == key {
			return true
		}
	}
	return false
}

// PriorityMap loads the event classification map. Legacy entries keyed by
// "title|timeLabel" concatenation are decoded transparently.
func (s *Store) PriorityMap() map[event.Key]event.Variant {
	m := make(map[event.Key]event.Variant)
	raw, ok := s.getJSON(KeyPriorityMap)
	if !ok {
		return m
	}
	var stored map[string]string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return m
	}
	for k, v := range stored {
		key, ok := event.DecodeKey(k)
		if !ok {
			continue
		}
		variant := event.Variant(v)
		if variant.Valid() {
			m[key] = variant
		}
	}
	return m
}

// SetPriority records an explicit classification for an event key and
// publishes eventPriorityUpdated.
func (s *Store) SetPriority(key event.Key, v event.Variant) error {
	m := s.PriorityMap()
	m[key] = v
	stored := make(map[string]string, len(m))
	for k, variant := range m {
		stored[k.Encode()] = variant.String()
	}
	b, err := json.Marshal(stored)
	if err != nil {
		return err
	}
	if err := s.PutRaw(KeyPriorityMap, string(b)); err != nil {
		return err
	}
	s.bus.Publish(TopicEventPriorityUpdated)
	return nil
}

// Classification resolves the display classification of an event:
// explicit entry first, then the event's own default hint, else flexible.
func (s *Store) Classification(key event.Key, defaultVariant event.Variant) event.Variant {
	if v, ok := s.PriorityMap()[key]; ok {
		return v
	}
	if defaultVariant.Valid() {
		return defaultVariant
	}
	return event.VariantFlexible
}

// Deadlines loads the deadline collection. A legacy encoding with a
// 3-letter day abbreviation in the time label ("Thu at 8:00 AM") is
// upgraded to the full day name and silently persisted back on first
// read.
func (s *Store) Deadlines() []event.Deadline {
	var deadlines []event.Deadline
	raw, ok := s.getJSON(KeyDeadlines)
	if !ok {
		return []event.Deadline{}
	}
	parsed := gjson.Parse(raw)
	if !parsed.IsArray() {
		return []event.Deadline{}
	}
	migrated := false
	parsed.ForEach(func(_, item gjson.Result) bool {
		d := event.Deadline{
			ID:         item.Get("id").Int(),
			Title:      item.Get("title").String(),
			TimeLabel:  item.Get("timeLabel").String(),
			IsDeadline: true,
		}
		if upgraded, changed := migrateTimeLabel(d.TimeLabel); changed {
			d.TimeLabel = upgraded
			migrated = true
		}
		deadlines = append(deadlines, d)
		return true
	})
	if deadlines == nil {
		deadlines = []event.Deadline{}
	}
	if migrated {
		_ = s.saveDeadlines(deadlines)
	}
	return deadlines
}

// migrateTimeLabel expands a leading 3-letter day code to the full day
// name, e.g. "Thu at 8:00 AM" -> "Thursday at 8:00 AM".
func migrateTimeLabel(label string) (string, bool) {
	fields := strings.SplitN(label, " ", 2)
	if len(fields) == 0 {
		return label, false
	}
	code := fields[0]
	if timeparse.DayIndex(code) < 0 {
		return label, false
	}
	full := timeparse.FullDayName(code)
	if full == code {
		return label, false
	}
	return full + label[len(code):], true
}

func (s *Store) saveDeadlines(deadlines []event.Deadline) error {
	b, err := json.Marshal(deadlines)
	if err != nil {
		return err
	}
	return s.PutRaw(KeyDeadlines, string(b))
}

// AddDeadline creates a deadline. The id is the creation unix timestamp;
// if another deadline already carries that id the new one is bumped past
// the current maximum so removal by id stays unambiguous. Publishes
// deadlinesUpdated.
func (s *Store) AddDeadline(title, timeLabel string) (event.Deadline, error) {
	deadlines := s.Deadlines()
	id := time.Now().Unix()
	for _, d := range deadlines {
		if d.ID >= id {
			id = d.ID + 1
		}
	}
	dl := event.Deadline{ID: id, Title: title, TimeLabel: timeLabel, IsDeadline: true}
	deadlines = append(deadlines, dl)
	if err := s.saveDeadlines(deadlines); err != nil {
		return event.Deadline{}, err
	}
	s.bus.Publish(TopicDeadlinesUpdated)
	return dl, nil
}

// RemoveDeadline deletes a deadline by id and publishes deadlinesUpdated.
func (s *Store) RemoveDeadline(id int64) ([]event.Deadline, error) {
	deadlines := s.Deadlines()
	kept := deadlines[:0]
	for _, d := range deadlines {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if err := s.saveDeadlines(kept); err != nil {
		return nil, err
	}
	s.bus.Publish(TopicDeadlinesUpdated)
	return kept, nil
}

// ProfileStatus reads the plain-string profile status.
func (s *Store) ProfileStatus() string {
	raw, _ := s.GetRaw(KeyProfileStatus)
	return raw
}

func (s *Store) SetProfileStatus(status string) error {
	return s.PutRaw(KeyProfileStatus, status)
}

// Conversations loads the simulated chat history, friend name to
// messages.
func (s *Store) Conversations() map[string][]event.Message {
	m := make(map[string][]event.Message)
	if raw, ok := s.getJSON(KeyConversations); ok {
		_ = json.Unmarshal([]byte(raw), &m)
	}
	return m
}

// AppendConversation appends the same outgoing message to each named
// friend's conversation and publishes conversationsUpdated once.
func (s *Store) AppendConversation(friends []string, text string, now time.Time) error {
	if len(friends) == 0 {
		return nil
	}
	conversations := s.Conversations()
	timestamp := now.Format("15:04")
	for _, friend := range friends {
		history := conversations[friend]
		conversations[friend] = append(history, event.Message{
			ID:        len(history) + 1,
			Text:      text,
			Sender:    "me",
			Timestamp: timestamp,
			Date:      now.Format(time.RFC3339),
		})
	}
	b, err := json.Marshal(conversations)
	if err != nil {
		return err
	}
	if err := s.PutRaw(KeyConversations, string(b)); err != nil {
		return err
	}
	s.bus.Publish(TopicConversationsUpdated)
	return nil
}
