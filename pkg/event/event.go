package event

import (
	"encoding/json"
	"strings"
)

// Event is a single recommendable activity. Field names match the
// persisted JSON format, so stored collections stay readable by hand.
type Event struct {
	Title       string   `json:"title"`
	TimeLabel   string   `json:"timeLabel"`
	Location    string   `json:"location,omitempty"`
	Attendees   []string `json:"attendees,omitempty"`
	Image       string   `json:"image,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	IsNew       bool     `json:"isNew,omitempty"`
	Distance    Distance `json:"distanceCategory,omitempty"`

	// DefaultVariant is the classification used when the user has not
	// classified the event explicitly.
	DefaultVariant Variant `json:"defaultVariant,omitempty"`
}

// DefaultRating applies when an event carries no rating.
const DefaultRating = 4

// EffectiveRating returns the event rating, or DefaultRating when unset.
func (e Event) EffectiveRating() float64 {
	if e.Rating == 0 {
		return DefaultRating
	}
	return e.Rating
}

func (e Event) Key() Key {
	return Key{Title: e.Title, TimeLabel: e.TimeLabel}
}

// Key is the composite identity of an event. Two events are the same
// entity iff title and time label match exactly.
type Key struct {
	Title     string
	TimeLabel string
}

// Encode renders the key as a JSON array string, suitable as a map key in
// the persisted priority map. Unlike plain concatenation this cannot
// collide when a title contains the delimiter.
func (k Key) Encode() string {
	b, _ := json.Marshal([2]string{k.Title, k.TimeLabel})
	return string(b)
}

// DecodeKey parses a persisted priority-map key. It accepts both the JSON
// array form and the legacy "title|timeLabel" form; the split happens at
// the last '|' because time labels never contain one.
func DecodeKey(s string) (Key, bool) {
	var pair [2]string
	if err := json.Unmarshal([]byte(s), &pair); err == nil {
		return Key{Title: pair[0], TimeLabel: pair[1]}, true
	}
	if i := strings.LastIndex(s, "|"); i >= 0 {
		return Key{Title: s[:i], TimeLabel: s[i+1:]}, true
	}
	return Key{}, false
}

// Distance buckets how far an event is from the user.
type Distance string

const (
	DistanceCampus Distance = "campus"
	DistanceCity   Distance = "city"
	DistanceFar    Distance = "far"
)

func (d Distance) String() string {
	return string(d)
}

// SortOrder places campus before city before far; unknown values sort
// with city.
func (d Distance) SortOrder() int {
	switch d {
	case DistanceCampus:
		return 0
	case DistanceFar:
		return 2
	default:
		return 1
	}
}

// Variant classifies a scheduled item as priority or flexible.
type Variant string

const (
	VariantPriority Variant = "priority"
	VariantFlexible Variant = "flexible"
)

func (v Variant) String() string {
	return string(v)
}

// Valid reports whether v is one of the two known classifications.
func (v Variant) Valid() bool {
	return v == VariantPriority || v == VariantFlexible
}

// Deadline is a user-created calendar entry distinct from events.
// Uniqueness is by ID (a creation timestamp), not by title/time.
type Deadline struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	TimeLabel  string `json:"timeLabel"`
	IsDeadline bool   `json:"isDeadline"`
}

// Message is a single chat message in a simulated conversation.
type Message struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Sender    string `json:"sender"`
	Timestamp string `json:"timestamp"`
	Date      string `json:"date"`
}
