package catalog

import (
	"testing"

	"seplanner/internal/utils"
	"seplanner/pkg/event"
)

func TestBucketForLevel(t *testing.T) {
	tests := []struct {
		level    int
		hasLevel bool
		want     Bucket
	}{
		{0, false, BucketUnknown},
		{3, false, BucketUnknown},
		{1, true, BucketVeryLow},
		{2, true, BucketLow},
		{3, true, BucketMedium},
		{4, true, BucketMediumHigh},
		{5, true, BucketHigh},
		{0, true, BucketUnknown},
		{6, true, BucketUnknown},
	}
	for _, tt := range tests {
		if got := BucketForLevel(tt.level, tt.hasLevel); got != tt.want {
			t.Fatalf("BucketForLevel(%d, %v) = %q, want %q", tt.level, tt.hasLevel, got, tt.want)
		}
	}
}

func TestCandidatesNonEmptyPerBucket(t *testing.T) {
	for _, b := range []Bucket{BucketVeryLow, BucketLow, BucketMedium, BucketMediumHigh, BucketHigh} {
		if len(Candidates(b)) == 0 {
			t.Fatalf("bucket %q has no candidates", b)
		}
	}
}

func TestUnknownBucketFallsBackToMedium(t *testing.T) {
	titles := func(events []event.Event) []string {
		out := make([]string, len(events))
		for i, e := range events {
			out[i] = e.Title
		}
		return out
	}
	unknown := titles(Candidates(BucketUnknown))
	medium := titles(Candidates(BucketMedium))
	if !utils.AreSlicesEqual(unknown, medium) {
		t.Fatalf("unknown bucket candidates %v, want the medium list %v", unknown, medium)
	}
}

func TestCandidateKeysAreDistinct(t *testing.T) {
	for _, b := range []Bucket{BucketVeryLow, BucketLow, BucketMedium, BucketMediumHigh, BucketHigh} {
		seen := make(map[event.Key]string)
		for _, e := range Candidates(b) {
			if prev, dup := seen[e.Key()]; dup {
				t.Fatalf("bucket %q: %q and %q share a key", b, prev, e.Title)
			}
			seen[e.Key()] = e.Title
		}
	}
}

func TestSeededItems(t *testing.T) {
	var priority, flexible int
	for _, e := range SeededItems() {
		switch e.DefaultVariant {
		case event.VariantPriority:
			priority++
		case event.VariantFlexible:
			flexible++
		default:
			t.Fatalf("seeded item %q has no default classification", e.Title)
		}
		if e.TimeLabel == "" {
			t.Fatalf("seeded item %q has no time label", e.Title)
		}
	}
	if priority == 0 || flexible == 0 {
		t.Fatalf("seeded items must span both groups, got %d priority / %d flexible", priority, flexible)
	}
}

func TestFriendsRoster(t *testing.T) {
	friends := Friends()
	if len(friends) == 0 {
		t.Fatal("empty friends roster")
	}
	seen := make(map[string]bool)
	for _, f := range friends {
		if seen[f] {
			t.Fatalf("duplicate friend %q", f)
		}
		seen[f] = true
	}
}

func TestQuoteAndNudgeFallback(t *testing.T) {
	for _, b := range []Bucket{BucketVeryLow, BucketLow, BucketMedium, BucketMediumHigh, BucketHigh, BucketUnknown} {
		if q := QuoteFor(b); q.Title == "" || q.Text == "" {
			t.Fatalf("bucket %q has incomplete quote copy", b)
		}
		n := NudgeFor(b)
		if n.Title == "" || n.Text == "" || n.PrimaryLabel == "" || n.SecondaryLabel == "" {
			t.Fatalf("bucket %q has incomplete nudge copy", b)
		}
	}

	if QuoteFor(Bucket("bogus")) != QuoteFor(BucketUnknown) {
		t.Fatal("unmapped bucket should fall back to the unknown quote")
	}
	if NudgeFor(Bucket("bogus")) != NudgeFor(BucketUnknown) {
		t.Fatal("unmapped bucket should fall back to the unknown nudge")
	}
}
