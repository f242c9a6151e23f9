// Package scoring computes the suitability score that orders event
// recommendations before any user-chosen sort is applied.
package scoring

import (
	"seplanner/pkg/catalog"
	"seplanner/pkg/event"
)

// Sub-score weights. They sum to slightly above 1, so the final score is
// clamped to keep the [0,1] contract.
const (
	weightEnergy   = 0.4
	weightFriends  = 0.3
	weightRating   = 0.2
	weightDistance = 0.1
	weightNovelty  = 0.1
)

// Score returns the weighted suitability of an event for the given
// energy bucket and friends list. The result is always in [0,1].
//
// The energy factor is a constant 1.0: candidate lists are pre-filtered
// per bucket, so no cross-bucket penalty is modeled.
func Score(e event.Event, bucket catalog.Bucket, friends []string) float64 {
	_ = bucket

	s := weightEnergy * 1.0
	s += weightFriends * friendOverlap(e.Attendees, friends)
	s += weightRating * ratingScore(e)
	s += weightDistance * distanceScore(e.Distance)
	if e.IsNew {
		s += weightNovelty
	}
	if s > 1 {
		s = 1
	}
	if s < 0 {
		s = 0
	}
	return s
}

// FriendOverlapCount counts the event attendees present in the user's
// friends list. Shared with the commonFriends sort.
func FriendOverlapCount(attendees, friends []string) int {
	n := 0
	for _, a := range attendees {
		for _, f := range friends {
			if a == f {
				n++
				break
			}
		}
	}
	return n
}

func friendOverlap(attendees, friends []string) float64 {
	n := FriendOverlapCount(attendees, friends)
	if n > 3 {
		n = 3
	}
	return float64(n) / 3
}

func ratingScore(e event.Event) float64 {
	r := e.EffectiveRating()
	if r < 0 {
		r = 0
	}
	if r > 5 {
		r = 5
	}
	return r / 5
}

func distanceScore(d event.Distance) float64 {
	switch d {
	case event.DistanceCampus:
		return 1.0
	case event.DistanceCity:
		return 0.6
	case event.DistanceFar:
		return 0.2
	default:
		return 0.5
	}
}
