package planner

import (
	"sync"
	"time"

	"seplanner/pkg/catalog"
	"seplanner/pkg/store"
)

// nudgeSessionFlag guards the nudge so it fires at most once per session.
const nudgeSessionFlag = "nudge_shown"

// DefaultNudgeDelay matches the original ten-second prompt delay.
const DefaultNudgeDelay = 10 * time.Second

// Nudger arms a one-shot timer that delivers the bucket-appropriate
// nudge copy once per session. Stop cancels a pending nudge, mirroring
// timer cleanup on unmount.
type Nudger struct {
	mu    sync.Mutex
	timer *time.Timer
}

// Start arms the nudge. If the session flag is already set nothing is
// armed and false is returned. The flag is set when the timer fires, so
// a nudge can only ever be shown once per session.
func (n *Nudger) Start(st *store.Store, bucket catalog.Bucket, delay time.Duration, show func(catalog.Nudge)) bool {
	if st.SessionFlag(nudgeSessionFlag) {
		return false
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.timer = time.AfterFunc(delay, func() {
		st.SetSessionFlag(nudgeSessionFlag)
		show(catalog.NudgeFor(bucket))
	})
	return true
}

// Stop cancels a pending nudge. A nudge that already fired is
// unaffected.
func (n *Nudger) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
