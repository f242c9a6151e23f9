package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"seplanner/internal/utils"
	"seplanner/pkg/catalog"
	"seplanner/pkg/event"
	"seplanner/pkg/store"
	"seplanner/pkg/timeparse"
)

// storePath resolves the store file location: --store flag, then config,
// then $HOME/.seplanner.sqlite.
func storePath() (string, error) {
	if p, _ := rootCmd.PersistentFlags().GetString("store"); p != "" {
		return p, nil
	}
	if p := viper.GetString("store.path"); p != "" {
		return p, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".seplanner.sqlite"), nil
}

// withStore opens the store under the process lock and runs fn. The data
// model assumes a single writer, so every command holds the lock for its
// whole run.
func withStore(fn func(st *store.Store) error) error {
	path, err := storePath()
	if err != nil {
		return err
	}
	lock, err := store.NewLock(path)
	if err != nil {
		return err
	}
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			utils.Log.Warnf("releasing store lock: %v", err)
		}
	}()

	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st)
}

// currentBucket derives the active energy bucket from the store.
func currentBucket(st *store.Store) catalog.Bucket {
	level, ok := st.EnergyLevel()
	return catalog.BucketForLevel(level, ok)
}

// dayMatchMode picks substring or word-boundary day matching from
// config.
func dayMatchMode(strictFlag bool) timeparse.MatchMode {
	if strictFlag || viper.GetBool("calendar.strictdays") {
		return timeparse.MatchWordBoundary
	}
	return timeparse.MatchSubstring
}

// findCandidate looks an event up by title (and optional time label)
// across the active bucket's candidates and the seeded items.
func findCandidate(st *store.Store, title, timeLabel string) (event.Event, error) {
	pool := append(catalog.Candidates(currentBucket(st)), catalog.SeededItems()...)
	var matches []event.Event
	for _, e := range pool {
		if !strings.EqualFold(e.Title, title) {
			continue
		}
		if timeLabel != "" && e.TimeLabel != timeLabel {
			continue
		}
		matches = append(matches, e)
	}
	switch len(matches) {
	case 0:
		return event.Event{}, fmt.Errorf("no event named %q in the current recommendations", title)
	case 1:
		return matches[0], nil
	default:
		return event.Event{}, fmt.Errorf("several events named %q; disambiguate with --time", title)
	}
}

// composeTimeLabel builds the canonical "<Day> at <H:MM AM/PM>" label
// from form inputs. Both fields are required; validation failures abort
// the action before anything is written.
func composeTimeLabel(day, clock string) (string, error) {
	if strings.TrimSpace(day) == "" || strings.TrimSpace(clock) == "" {
		return "", fmt.Errorf("day and time are both required (e.g. --day Thursday --time \"8:00 AM\")")
	}
	full := timeparse.FullDayName(titleCase(strings.TrimSpace(day)))
	label := full + " at " + strings.TrimSpace(clock)
	p := timeparse.ParseAt(label, time.Now(), timeparse.MatchSubstring)
	if !p.HasDay() {
		return "", fmt.Errorf("unrecognized day %q (use a weekday name, today, tonight or tomorrow)", day)
	}
	if !p.HasHour() {
		return "", fmt.Errorf("unrecognized time %q (expected H:MM AM/PM, e.g. 8:00 AM)", clock)
	}
	return label, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
