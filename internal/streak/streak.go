// Package streak counts consecutive active days. It feeds the
// motivational display only and is independent of scheduling.
package streak

import (
	"encoding/json"
	"time"

	"github.com/Sulfuro25/QuranReviser-sub000/internal/models"
	"github.com/Sulfuro25/QuranReviser-sub000/internal/storage"
)

const dayFormat = "2006-01-02"

// UpdateFunc observes streak changes with the full summary.
type UpdateFunc func(models.StreakLedger)

// Tracker maintains the streak ledger. The web source re-ran the
// consecutive-day rule on every activity event, so several events in
// one day could inflate the streak; here the current/best update is
// gated to the first event of each calendar day, and later events
// only raise that day's counter.
type Tracker struct {
	store storage.Store

	// Now is the clock; tests substitute it.
	Now func() time.Time

	observers []UpdateFunc
}

func NewTracker(store storage.Store) *Tracker {
	return &Tracker{store: store, Now: time.Now}
}

// Subscribe registers an observer called after every Bump.
func (t *Tracker) Subscribe(fn UpdateFunc) {
	t.observers = append(t.observers, fn)
}

func (t *Tracker) load() models.StreakLedger {
	ledger := models.StreakLedger{Days: map[string]int{}}
	raw, ok := t.store.Get(models.KeyStreak)
	if !ok {
		return ledger
	}
	if err := json.Unmarshal([]byte(raw), &ledger); err != nil {
		return models.StreakLedger{Days: map[string]int{}}
	}
	if ledger.Days == nil {
		ledger.Days = map[string]int{}
	}
	return ledger
}

func (t *Tracker) save(ledger models.StreakLedger) {
	raw, err := json.Marshal(ledger)
	if err != nil {
		return
	}
	t.store.Set(models.KeyStreak, string(raw))
}

// Bump records one activity event. The first event of a new day
// extends the streak if yesterday was active, otherwise restarts it
// at 1; best tracks the high-water mark.
func (t *Tracker) Bump() models.StreakLedger {
	ledger := t.load()
	now := t.Now()
	today := now.Format(dayFormat)
	yesterday := now.AddDate(0, 0, -1).Format(dayFormat)

	firstToday := ledger.Days[today] == 0
	ledger.Days[today]++

	if firstToday {
		if ledger.Days[yesterday] > 0 {
			ledger.Current++
		} else {
			ledger.Current = 1
		}
		if ledger.Current > ledger.Best {
			ledger.Best = ledger.Current
		}
	}

	t.save(ledger)
	for _, fn := range t.observers {
		fn(ledger)
	}
	return ledger
}

// Summary returns the current ledger without modifying it.
func (t *Tracker) Summary() models.StreakLedger {
	return t.load()
}

// ActiveToday reports whether any activity was recorded today.
func (t *Tracker) ActiveToday() bool {
	return t.load().Days[t.Now().Format(dayFormat)] > 0
}
