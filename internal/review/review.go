// Package review owns the spaced-repetition schedule: one interval
// and due date per item, grown or reset by the learner's confidence
// ratings, and the daily review plan derived from them.
package review

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/Sulfuro25/QuranReviser-sub000/internal/confidence"
	"github.com/Sulfuro25/QuranReviser-sub000/internal/models"
	"github.com/Sulfuro25/QuranReviser-sub000/internal/storage"
)

// Base intervals per confidence level, in days. A strong rating on an
// item already at the strong base or beyond doubles the previous
// interval instead, capped at two months.
const (
	weakInterval    = 1
	okInterval      = 3
	strongInterval  = 7
	strongThreshold = 7
	maxInterval     = 60
)

// DefaultPlanLimit is the default size of the daily review plan.
const DefaultPlanLimit = 20

// UpdateFunc observes schedule changes. No payload: consumers
// re-query.
type UpdateFunc func()

// Scheduler computes and persists per-item review state. Storage
// failures degrade to an empty schedule on read and a dropped write;
// no operation returns an error.
type Scheduler struct {
	store  storage.Store
	ledger *confidence.Ledger

	// Now is the clock; tests substitute it.
	Now func() time.Time

	observers []UpdateFunc
}

// NewScheduler builds a scheduler over the store. When ledger is
// non-nil the scheduler subscribes to it, so setting a confidence
// level anywhere reschedules the item in the same call — rating and
// scheduling are two views of one action.
func NewScheduler(store storage.Store, ledger *confidence.Ledger) *Scheduler {
	s := &Scheduler{store: store, ledger: ledger, Now: time.Now}
	if ledger != nil {
		ledger.Subscribe(func(key string, level models.Level) {
			s.SetConfidence(key, level)
		})
	}
	return s
}

// Subscribe registers an observer called after every schedule change.
func (s *Scheduler) Subscribe(fn UpdateFunc) {
	s.observers = append(s.observers, fn)
}

func (s *Scheduler) notify() {
	for _, fn := range s.observers {
		fn()
	}
}

func (s *Scheduler) load() map[string]models.ReviewItem {
	raw, ok := s.store.Get(models.KeyReview)
	if !ok {
		return map[string]models.ReviewItem{}
	}
	items := map[string]models.ReviewItem{}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return map[string]models.ReviewItem{}
	}
	return items
}

func (s *Scheduler) save(items map[string]models.ReviewItem) {
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	s.store.Set(models.KeyReview, string(raw))
}

func (s *Scheduler) now() time.Time {
	return s.Now().Truncate(time.Minute)
}

func baseInterval(level models.Level) int {
	switch level {
	case models.LevelWeak:
		return weakInterval
	case models.LevelOK:
		return okInterval
	case models.LevelStrong:
		return strongInterval
	}
	return 0
}

// MarkSeen records that the item was encountered right now. It
// initializes missing interval (1 day) and due date, but never moves
// an existing due date or grows an interval: a touch, not a
// reschedule.
func (s *Scheduler) MarkSeen(key string) {
	items := s.load()
	item := items[key]
	now := s.now()
	item.Last = now
	if item.IntervalDays <= 0 {
		item.IntervalDays = weakInterval
	}
	if item.Due.IsZero() {
		item.Due = now.AddDate(0, 0, item.IntervalDays)
	}
	items[key] = item
	s.save(items)
}

// SetConfidence reschedules the item from its rating. An empty level
// unschedules it entirely. Weak and ok always reset to their base
// interval; strong doubles an already-long interval up to the cap.
func (s *Scheduler) SetConfidence(key string, level models.Level) {
	if level == "" {
		s.Remove(key)
		return
	}
	base := baseInterval(level)
	if base == 0 {
		return
	}

	items := s.load()
	prev := base
	hadPrev := false
	if item, ok := items[key]; ok && item.IntervalDays > 0 {
		prev = item.IntervalDays
		hadPrev = true
	}

	interval := base
	if level == models.LevelStrong && hadPrev && prev >= strongThreshold {
		interval = prev * 2
		if interval > maxInterval {
			interval = maxInterval
		}
	}

	now := s.now()
	items[key] = models.ReviewItem{
		Last:         now,
		IntervalDays: interval,
		Due:          now.AddDate(0, 0, interval),
	}
	s.save(items)
	s.notify()
}

// Remove unschedules the item.
func (s *Scheduler) Remove(key string) {
	items := s.load()
	delete(items, key)
	s.save(items)
	s.notify()
}

// Get returns the schedule entry for key, if any.
func (s *Scheduler) Get(key string) (models.ReviewItem, bool) {
	item, ok := s.load()[key]
	return item, ok
}

// Items returns a copy of the full schedule.
func (s *Scheduler) Items() map[string]models.ReviewItem {
	return s.load()
}

// DueList returns the keys due now, earliest due date first. A limit
// of zero or less means no limit.
func (s *Scheduler) DueList(limit int) []string {
	items := s.load()
	now := s.now()

	type dueItem struct {
		key string
		due time.Time
	}
	var due []dueItem
	for key, item := range items {
		if !item.Due.After(now) {
			due = append(due, dueItem{key, item.Due})
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].key < due[j].key
		}
		return due[i].due.Before(due[j].due)
	})

	keys := make([]string, 0, len(due))
	for _, d := range due {
		keys = append(keys, d.key)
	}
	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}

// PlanForToday builds today's review list: everything due first, then
// weak-rated backlog, then ok-rated backlog until the limit is
// reached. Strong items are never pulled in early; they surface on
// their own schedule.
func (s *Scheduler) PlanForToday(limit int) []string {
	if limit < 1 {
		limit = 1
	}

	plan := s.DueList(limit)
	if len(plan) >= limit {
		return plan[:limit]
	}

	picked := make(map[string]bool, len(plan))
	for _, key := range plan {
		picked[key] = true
	}

	if s.ledger != nil {
		for _, level := range []models.Level{models.LevelWeak, models.LevelOK} {
			if len(plan) >= limit {
				break
			}
			for _, key := range s.ledger.KeysAtLevel(level) {
				if len(plan) >= limit {
					break
				}
				if !picked[key] {
					picked[key] = true
					plan = append(plan, key)
				}
			}
		}
	}
	return plan
}

// SurahGroup is one surah's slice of a key list.
type SurahGroup struct {
	Surah string
	Keys  []string
}

// GroupBySurah groups verse keys by the text before the first colon,
// keeping first-seen group order and insertion order within each
// group. Keys without a colon group under themselves.
func GroupBySurah(keys []string) []SurahGroup {
	index := map[string]int{}
	var groups []SurahGroup
	for _, key := range keys {
		surah, _, _ := strings.Cut(key, ":")
		i, ok := index[surah]
		if !ok {
			i = len(groups)
			index[surah] = i
			groups = append(groups, SurahGroup{Surah: surah})
		}
		groups[i].Keys = append(groups[i].Keys, key)
	}
	return groups
}
