// Package confidence keeps the per-item retention ratings. Keys are
// verse keys ("2:255") or synthetic page keys ("page:12"); values are
// one of weak/ok/strong. Absence means unrated.
package confidence

import (
	"encoding/json"
	"sort"

	"github.com/Sulfuro25/QuranReviser-sub000/internal/models"
	"github.com/Sulfuro25/QuranReviser-sub000/internal/quran"
	"github.com/Sulfuro25/QuranReviser-sub000/internal/storage"
)

// ChangeFunc observes ledger mutations. level is empty when the
// rating was cleared.
type ChangeFunc func(key string, level models.Level)

// Ledger reads and writes the confidence map. A corrupt or missing
// store reads as an empty ledger; failed writes are silent no-ops.
type Ledger struct {
	store     storage.Store
	observers []ChangeFunc
}

func NewLedger(store storage.Store) *Ledger {
	return &Ledger{store: store}
}

// Subscribe registers an observer called synchronously on every Set.
// The review scheduler subscribes here so rating an item always
// reschedules it in the same call.
func (l *Ledger) Subscribe(fn ChangeFunc) {
	l.observers = append(l.observers, fn)
}

func (l *Ledger) load() map[string]models.Level {
	raw, ok := l.store.Get(models.KeyConfidence)
	if !ok {
		return map[string]models.Level{}
	}
	entries := map[string]models.Level{}
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return map[string]models.Level{}
	}
	return entries
}

func (l *Ledger) save(entries map[string]models.Level) {
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	l.store.Set(models.KeyConfidence, string(raw))
}

// Get returns the current level for key, or "" if unrated.
func (l *Ledger) Get(key string) models.Level {
	return l.load()[key]
}

// Set overwrites the rating for key and notifies observers. An empty
// level clears the entry. The full ledger is written back in one
// piece, never partially.
func (l *Ledger) Set(key string, level models.Level) {
	entries := l.load()
	if level == "" {
		delete(entries, key)
	} else {
		entries[key] = level
	}
	l.save(entries)
	for _, fn := range l.observers {
		fn(key, level)
	}
}

// Counts aggregates the ledger by level.
func (l *Ledger) Counts() map[models.Level]int {
	counts := map[models.Level]int{
		models.LevelWeak:   0,
		models.LevelOK:     0,
		models.LevelStrong: 0,
	}
	for _, level := range l.load() {
		if _, known := counts[level]; known {
			counts[level]++
		}
	}
	return counts
}

// KeysAtLevel returns every key rated at the given level, in mushaf
// order (verse keys sorted by surah then ayah, other keys after,
// alphabetically). The web source walked the ledger in object
// insertion order; sorting makes the walk deterministic here.
func (l *Ledger) KeysAtLevel(level models.Level) []string {
	var keys []string
	for key, lv := range l.load() {
		if lv == level {
			keys = append(keys, key)
		}
	}
	SortKeys(keys)
	return keys
}

// SortKeys orders item keys in mushaf order: verse keys first by
// surah then ayah, everything else after, alphabetically.
func SortKeys(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		si, ai, iok := quran.ParseVerseKey(keys[i])
		sj, aj, jok := quran.ParseVerseKey(keys[j])
		switch {
		case iok && jok:
			if si != sj {
				return si < sj
			}
			return ai < aj
		case iok:
			return true
		case jok:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
}
