// Package plan projects the stored daily revision plan and the
// memorization progress onto today's concrete assignment. It holds no
// state of its own: everything is recomputed from storage on demand.
package plan

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/Sulfuro25/QuranReviser-sub000/internal/models"
	"github.com/Sulfuro25/QuranReviser-sub000/internal/quran"
	"github.com/Sulfuro25/QuranReviser-sub000/internal/storage"
)

// Status says why a projection does or does not carry an assignment.
type Status string

const (
	StatusNoPlan   Status = "no_plan"
	StatusNoPages  Status = "no_pages"
	StatusComplete Status = "complete"
	StatusActive   Status = "active"
)

// Projection is today's view of the plan.
type Projection struct {
	Status Status
	Plan   models.DailyPlan

	// Assignment is the contiguous unit-number range for today,
	// clipped to the unit maximum for display.
	Assignment []int
	Label      string
	// PageRange sub-labels a juz/hizb assignment with the mushaf
	// pages it spans. Empty for page plans.
	PageRange string

	TotalUnits           int
	TotalAssignments     int
	RemainingAssignments int
	ProgressPercent      float64

	// TrackedUnits is the pool of unit numbers the learner's progress
	// covers, at or past the plan's start value. It gates whether the
	// plan shows at all; the assignment itself is positional.
	TrackedUnits []int
}

// Load reads and normalizes the stored plan. ok is false when no plan
// has been set up.
func Load(store storage.Store) (models.DailyPlan, bool) {
	raw, present := store.Get(models.KeyDailyPlan)
	if !present {
		return models.DailyPlan{}, false
	}
	var p models.DailyPlan
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return models.DailyPlan{}, false
	}
	return normalize(p), true
}

// Save writes the plan back.
func Save(store storage.Store, p models.DailyPlan) bool {
	raw, err := json.Marshal(normalize(p))
	if err != nil {
		return false
	}
	return store.Set(models.KeyDailyPlan, string(raw))
}

func normalize(p models.DailyPlan) models.DailyPlan {
	switch p.Unit {
	case models.UnitPages, models.UnitJuz, models.UnitHizb:
	default:
		p.Unit = models.UnitPages
	}
	if p.Amount < 1 {
		p.Amount = 1
	}
	if p.StartValue < 1 || p.StartValue > p.Unit.Max() {
		p.StartValue = 1
	}
	if p.CompletedAssignments < 0 {
		p.CompletedAssignments = 0
	}
	return p
}

// Progress reads the per-surah memorized-ayah counts.
func Progress(store storage.Store) map[int]int {
	progress := map[int]int{}
	raw, ok := store.Get(models.KeyProgress)
	if !ok {
		return progress
	}
	// Surah ids are stored as JSON object keys, so strings. Decode
	// entry by entry: one garbage value must not drop the rest.
	stored := map[string]json.RawMessage{}
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return progress
	}
	for id, value := range stored {
		var surah int
		if _, err := fmt.Sscanf(id, "%d", &surah); err != nil {
			continue
		}
		var count float64
		if err := json.Unmarshal(value, &count); err != nil {
			continue
		}
		if surah < 1 || surah > quran.SurahCount || count <= 0 {
			continue
		}
		progress[surah] = int(count)
	}
	return progress
}

// TrackedPages converts per-surah memorized-ayah counts into a
// sorted, deduplicated page-number set. A surah spanning P pages with
// A ayat and n memorized contributes its first ceil(n/A*P) pages.
func TrackedPages(progress map[int]int) []int {
	seen := map[int]bool{}
	for surah, count := range progress {
		total := quran.AyahCount(surah)
		if total == 0 || count <= 0 {
			continue
		}
		if count > total {
			count = total
		}
		first, last := quran.SurahPageSpan(surah)
		span := last - first + 1
		covered := int(math.Ceil(float64(count) / float64(total) * float64(span)))
		for p := first; p < first+covered && p <= last; p++ {
			seen[p] = true
		}
	}
	pages := make([]int, 0, len(seen))
	for p := range seen {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages
}

// trackedUnits maps the tracked pages into the plan's unit space.
func trackedUnits(pages []int, unit models.PlanUnit) []int {
	if unit == models.UnitPages {
		return pages
	}
	seen := map[int]bool{}
	for _, p := range pages {
		switch unit {
		case models.UnitJuz:
			seen[quran.JuzOfPage(p)] = true
		case models.UnitHizb:
			seen[quran.HizbOfPage(p)] = true
		}
	}
	units := make([]int, 0, len(seen))
	for u := range seen {
		units = append(units, u)
	}
	sort.Ints(units)
	return units
}

// Project computes today's assignment from the stored plan and
// progress. Never fails; a broken store reads as "no plan".
func Project(store storage.Store) Projection {
	p, ok := Load(store)
	if !ok {
		return Projection{Status: StatusNoPlan}
	}

	pool := trackedUnits(TrackedPages(Progress(store)), p.Unit)
	filtered := pool[:0:0]
	for _, u := range pool {
		if u >= p.StartValue {
			filtered = append(filtered, u)
		}
	}
	if len(filtered) == 0 {
		return Projection{Status: StatusNoPages, Plan: p}
	}

	unitMax := p.Unit.Max()
	totalUnits := unitMax - p.StartValue + 1
	if totalUnits < 0 {
		totalUnits = 0
	}
	totalAssignments := (totalUnits + p.Amount - 1) / p.Amount
	remaining := totalAssignments - p.CompletedAssignments
	if remaining < 0 {
		remaining = 0
	}

	proj := Projection{
		Plan:                 p,
		TotalUnits:           totalUnits,
		TotalAssignments:     totalAssignments,
		RemainingAssignments: remaining,
		TrackedUnits:         filtered,
	}
	if totalAssignments > 0 {
		proj.ProgressPercent = float64(p.CompletedAssignments) / float64(totalAssignments) * 100
	}

	start := p.StartValue + p.CompletedAssignments*p.Amount
	if start > unitMax {
		proj.Status = StatusComplete
		proj.ProgressPercent = 100
		return proj
	}

	end := start + p.Amount - 1
	displayEnd := end
	if displayEnd > unitMax {
		displayEnd = unitMax
	}
	for u := start; u <= displayEnd; u++ {
		proj.Assignment = append(proj.Assignment, u)
	}
	proj.Status = StatusActive
	proj.Label = label(p.Unit, start, displayEnd)
	proj.PageRange = pageRange(p.Unit, start, displayEnd)
	return proj
}

func label(unit models.PlanUnit, first, last int) string {
	name := unitName(unit, last > first)
	if first == last {
		return fmt.Sprintf("%s %d", name, first)
	}
	return fmt.Sprintf("%s %d-%d", name, first, last)
}

func unitName(unit models.PlanUnit, plural bool) string {
	switch unit {
	case models.UnitJuz:
		return "Juz"
	case models.UnitHizb:
		return "Hizb"
	default:
		if plural {
			return "Pages"
		}
		return "Page"
	}
}

func pageRange(unit models.PlanUnit, first, last int) string {
	var lo, hi int
	switch unit {
	case models.UnitJuz:
		lo, _ = quran.JuzPageRange(first)
		_, hi = quran.JuzPageRange(last)
	case models.UnitHizb:
		lo, _ = quran.HizbPageRange(first)
		_, hi = quran.HizbPageRange(last)
	default:
		return ""
	}
	if lo == hi {
		return fmt.Sprintf("page %d", lo)
	}
	return fmt.Sprintf("pages %d-%d", lo, hi)
}
