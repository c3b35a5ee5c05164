package models

import "time"

// Level is the learner's self-rated retention of an item.
type Level string

const (
	LevelWeak   Level = "weak"
	LevelOK     Level = "ok"
	LevelStrong Level = "strong"
)

// Valid reports whether l is one of the three known levels.
func (l Level) Valid() bool {
	return l == LevelWeak || l == LevelOK || l == LevelStrong
}

// ReviewItem is the spaced-repetition state for one item, keyed by a
// verse key ("2:255") or a synthetic page key ("page:12").
// Due is always Last plus IntervalDays at the moment either is set.
type ReviewItem struct {
	Last         time.Time `json:"last"`
	IntervalDays int       `json:"intervalDays"`
	Due          time.Time `json:"due"`
}

// StreakLedger tracks daily activity. Days maps "YYYY-MM-DD" to the
// number of activity events that day and is never pruned.
type StreakLedger struct {
	Current int            `json:"current"`
	Best    int            `json:"best"`
	Days    map[string]int `json:"days"`
}

// PlanUnit is the unit a daily revision plan is expressed in.
type PlanUnit string

const (
	UnitPages PlanUnit = "pages"
	UnitJuz   PlanUnit = "juz"
	UnitHizb  PlanUnit = "hizb"
)

// Max returns the highest unit number: 604 pages, 30 juz, 60 hizb.
func (u PlanUnit) Max() int {
	switch u {
	case UnitJuz:
		return 30
	case UnitHizb:
		return 60
	default:
		return 604
	}
}

// DailyPlan is the stored revision plan. CompletedAssignments only
// ever grows; it is advanced when the user finishes an assignment.
type DailyPlan struct {
	Unit                 PlanUnit  `json:"unit"`
	Amount               int       `json:"amount"`
	StartValue           int       `json:"startValue"`
	CompletedAssignments int       `json:"completedAssignments"`
	CreatedAt            time.Time `json:"createdAt"`
	LastCompletedAt      time.Time `json:"lastCompletedAt,omitempty"`
}

// Storage keys used by the web app; the CLI reads and writes the same
// names so a profile round-trips through the browser export intact.
const (
	KeyConfidence = "qr_confidence"
	KeyReview     = "qr_review"
	KeyStreak     = "qr_streak"
	KeyProgress   = "hifdh_progress"
	KeyDailyPlan  = "qr_daily_revision_plan"
)

// ProfileKeys lists every storage key a profile owns, in export order.
var ProfileKeys = []string{
	KeyConfidence,
	KeyReview,
	KeyStreak,
	KeyProgress,
	KeyDailyPlan,
}
