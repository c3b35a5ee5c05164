package review

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/Sulfuro25/QuranReviser-sub000/internal/confidence"
	"github.com/Sulfuro25/QuranReviser-sub000/internal/models"
	"github.com/Sulfuro25/QuranReviser-sub000/internal/storage"
)

var testNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func newTestScheduler(t *testing.T) (*Scheduler, *confidence.Ledger, *storage.MemStore) {
	t.Helper()
	store := storage.NewMemStore()
	ledger := confidence.NewLedger(store)
	sched := NewScheduler(store, ledger)
	sched.Now = func() time.Time { return testNow }
	return sched, ledger, store
}

func TestBaseIntervals(t *testing.T) {
	tests := []struct {
		level models.Level
		days  int
	}{
		{models.LevelWeak, 1},
		{models.LevelOK, 3},
		{models.LevelStrong, 7},
	}

	for _, tt := range tests {
		sched, _, _ := newTestScheduler(t)
		sched.SetConfidence("2:5", tt.level)

		item, ok := sched.Get("2:5")
		if !ok {
			t.Fatalf("%s: item not scheduled", tt.level)
		}
		if item.IntervalDays != tt.days {
			t.Errorf("%s: interval = %d, want %d", tt.level, item.IntervalDays, tt.days)
		}
		wantDue := testNow.Truncate(time.Minute).AddDate(0, 0, tt.days)
		if !item.Due.Equal(wantDue) {
			t.Errorf("%s: due = %v, want %v", tt.level, item.Due, wantDue)
		}
		if !item.Due.Equal(item.Last.AddDate(0, 0, item.IntervalDays)) {
			t.Errorf("%s: due != last + interval", tt.level)
		}
	}
}

func TestStrongEscalation(t *testing.T) {
	sched, _, _ := newTestScheduler(t)

	want := []int{7, 14, 28, 56, 60, 60}
	for i, expected := range want {
		sched.SetConfidence("2:255", models.LevelStrong)
		item, _ := sched.Get("2:255")
		if item.IntervalDays != expected {
			t.Fatalf("strong #%d: interval = %d, want %d", i+1, item.IntervalDays, expected)
		}
	}
}

func TestDowngradeResetsInterval(t *testing.T) {
	sched, _, _ := newTestScheduler(t)

	sched.SetConfidence("2:255", models.LevelStrong)
	sched.SetConfidence("2:255", models.LevelStrong) // 14 days
	sched.SetConfidence("2:255", models.LevelWeak)

	item, _ := sched.Get("2:255")
	if item.IntervalDays != 1 {
		t.Errorf("after downgrade interval = %d, want 1", item.IntervalDays)
	}

	// ok after strong resets to the ok base too.
	sched.SetConfidence("2:255", models.LevelStrong)
	sched.SetConfidence("2:255", models.LevelOK)
	item, _ = sched.Get("2:255")
	if item.IntervalDays != 3 {
		t.Errorf("ok after strong interval = %d, want 3", item.IntervalDays)
	}
}

func TestStrongBelowThresholdUsesBase(t *testing.T) {
	sched, _, _ := newTestScheduler(t)

	// Interval 1 from weak; strong on top of it is below the
	// threshold, so no doubling: plain base 7.
	sched.SetConfidence("3:1", models.LevelWeak)
	sched.SetConfidence("3:1", models.LevelStrong)

	item, _ := sched.Get("3:1")
	if item.IntervalDays != 7 {
		t.Errorf("interval = %d, want 7", item.IntervalDays)
	}
}

func TestClearUnschedules(t *testing.T) {
	sched, ledger, _ := newTestScheduler(t)

	ledger.Set("2:5", models.LevelWeak)
	sched.Now = func() time.Time { return testNow.AddDate(0, 0, 2) }
	if got := sched.DueList(0); len(got) != 1 {
		t.Fatalf("due = %v, want one item", got)
	}

	ledger.Set("2:5", "")
	if got := sched.DueList(0); len(got) != 0 {
		t.Errorf("due after clear = %v, want empty", got)
	}
	if _, ok := sched.Get("2:5"); ok {
		t.Error("item still scheduled after clear")
	}
}

func TestLedgerCouplingReschedules(t *testing.T) {
	sched, ledger, _ := newTestScheduler(t)

	// Setting confidence through the ledger alone must schedule.
	ledger.Set("18:1", models.LevelOK)

	item, ok := sched.Get("18:1")
	if !ok {
		t.Fatal("ledger set did not schedule the item")
	}
	if item.IntervalDays != 3 {
		t.Errorf("interval = %d, want 3", item.IntervalDays)
	}
}

func TestMarkSeenNotImmediatelyDue(t *testing.T) {
	sched, _, _ := newTestScheduler(t)

	sched.MarkSeen("2:5")
	if got := sched.DueList(0); len(got) != 0 {
		t.Errorf("due right after MarkSeen = %v, want empty", got)
	}

	sched.Now = func() time.Time { return testNow.AddDate(0, 0, 1) }
	got := sched.DueList(0)
	if !reflect.DeepEqual(got, []string{"2:5"}) {
		t.Errorf("due after a day = %v, want [2:5]", got)
	}
}

func TestMarkSeenDoesNotMoveDueDate(t *testing.T) {
	sched, _, _ := newTestScheduler(t)

	sched.SetConfidence("2:5", models.LevelOK)
	before, _ := sched.Get("2:5")

	sched.Now = func() time.Time { return testNow.Add(6 * time.Hour) }
	sched.MarkSeen("2:5")

	after, _ := sched.Get("2:5")
	if !after.Due.Equal(before.Due) {
		t.Errorf("due moved from %v to %v", before.Due, after.Due)
	}
	if after.IntervalDays != before.IntervalDays {
		t.Errorf("interval changed from %d to %d", before.IntervalDays, after.IntervalDays)
	}
	if !after.Last.After(before.Last) {
		t.Error("last was not touched")
	}
}

func TestDueListOrderAndLimit(t *testing.T) {
	sched, _, _ := newTestScheduler(t)

	// Stagger due dates by rating on different days.
	days := map[string]int{"2:1": 5, "2:2": 9, "2:3": 7}
	for key, ago := range days {
		sched.Now = func() time.Time { return testNow.AddDate(0, 0, -ago) }
		sched.SetConfidence(key, models.LevelWeak)
	}
	sched.Now = func() time.Time { return testNow }

	got := sched.DueList(0)
	want := []string{"2:2", "2:3", "2:1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("due order = %v, want %v", got, want)
	}

	if got := sched.DueList(2); !reflect.DeepEqual(got, want[:2]) {
		t.Errorf("limited due = %v, want %v", got, want[:2])
	}
}

func TestPlanForTodayDueTakesPriority(t *testing.T) {
	sched, _, _ := newTestScheduler(t)

	// 25 due items, staggered so ordering is observable.
	for i := 1; i <= 25; i++ {
		ago := i
		sched.Now = func() time.Time { return testNow.AddDate(0, 0, -1-ago) }
		sched.SetConfidence(fmt.Sprintf("2:%d", i), models.LevelWeak)
	}
	sched.Now = func() time.Time { return testNow }

	plan := sched.PlanForToday(20)
	if len(plan) != 20 {
		t.Fatalf("plan size = %d, want 20", len(plan))
	}
	// Earliest due = rated longest ago = highest ayah number.
	if plan[0] != "2:25" {
		t.Errorf("plan[0] = %s, want 2:25", plan[0])
	}
	if plan[19] != "2:6" {
		t.Errorf("plan[19] = %s, want 2:6", plan[19])
	}
}

func TestPlanForTodayBackfillsWeakThenOK(t *testing.T) {
	sched, ledger, _ := newTestScheduler(t)

	// 5 due items.
	for i := 1; i <= 5; i++ {
		sched.Now = func() time.Time { return testNow.AddDate(0, 0, -3) }
		ledger.Set(fmt.Sprintf("1:%d", i), models.LevelWeak)
	}
	// 10 weak and 30 ok items rated just now, so none are due.
	sched.Now = func() time.Time { return testNow }
	for i := 1; i <= 10; i++ {
		ledger.Set(fmt.Sprintf("2:%d", i), models.LevelWeak)
	}
	for i := 1; i <= 30; i++ {
		ledger.Set(fmt.Sprintf("3:%d", i), models.LevelOK)
	}

	plan := sched.PlanForToday(20)
	if len(plan) != 20 {
		t.Fatalf("plan size = %d, want 20", len(plan))
	}

	countPrefix := func(keys []string, surah string) int {
		n := 0
		for _, k := range keys {
			s, _, _ := splitKey(k)
			if s == surah {
				n++
			}
		}
		return n
	}
	if n := countPrefix(plan[:5], "1"); n != 5 {
		t.Errorf("first 5 entries: %d due items, want 5", n)
	}
	if n := countPrefix(plan[5:15], "2"); n != 10 {
		t.Errorf("middle 10 entries: %d weak items, want 10", n)
	}
	if n := countPrefix(plan[15:], "3"); n != 5 {
		t.Errorf("last 5 entries: %d ok items, want 5", n)
	}
}

func splitKey(key string) (string, string, bool) {
	for i := 0; i < len(key); i++ {
		if key[i] == ':' {
			return key[:i], key[i+1:], true
		}
	}
	return key, "", false
}

func TestPlanForTodayNeverPullsStrong(t *testing.T) {
	sched, ledger, _ := newTestScheduler(t)

	ledger.Set("2:1", models.LevelWeak)
	ledger.Set("2:2", models.LevelStrong)

	for _, key := range sched.PlanForToday(20) {
		if key == "2:2" {
			t.Error("strong item pulled into the plan early")
		}
	}
}

func TestPlanLimitCoercedToMinimumOne(t *testing.T) {
	sched, ledger, _ := newTestScheduler(t)

	ledger.Set("2:1", models.LevelWeak)
	ledger.Set("2:2", models.LevelWeak)

	if got := sched.PlanForToday(0); len(got) != 1 {
		t.Errorf("plan with limit 0 = %v, want a single item", got)
	}
	if got := sched.PlanForToday(-4); len(got) != 1 {
		t.Errorf("plan with negative limit = %v, want a single item", got)
	}
}

func TestGroupBySurah(t *testing.T) {
	groups := GroupBySurah([]string{"2:5", "2:6", "18:1", "2:7", "page:12"})

	if len(groups) != 3 {
		t.Fatalf("group count = %d, want 3", len(groups))
	}
	if groups[0].Surah != "2" || !reflect.DeepEqual(groups[0].Keys, []string{"2:5", "2:6", "2:7"}) {
		t.Errorf("group 0 = %+v", groups[0])
	}
	if groups[1].Surah != "18" || !reflect.DeepEqual(groups[1].Keys, []string{"18:1"}) {
		t.Errorf("group 1 = %+v", groups[1])
	}
	if groups[2].Surah != "page" {
		t.Errorf("group 2 surah = %s, want page", groups[2].Surah)
	}
}

func TestCorruptScheduleReadsAsEmpty(t *testing.T) {
	sched, _, store := newTestScheduler(t)

	store.Set(models.KeyReview, "{not json")
	if got := sched.DueList(0); len(got) != 0 {
		t.Errorf("due from corrupt store = %v, want empty", got)
	}

	// The next write starts from a clean slate rather than failing.
	sched.SetConfidence("2:5", models.LevelWeak)
	if _, ok := sched.Get("2:5"); !ok {
		t.Error("item not scheduled after recovering from corrupt store")
	}
}

func TestFailedWritesAreSilent(t *testing.T) {
	sched, ledger, store := newTestScheduler(t)
	store.FailWrites = true

	// Must not panic; state simply does not persist.
	ledger.Set("2:5", models.LevelWeak)
	sched.MarkSeen("2:6")
	sched.Remove("2:5")

	if got := sched.DueList(0); len(got) != 0 {
		t.Errorf("due = %v, want empty", got)
	}
}
