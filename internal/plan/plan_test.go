package plan

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"github.com/Sulfuro25/QuranReviser-sub000/internal/models"
	"github.com/Sulfuro25/QuranReviser-sub000/internal/storage"
)

func seed(t *testing.T, plan string, progress string) *storage.MemStore {
	t.Helper()
	store := storage.NewMemStore()
	if plan != "" {
		store.Set(models.KeyDailyPlan, plan)
	}
	if progress != "" {
		store.Set(models.KeyProgress, progress)
	}
	return store
}

func TestProjectNoPlan(t *testing.T) {
	store := seed(t, "", `{"2":286}`)
	if proj := Project(store); proj.Status != StatusNoPlan {
		t.Errorf("status = %s, want no_plan", proj.Status)
	}
}

func TestProjectNoTrackedPages(t *testing.T) {
	// Progress only covers page 1; the plan starts at page 50.
	store := seed(t,
		`{"unit":"pages","amount":5,"startValue":50,"completedAssignments":0}`,
		`{"1":7}`)
	if proj := Project(store); proj.Status != StatusNoPages {
		t.Errorf("status = %s, want no_pages", proj.Status)
	}
}

func TestProjectPageAssignment(t *testing.T) {
	store := seed(t,
		`{"unit":"pages","amount":5,"startValue":10,"completedAssignments":2}`,
		`{"2":286}`)

	proj := Project(store)
	if proj.Status != StatusActive {
		t.Fatalf("status = %s, want active", proj.Status)
	}
	if !reflect.DeepEqual(proj.Assignment, []int{20, 21, 22, 23, 24}) {
		t.Errorf("assignment = %v, want [20 21 22 23 24]", proj.Assignment)
	}
	if proj.TotalUnits != 595 {
		t.Errorf("totalUnits = %d, want 595", proj.TotalUnits)
	}
	if proj.TotalAssignments != 119 {
		t.Errorf("totalAssignments = %d, want 119", proj.TotalAssignments)
	}
	if proj.RemainingAssignments != 117 {
		t.Errorf("remainingAssignments = %d, want 117", proj.RemainingAssignments)
	}
	if proj.Label != "Pages 20-24" {
		t.Errorf("label = %q, want \"Pages 20-24\"", proj.Label)
	}
	wantPercent := 2.0 / 119.0 * 100
	if math.Abs(proj.ProgressPercent-wantPercent) > 0.001 {
		t.Errorf("percent = %f, want %f", proj.ProgressPercent, wantPercent)
	}
}

func TestProjectComplete(t *testing.T) {
	store := seed(t,
		`{"unit":"pages","amount":5,"startValue":10,"completedAssignments":119}`,
		`{"2":286}`)

	proj := Project(store)
	if proj.Status != StatusComplete {
		t.Fatalf("status = %s, want complete", proj.Status)
	}
	if proj.ProgressPercent != 100 {
		t.Errorf("percent = %f, want 100", proj.ProgressPercent)
	}
	if proj.RemainingAssignments != 0 {
		t.Errorf("remaining = %d, want 0", proj.RemainingAssignments)
	}
}

func TestProjectCompleteEvenWithBogusCounter(t *testing.T) {
	// Assignment start past the unit max signals complete no matter
	// what the completed counter says.
	store := seed(t,
		`{"unit":"pages","amount":100,"startValue":600,"completedAssignments":500}`,
		`{"112":4,"113":5,"114":6}`)

	if proj := Project(store); proj.Status != StatusComplete {
		t.Errorf("status = %s, want complete", proj.Status)
	}
}

func TestProjectJuzAssignment(t *testing.T) {
	// Surah 2 fully memorized covers pages 2-49, i.e. juz 1-3.
	store := seed(t,
		`{"unit":"juz","amount":2,"startValue":1,"completedAssignments":0}`,
		`{"2":286}`)

	proj := Project(store)
	if proj.Status != StatusActive {
		t.Fatalf("status = %s, want active", proj.Status)
	}
	if !reflect.DeepEqual(proj.TrackedUnits, []int{1, 2, 3}) {
		t.Errorf("tracked juz = %v, want [1 2 3]", proj.TrackedUnits)
	}
	if !reflect.DeepEqual(proj.Assignment, []int{1, 2}) {
		t.Errorf("assignment = %v, want [1 2]", proj.Assignment)
	}
	if proj.Label != "Juz 1-2" {
		t.Errorf("label = %q, want \"Juz 1-2\"", proj.Label)
	}
	if proj.PageRange != "pages 1-41" {
		t.Errorf("pageRange = %q, want \"pages 1-41\"", proj.PageRange)
	}
	if proj.TotalAssignments != 15 {
		t.Errorf("totalAssignments = %d, want 15", proj.TotalAssignments)
	}
}

func TestProjectHizbSingular(t *testing.T) {
	store := seed(t,
		`{"unit":"hizb","amount":1,"startValue":1,"completedAssignments":0}`,
		`{"2":286}`)

	proj := Project(store)
	if proj.Label != "Hizb 1" {
		t.Errorf("label = %q, want \"Hizb 1\"", proj.Label)
	}
	if proj.PageRange != "pages 1-10" {
		t.Errorf("pageRange = %q, want \"pages 1-10\"", proj.PageRange)
	}
}

func TestLoadNormalizesBogusValues(t *testing.T) {
	store := seed(t,
		`{"unit":"chapters","amount":0,"startValue":9999,"completedAssignments":-3}`,
		"")

	p, ok := Load(store)
	if !ok {
		t.Fatal("plan not loaded")
	}
	if p.Unit != models.UnitPages {
		t.Errorf("unit = %s, want pages", p.Unit)
	}
	if p.Amount != 1 {
		t.Errorf("amount = %d, want 1", p.Amount)
	}
	if p.StartValue != 1 {
		t.Errorf("startValue = %d, want 1", p.StartValue)
	}
	if p.CompletedAssignments != 0 {
		t.Errorf("completed = %d, want 0", p.CompletedAssignments)
	}
}

func TestLoadCorruptPlan(t *testing.T) {
	store := seed(t, "{{{", "")
	if _, ok := Load(store); ok {
		t.Error("corrupt plan loaded as valid")
	}
}

func TestTrackedPagesProportional(t *testing.T) {
	// Half of surah 2 (143 of 286 ayat over pages 2-49) covers the
	// first 24 of its 48 pages.
	pages := TrackedPages(map[int]int{2: 143})
	if len(pages) != 24 {
		t.Fatalf("page count = %d, want 24", len(pages))
	}
	if pages[0] != 2 || pages[len(pages)-1] != 25 {
		t.Errorf("pages span %d-%d, want 2-25", pages[0], pages[len(pages)-1])
	}
}

func TestTrackedPagesSingleAndClamped(t *testing.T) {
	// Surah 114 lives on page 604; a count beyond its 6 ayat clamps.
	pages := TrackedPages(map[int]int{114: 50})
	if !reflect.DeepEqual(pages, []int{604}) {
		t.Errorf("pages = %v, want [604]", pages)
	}
}

func TestTrackedPagesDeduplicates(t *testing.T) {
	// Surahs 112-114 share page 604.
	pages := TrackedPages(map[int]int{112: 4, 113: 5, 114: 6})
	if !reflect.DeepEqual(pages, []int{604}) {
		t.Errorf("pages = %v, want [604]", pages)
	}
}

func TestProgressIgnoresGarbage(t *testing.T) {
	store := seed(t, "", `{"2":10,"999":5,"abc":3,"3":-1}`)
	got := Progress(store)
	if !reflect.DeepEqual(got, map[int]int{2: 10}) {
		t.Errorf("progress = %v, want map[2:10]", got)
	}
}

func TestProgressKeepsGoodEntriesNextToBadValues(t *testing.T) {
	// A stray non-numeric value (seen in web exports) drops only its
	// own entry, not the whole map.
	store := seed(t, "", `{"2":10,"3":"oops","4":{"n":1},"18":5}`)
	got := Progress(store)
	if !reflect.DeepEqual(got, map[int]int{2: 10, 18: 5}) {
		t.Errorf("progress = %v, want map[2:10 18:5]", got)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	store := storage.NewMemStore()
	p := models.DailyPlan{Unit: models.UnitJuz, Amount: 2, StartValue: 5}
	if !Save(store, p) {
		t.Fatal("save failed")
	}

	raw, _ := store.Get(models.KeyDailyPlan)
	var stored models.DailyPlan
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatalf("stored plan is not valid JSON: %v", err)
	}

	loaded, ok := Load(store)
	if !ok {
		t.Fatal("load failed")
	}
	if loaded.Unit != models.UnitJuz || loaded.Amount != 2 || loaded.StartValue != 5 {
		t.Errorf("round-tripped plan = %+v", loaded)
	}
}
