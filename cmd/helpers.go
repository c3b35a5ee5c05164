package cmd

import (
	"github.com/spf13/viper"

	"github.com/Sulfuro25/QuranReviser-sub000/internal/confidence"
	"github.com/Sulfuro25/QuranReviser-sub000/internal/review"
	"github.com/Sulfuro25/QuranReviser-sub000/internal/storage"
	"github.com/Sulfuro25/QuranReviser-sub000/internal/streak"
)

// services bundles the core wired over one open store. The ledger and
// scheduler are coupled at construction: rating an item reschedules
// it in the same call.
type services struct {
	store  *storage.SQLiteStore
	ledger *confidence.Ledger
	sched  *review.Scheduler
	streak *streak.Tracker
}

func openServices() (*services, error) {
	store, err := storage.Open(viper.GetString("profile"))
	if err != nil {
		return nil, err
	}
	ledger := confidence.NewLedger(store)
	return &services{
		store:  store,
		ledger: ledger,
		sched:  review.NewScheduler(store, ledger),
		streak: streak.NewTracker(store),
	}, nil
}

func (s *services) Close() {
	s.store.Close()
}

func dailyLimit() int {
	limit := viper.GetInt("review.daily_limit")
	if limit < 1 {
		limit = 1
	}
	return limit
}
