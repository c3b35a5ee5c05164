package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sulfuro25/QuranReviser-sub000/internal/models"
	"github.com/Sulfuro25/QuranReviser-sub000/internal/plan"
)

var (
	planUnit   string
	planAmount int
	planStart  int
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show today's revision assignment",
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openServices()
		if err != nil {
			fmt.Println("❌ Storage error:", err)
			return
		}
		defer svc.Close()

		proj := plan.Project(svc.store)
		switch proj.Status {
		case plan.StatusNoPlan:
			fmt.Println("ℹ️ No revision plan set. Create one with: quranreviser plan set")
		case plan.StatusNoPages:
			fmt.Println("ℹ️ No memorized pages tracked yet. Record progress with: quranreviser progress set")
		case plan.StatusComplete:
			fmt.Println("🎉 Plan complete! Every assignment is done.")
		case plan.StatusActive:
			fmt.Printf("📖 Today: %s", proj.Label)
			if proj.PageRange != "" {
				fmt.Printf(" (%s)", proj.PageRange)
			}
			fmt.Println()
			fmt.Printf("   Assignment %d of %d (%d remaining) — %.0f%% done\n",
				proj.Plan.CompletedAssignments+1, proj.TotalAssignments,
				proj.RemainingAssignments, proj.ProgressPercent)
		}
	},
}

var planSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or replace the revision plan",
	Run: func(cmd *cobra.Command, args []string) {
		unit := models.PlanUnit(planUnit)
		switch unit {
		case models.UnitPages, models.UnitJuz, models.UnitHizb:
		default:
			fmt.Println("❌ Unit must be pages, juz or hizb")
			return
		}

		svc, err := openServices()
		if err != nil {
			fmt.Println("❌ Storage error:", err)
			return
		}
		defer svc.Close()

		p := models.DailyPlan{
			Unit:       unit,
			Amount:     planAmount,
			StartValue: planStart,
			CreatedAt:  time.Now(),
		}
		if !plan.Save(svc.store, p) {
			fmt.Println("❌ Could not save the plan")
			return
		}
		fmt.Printf("✅ Plan set: %d %s per day starting at %d\n", p.Amount, unit, p.StartValue)
	},
}

var planDoneCmd = &cobra.Command{
	Use:   "done",
	Short: "Mark today's assignment as finished",
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openServices()
		if err != nil {
			fmt.Println("❌ Storage error:", err)
			return
		}
		defer svc.Close()

		p, ok := plan.Load(svc.store)
		if !ok {
			fmt.Println("ℹ️ No revision plan set.")
			return
		}
		p.CompletedAssignments++
		p.LastCompletedAt = time.Now()
		plan.Save(svc.store, p)

		ledger := svc.streak.Bump()
		fmt.Printf("✅ Assignment done! Streak: %d day(s) (best %d)\n", ledger.Current, ledger.Best)
	},
}

func init() {
	planSetCmd.Flags().StringVarP(&planUnit, "unit", "u", "pages", "plan unit: pages, juz or hizb")
	planSetCmd.Flags().IntVarP(&planAmount, "amount", "a", 1, "units per assignment")
	planSetCmd.Flags().IntVarP(&planStart, "start", "s", 1, "unit number to start from")

	planCmd.AddCommand(planSetCmd)
	planCmd.AddCommand(planDoneCmd)
	rootCmd.AddCommand(planCmd)
}
