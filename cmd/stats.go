package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sulfuro25/QuranReviser-sub000/internal/models"
	"github.com/Sulfuro25/QuranReviser-sub000/internal/plan"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress and schedule statistics",
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openServices()
		if err != nil {
			fmt.Println("❌ Storage error:", err)
			return
		}
		defer svc.Close()

		counts := svc.ledger.Counts()
		items := svc.sched.Items()
		due := svc.sched.DueList(0)

		longest := 0
		for _, item := range items {
			if item.IntervalDays > longest {
				longest = item.IntervalDays
			}
		}

		tracked := plan.TrackedPages(plan.Progress(svc.store))

		fmt.Println("\n📊 Overview")
		fmt.Println("===========")
		fmt.Printf("Tracked pages:    %d / 604\n", len(tracked))
		fmt.Printf("Scheduled items:  %d\n", len(items))
		fmt.Printf("Due now:          %d\n", len(due))
		fmt.Printf("Longest interval: %d day(s)\n", longest)

		fmt.Println("\n📈 Confidence distribution")
		fmt.Printf("Weak:   %d\n", counts[models.LevelWeak])
		fmt.Printf("OK:     %d\n", counts[models.LevelOK])
		fmt.Printf("Strong: %d\n", counts[models.LevelStrong])
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
