package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var streakDays int

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show your activity streak",
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openServices()
		if err != nil {
			fmt.Println("❌ Storage error:", err)
			return
		}
		defer svc.Close()

		ledger := svc.streak.Summary()
		fmt.Println("🔥 Streak")
		fmt.Println("---------")
		fmt.Printf("Current: %d day(s)\n", ledger.Current)
		fmt.Printf("Best:    %d day(s)\n", ledger.Best)

		if len(ledger.Days) == 0 || streakDays <= 0 {
			return
		}

		dates := make([]string, 0, len(ledger.Days))
		for d := range ledger.Days {
			dates = append(dates, d)
		}
		sort.Sort(sort.Reverse(sort.StringSlice(dates)))
		if len(dates) > streakDays {
			dates = dates[:streakDays]
		}

		fmt.Println("\nRecent activity:")
		for _, d := range dates {
			fmt.Printf("  %s: %d event(s)\n", d, ledger.Days[d])
		}
	},
}

func init() {
	streakCmd.Flags().IntVarP(&streakDays, "days", "d", 7, "recent days to list (0 = none)")
	rootCmd.AddCommand(streakCmd)
}
