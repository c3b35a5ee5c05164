package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sulfuro25/QuranReviser-sub000/internal/models"
)

var confidenceCmd = &cobra.Command{
	Use:   "confidence",
	Short: "Rate how well you know a verse or page",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var confidenceSetCmd = &cobra.Command{
	Use:   "set <key> <weak|ok|strong>",
	Short: "Set the confidence level for an item",
	Long: `Set the confidence level for a verse key ("2:255") or page
key ("page:12"). Rating an item also reschedules its next review:
weak in 1 day, ok in 3, strong in 7 (doubling for items already at a
week or more, up to 60 days).`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		level := models.Level(args[1])
		if !level.Valid() {
			fmt.Println("❌ Level must be weak, ok or strong")
			return
		}

		svc, err := openServices()
		if err != nil {
			fmt.Println("❌ Storage error:", err)
			return
		}
		defer svc.Close()

		svc.ledger.Set(args[0], level)
		if item, ok := svc.sched.Get(args[0]); ok {
			fmt.Printf("✅ %s rated %s — next review in %d day(s) (%s)\n",
				args[0], level, item.IntervalDays, item.Due.Format("2006-01-02"))
		} else {
			fmt.Printf("✅ %s rated %s\n", args[0], level)
		}
	},
}

var confidenceClearCmd = &cobra.Command{
	Use:   "clear <key>",
	Short: "Clear an item's confidence rating and schedule",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openServices()
		if err != nil {
			fmt.Println("❌ Storage error:", err)
			return
		}
		defer svc.Close()

		svc.ledger.Set(args[0], "")
		fmt.Printf("🗑️ Cleared %s\n", args[0])
	},
}

var confidenceCountsCmd = &cobra.Command{
	Use:   "counts",
	Short: "Show how many items sit at each level",
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openServices()
		if err != nil {
			fmt.Println("❌ Storage error:", err)
			return
		}
		defer svc.Close()

		counts := svc.ledger.Counts()
		fmt.Println("📊 Confidence")
		fmt.Println("-------------")
		fmt.Printf("Weak:   %d\n", counts[models.LevelWeak])
		fmt.Printf("OK:     %d\n", counts[models.LevelOK])
		fmt.Printf("Strong: %d\n", counts[models.LevelStrong])
	},
}

func init() {
	confidenceCmd.AddCommand(confidenceSetCmd)
	confidenceCmd.AddCommand(confidenceClearCmd)
	confidenceCmd.AddCommand(confidenceCountsCmd)
	rootCmd.AddCommand(confidenceCmd)
}
