package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sulfuro25/QuranReviser-sub000/internal/models"
	"github.com/Sulfuro25/QuranReviser-sub000/internal/review"
)

var reviewLimit int

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Start a review session",
	Long: `Start a review session over today's plan: everything due,
then weak-rated backlog, then ok-rated backlog up to the limit.
Rate each item weak/ok/strong or skip it.`,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openServices()
		if err != nil {
			fmt.Println("❌ Storage error:", err)
			return
		}
		defer svc.Close()

		limit := reviewLimit
		if limit < 1 {
			limit = dailyLimit()
		}

		plan := svc.sched.PlanForToday(limit)
		if len(plan) == 0 {
			fmt.Println("✅ Nothing to review today!")
			return
		}

		fmt.Printf("🔥 %d item(s) to review\n", len(plan))
		for _, group := range review.GroupBySurah(plan) {
			fmt.Printf("   Surah %s: %s\n", group.Surah, strings.Join(group.Keys, ", "))
		}

		reader := bufio.NewReader(os.Stdin)
		reviewed := 0

		for i, key := range plan {
			fmt.Println("\n========================================")
			fmt.Printf("Reviewing [%d/%d]: %s", i+1, len(plan), key)
			if level := svc.ledger.Get(key); level != "" {
				fmt.Printf(" (currently %s)", level)
			}
			fmt.Println()
			fmt.Println("========================================")
			fmt.Print("Rate recall (w: weak, o: ok, s: strong, Enter: skip, q: quit): ")

			input, _ := reader.ReadString('\n')
			input = strings.ToLower(strings.TrimSpace(input))

			var level models.Level
			switch input {
			case "w", "weak":
				level = models.LevelWeak
			case "o", "ok":
				level = models.LevelOK
			case "s", "strong":
				level = models.LevelStrong
			case "q", "quit":
				fmt.Println("👋 Session ended early.")
				finishSession(svc, reviewed)
				return
			default:
				svc.sched.MarkSeen(key)
				fmt.Println("⏭️ Skipped (marked seen).")
				continue
			}

			svc.ledger.Set(key, level)
			reviewed++
			if item, ok := svc.sched.Get(key); ok {
				fmt.Printf("✅ Next review in %d day(s).\n", item.IntervalDays)
			}
		}

		fmt.Println("\n🎉 Review session complete!")
		finishSession(svc, reviewed)
	},
}

func finishSession(svc *services, reviewed int) {
	if reviewed == 0 {
		return
	}
	ledger := svc.streak.Bump()
	fmt.Printf("🔥 Streak: %d day(s) (best %d)\n", ledger.Current, ledger.Best)
}

func init() {
	reviewCmd.Flags().IntVarP(&reviewLimit, "limit", "n", 0, "max items in the session (default from config)")
	rootCmd.AddCommand(reviewCmd)
}
