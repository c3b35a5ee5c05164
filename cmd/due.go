package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var dueLimit int

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show items due for review",
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openServices()
		if err != nil {
			fmt.Println("❌ Storage error:", err)
			return
		}
		defer svc.Close()

		keys := svc.sched.DueList(dueLimit)
		if len(keys) == 0 {
			fmt.Println("✅ Nothing due right now. Good job.")
			return
		}

		fmt.Printf("🔥 %d item(s) due:\n\n", len(keys))

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Item\tLevel\tInterval\tDue")
		fmt.Fprintln(w, "----\t-----\t--------\t---")
		for _, key := range keys {
			level := string(svc.ledger.Get(key))
			if level == "" {
				level = "-"
			}
			item, _ := svc.sched.Get(key)
			fmt.Fprintf(w, "%s\t%s\t%dd\t%s\n",
				key, level, item.IntervalDays, item.Due.Format("2006-01-02 15:04"))
		}
		w.Flush()
	},
}

func init() {
	dueCmd.Flags().IntVarP(&dueLimit, "limit", "n", 0, "max items to show (0 = all)")
	rootCmd.AddCommand(dueCmd)
}
