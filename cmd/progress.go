package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Sulfuro25/QuranReviser-sub000/internal/models"
	"github.com/Sulfuro25/QuranReviser-sub000/internal/plan"
	"github.com/Sulfuro25/QuranReviser-sub000/internal/quran"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Track how many ayat of each surah you have memorized",
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openServices()
		if err != nil {
			fmt.Println("❌ Storage error:", err)
			return
		}
		defer svc.Close()

		progress := plan.Progress(svc.store)
		if len(progress) == 0 {
			fmt.Println("ℹ️ No progress recorded. Use: quranreviser progress set <surah> <ayat>")
			return
		}

		surahs := make([]int, 0, len(progress))
		for s := range progress {
			surahs = append(surahs, s)
		}
		sort.Ints(surahs)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Surah\tMemorized\tTotal")
		fmt.Fprintln(w, "-----\t---------\t-----")
		for _, s := range surahs {
			fmt.Fprintf(w, "%d\t%d\t%d\n", s, progress[s], quran.AyahCount(s))
		}
		w.Flush()

		fmt.Printf("\n📖 Tracked pages: %d / %d\n",
			len(plan.TrackedPages(progress)), quran.PageCount)
	},
}

var progressSetCmd = &cobra.Command{
	Use:   "set <surah> <ayat>",
	Short: "Record memorized ayat for a surah",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		surah, err := strconv.Atoi(args[0])
		if err != nil || surah < 1 || surah > quran.SurahCount {
			fmt.Printf("❌ Surah must be between 1 and %d\n", quran.SurahCount)
			return
		}
		count, err := strconv.Atoi(args[1])
		if err != nil || count < 0 {
			fmt.Println("❌ Ayah count must be a non-negative number")
			return
		}
		if max := quran.AyahCount(surah); count > max {
			count = max
		}

		svc, err := openServices()
		if err != nil {
			fmt.Println("❌ Storage error:", err)
			return
		}
		defer svc.Close()

		// Stored as a string-keyed object, matching the web app.
		stored := map[string]int{}
		if raw, ok := svc.store.Get(models.KeyProgress); ok {
			json.Unmarshal([]byte(raw), &stored)
		}
		if count == 0 {
			delete(stored, strconv.Itoa(surah))
		} else {
			stored[strconv.Itoa(surah)] = count
		}
		raw, _ := json.Marshal(stored)
		svc.store.Set(models.KeyProgress, string(raw))

		fmt.Printf("✅ Surah %d: %d ayat memorized\n", surah, count)
	},
}

func init() {
	progressCmd.AddCommand(progressSetCmd)
	rootCmd.AddCommand(progressCmd)
}
