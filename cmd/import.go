package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/Sulfuro25/QuranReviser-sub000/internal/models"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a backup exported from the web app",
	Long: `Import a JSON backup exported from the QuranReviser web app
into the active profile. Known keys (confidence, review schedule,
streak, progress, revision plan) are picked out of the blob; anything
else is ignored. Existing values are replaced wholesale, the same
last-write-wins rule the sync layer uses.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Println("❌ Cannot read backup:", err)
			return
		}
		if !gjson.ValidBytes(raw) {
			fmt.Println("❌ Backup is not valid JSON")
			return
		}

		svc, err := openServices()
		if err != nil {
			fmt.Println("❌ Storage error:", err)
			return
		}
		defer svc.Close()

		doc := gjson.ParseBytes(raw)
		imported := 0
		for _, key := range models.ProfileKeys {
			// localStorage exports hold values as JSON-encoded
			// strings; newer backups inline them as objects.
			value := doc.Get(key)
			if !value.Exists() {
				continue
			}
			var payload string
			if value.Type == gjson.String {
				payload = value.String()
			} else {
				payload = value.Raw
			}
			if svc.store.Set(key, payload) {
				imported++
			}
		}

		if imported == 0 {
			fmt.Println("⚠️ No known keys found in the backup")
			return
		}
		fmt.Printf("✅ Imported %d key(s) into profile %q\n", imported, svc.store.Profile())
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
