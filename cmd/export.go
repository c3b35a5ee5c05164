package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sulfuro25/QuranReviser-sub000/internal/models"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the active profile as a web-app-compatible backup",
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openServices()
		if err != nil {
			fmt.Println("❌ Storage error:", err)
			return
		}
		defer svc.Close()

		backup := map[string]string{}
		for _, key := range models.ProfileKeys {
			if value, ok := svc.store.Get(key); ok {
				backup[key] = value
			}
		}

		raw, err := json.MarshalIndent(backup, "", "  ")
		if err != nil {
			fmt.Println("❌ Export failed:", err)
			return
		}
		fmt.Println(string(raw))
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
