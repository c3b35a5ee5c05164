package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "List or switch user profiles",
	Long: `Each profile owns a fully separate set of ledgers; nothing
is shared between profiles.`,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openServices()
		if err != nil {
			fmt.Println("❌ Storage error:", err)
			return
		}
		defer svc.Close()

		active := svc.store.Profile()
		profiles := svc.store.Profiles()
		if len(profiles) == 0 {
			profiles = []string{active}
		}

		fmt.Println("👤 Profiles")
		for _, p := range profiles {
			marker := "  "
			if p == active {
				marker = "➡️"
			}
			fmt.Printf("%s %s\n", marker, p)
		}
	},
}

var profileUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Make a profile the default for future commands",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		viper.Set("profile", args[0])
		if err := viper.WriteConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				err = viper.SafeWriteConfig()
			}
			if err != nil {
				fmt.Println("❌ Could not write config:", err)
				return
			}
		}
		fmt.Printf("✅ Active profile is now %q\n", args[0])
	},
}

func init() {
	profileCmd.AddCommand(profileUseCmd)
	rootCmd.AddCommand(profileCmd)
}
