package cmd

import (
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Sulfuro25/QuranReviser-sub000/internal/review"
	"github.com/Sulfuro25/QuranReviser-sub000/internal/storage"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "quranreviser",
	Short: "A Quran memorization companion",
	Long: `QuranReviser tracks your hifdh from the command line:
rate verses weak/ok/strong, review them on a spaced-repetition
schedule, follow a daily revision plan, and keep your streak going.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.quranreviser.yaml)")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "user profile to operate on (default from config)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "", "log level: debug, info, warn, error")

	viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	viper.BindPFlag("loglevel", rootCmd.PersistentFlags().Lookup("loglevel"))
}

// initConfig reads in the config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".quranreviser")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("quranreviser")
	viper.AutomaticEnv()

	viper.SetDefault("profile", storage.DefaultProfile)
	viper.SetDefault("review.daily_limit", review.DefaultPlanLimit)
	viper.SetDefault("loglevel", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("⚠️ Config error: %v\n", err)
		}
	}

	setLogLevel(viper.GetString("loglevel"))
}

func setLogLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		storage.Log.SetLevel(logrus.DebugLevel)
	case "warning", "warn":
		storage.Log.SetLevel(logrus.WarnLevel)
	case "error":
		storage.Log.SetLevel(logrus.ErrorLevel)
	default:
		storage.Log.SetLevel(logrus.InfoLevel)
	}
}
