// Command friendsplit serves the bill-splitting page.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/friendsplit/internal/config"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:          "friendsplit",
	Short:        "Split bills with friends",
	Long:         "Keep a list of friends, the balance you have with each, and split bills with them.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config file (default "+config.ConfigPath()+")")
}

func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
