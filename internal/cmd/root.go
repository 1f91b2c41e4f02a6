package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aerialops/snaptrigger/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "snaptrigger",
	Short: "Hardware-triggered aerial image capture controller",
	Long: `Snaptrigger rides on a survey aircraft's companion computer. The
flight controller pulses a GPIO line at each photo waypoint; snaptrigger
debounces the pulse, drives the tethered camera's capture-and-download
command under a timeout, and keeps per-session capture statistics.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/snaptrigger/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/snaptrigger")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SNAPTRIGGER")
	// Replace dots with underscores for nested keys in env vars
	// e.g., SNAPTRIGGER_CAPTURE_TIMEOUT_SECONDS for capture.timeout_seconds
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
