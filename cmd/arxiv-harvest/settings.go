package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// The *Setting helpers resolve a value with flag > config file > flag
// default precedence: the flag wins when set on the command line,
// otherwise a configured viper key overrides the flag's default.

func stringSetting(cmd *cobra.Command, flag, key string) string {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

func intSetting(cmd *cobra.Command, flag, key string) int {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetInt(key)
	}
	v, _ := cmd.Flags().GetInt(flag)
	return v
}

func durationSetting(cmd *cobra.Command, flag, key string) time.Duration {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetDuration(key)
	}
	v, _ := cmd.Flags().GetDuration(flag)
	return v
}

func float64Setting(cmd *cobra.Command, flag, key string) float64 {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetFloat64(key)
	}
	v, _ := cmd.Flags().GetFloat64(flag)
	return v
}
