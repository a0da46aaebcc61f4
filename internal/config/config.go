// Package config wires viper-backed configuration for the fairscan CLI.
// Precedence is flags, then FAIRSCAN_ environment variables, then an
// optional config file, then defaults.
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/fairscan/fairscan/pkg/constants"
	"github.com/fairscan/fairscan/pkg/errors"
)

// Keys understood by the config file and environment.
const (
	KeyOutput  = "output"
	KeyWorkers = "workers"
	KeyLogs    = "log_level"
)

// Init loads configuration. An explicit cfgFile is required to exist; the
// default lookup (fairscan.yaml in the working directory or ~/.config/
// fairscan) is optional.
func Init(cfgFile string) error {
	viper.SetDefault(KeyOutput, "")
	viper.SetDefault(KeyWorkers, constants.DefaultScanWorkers)
	viper.SetDefault(KeyLogs, "info")

	viper.SetEnvPrefix("FAIRSCAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return errors.NewConfigError("viper", "reading config file "+cfgFile, err)
		}
		return nil
	}

	viper.SetConfigName("fairscan")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home + "/.config/fairscan")
	}
	// A missing default config file is fine; anything else is reported.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errors.NewConfigError("viper", "reading config file", err)
		}
	}
	return nil
}

// GetString returns a config value, letting a raw OS environment variable
// win when viper has nothing.
func GetString(key string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return os.Getenv("FAIRSCAN_" + strings.ToUpper(key))
}

// GetInt returns an integer config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}
