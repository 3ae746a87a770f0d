package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joern1811/wachatview/internal/app"
)

// Config is the merged result of config file, environment and flags.
type Config struct {
	Locale   string `mapstructure:"locale" json:"locale" validate:"required,bcp47_language_tag"`
	Format   string `mapstructure:"format" json:"format" validate:"oneof=text markdown json"`
	LogLevel string `mapstructure:"log_level" json:"log_level" validate:"oneof=debug info warn error"`
}

func defaultConfig() Config {
	return Config{
		Locale:   "en-US",
		Format:   "text",
		LogLevel: "warn",
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// configDirEnv names a directory that replaces the XDG lookup entirely.
var configDirEnv = strings.ToUpper(app.ApplicationName) + "_CONFIG_DIR"

// configDir resolves where config.json lives: $WACHATVIEW_CONFIG_DIR, else
// $XDG_CONFIG_HOME/wachatview, else ~/.config/wachatview.
func configDir() (string, error) {
	if dir := os.Getenv(configDirEnv); dir != "" {
		return filepath.Clean(dir), nil
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locating config dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, app.ApplicationName), nil
}

func initConfig() {
	defaults := defaultConfig()
	viper.SetDefault("locale", defaults.Locale)
	viper.SetDefault("format", defaults.Format)
	viper.SetDefault("log_level", defaults.LogLevel)

	// Without a resolvable dir only env and flags apply
	if dir, err := configDir(); err == nil {
		viper.AddConfigPath(dir)
	}
	viper.SetConfigType("json")
	viper.SetConfigName("config")

	cobra.CheckErr(viper.BindPFlag("locale", rootCmd.PersistentFlags().Lookup("locale")))
	cobra.CheckErr(viper.BindPFlag("format", rootCmd.Flags().Lookup("format")))

	viper.SetEnvPrefix(strings.ToUpper(app.ApplicationName))
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))
	viper.AutomaticEnv()

	// Silently ignore missing config file
	_ = viper.ReadInConfig()
}

// loadConfig reads the merged configuration and validates it.
func loadConfig() (Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
