package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/username/assistant-bot/internal/addressbook"
)

// EnvPrefix prefixes environment overrides, e.g. ASSISTANT_STORAGE_FILE
const EnvPrefix = "ASSISTANT"

// Config represents application configuration
type Config struct {
	Storage   StorageConfig   `mapstructure:"storage"`
	Birthdays BirthdaysConfig `mapstructure:"birthdays"`
	Calendar  CalendarConfig  `mapstructure:"calendar"`
	Log       LogConfig       `mapstructure:"log"`
}

// StorageConfig represents address book persistence configuration
type StorageConfig struct {
	File string `mapstructure:"file"` // .json or .yaml/.yml
}

// BirthdaysConfig represents the upcoming-birthdays query configuration
type BirthdaysConfig struct {
	HorizonDays int    `mapstructure:"horizon_days"`
	LeapDay     string `mapstructure:"leap_day"` // "march1", "feb28" or "skip"
}

// CalendarConfig represents working-day calendar configuration
type CalendarConfig struct {
	HolidaysFile string `mapstructure:"holidays_file"` // empty: Saturday/Sunday rule only
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			File: "address_book.json",
		},
		Birthdays: BirthdaysConfig{
			HorizonDays: addressbook.DefaultHorizonDays,
			LeapDay:     string(addressbook.LeapDayMarch1),
		},
		Log: LogConfig{
			File:  "logs/assistant-bot.log",
			Level: "info",
		},
	}
}

// Load loads configuration from file. A missing file leaves the defaults in
// place; environment variables override both.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.assistant-bot")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("storage.file", cfg.Storage.File)
	v.SetDefault("birthdays.horizon_days", cfg.Birthdays.HorizonDays)
	v.SetDefault("birthdays.leap_day", cfg.Birthdays.LeapDay)
	v.SetDefault("calendar.holidays_file", cfg.Calendar.HolidaysFile)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("log.level", cfg.Log.Level)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Storage.File == "" {
		return fmt.Errorf("storage.file is required")
	}
	if c.Birthdays.HorizonDays < 0 {
		return fmt.Errorf("birthdays.horizon_days must not be negative")
	}
	if _, err := addressbook.ParseLeapDayPolicy(c.Birthdays.LeapDay); err != nil {
		return fmt.Errorf("birthdays.leap_day: %w", err)
	}
	return nil
}

// GetLeapDayPolicy returns the configured leap-day policy (default march1)
func (c *BirthdaysConfig) GetLeapDayPolicy() addressbook.LeapDayPolicy {
	policy, err := addressbook.ParseLeapDayPolicy(c.LeapDay)
	if err != nil {
		return addressbook.LeapDayMarch1
	}
	return policy
}

// ExpandEnvVars expands environment variables in path settings
func (c *Config) ExpandEnvVars() {
	c.Storage.File = os.ExpandEnv(c.Storage.File)
	c.Calendar.HolidaysFile = os.ExpandEnv(c.Calendar.HolidaysFile)
	c.Log.File = os.ExpandEnv(c.Log.File)
}

// WriteDefault writes the default configuration file
func WriteDefault(path string) error {
	content := `# Assistant bot configuration

storage:
  # Address book file; .yaml/.yml is stored as YAML, anything else as JSON
  file: address_book.json

birthdays:
  # How many days ahead "birthdays" looks by default
  horizon_days: 7
  # February 29 birthdays in common years: march1, feb28 or skip
  leap_day: march1

calendar:
  # Optional day overrides, one per line: YYYY-MM-DD holiday|workday|weekend [note]
  # Birthdays falling on a day off move to the next working day.
  holidays_file: ""

log:
  file: logs/assistant-bot.log
  level: info
`
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	return os.WriteFile(path, []byte(content), 0644)
}
