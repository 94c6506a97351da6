package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Notes    NotesConfig    `mapstructure:"notes"`
	Tags     TagsConfig     `mapstructure:"tags"`
	Fetch    FetchConfig    `mapstructure:"fetch"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig points at the GoodLinks sqlite file.
type DatabaseConfig struct {
	File string `mapstructure:"file"`
}

// NotesConfig points at the Obsidian daily-notes directory.
type NotesConfig struct {
	Dir string `mapstructure:"dir"`
}

// TagsConfig points at the keyword→tag mapping file.
type TagsConfig struct {
	File string `mapstructure:"file"`
}

// FetchConfig bounds page fetches during tag inference.
type FetchConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// Load loads configuration from environment variables and an optional
// config file (goodtag.yaml in the working directory or ~/.goodtag).
func Load() (*Config, error) {
	// Best effort; most installs have no .env
	_ = godotenv.Load(".env")

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not resolve home directory: %w", err)
	}

	v := viper.New()
	v.SetConfigName("goodtag")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join(home, ".goodtag"))

	v.SetDefault("database.file", getEnv("GOODTAG_DB_FILE", defaultDBFile(home)))
	v.SetDefault("notes.dir", getEnv("GOODTAG_NOTES_DIR", defaultNotesDir(home)))
	v.SetDefault("tags.file", getEnv("TAG_FILE", "tag.yaml"))
	v.SetDefault("fetch.timeout", getEnvDuration("GOODTAG_FETCH_TIMEOUT", 10*time.Second))
	v.SetDefault("fetch.user_agent", getEnv("GOODTAG_USER_AGENT", "goodtag-cli/1.0"))
	v.SetDefault("log.level", getEnv("GOODTAG_LOG_LEVEL", "info"))
	v.SetDefault("log.pretty", getEnvBool("GOODTAG_PRETTY_LOG", true))

	v.AutomaticEnv()

	// Config file is optional, env defaults cover everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

// Validate checks the startup preconditions that must fail the whole run.
func (c *Config) Validate() error {
	if _, err := os.Stat(c.Database.File); err != nil {
		return fmt.Errorf("goodlinks data file is not found: %s", c.Database.File)
	}
	return nil
}

func defaultDBFile(home string) string {
	return filepath.Join(home,
		"Library", "Group Containers", "group.com.ngocluu.goodlinks", "Data", "data.sqlite")
}

func defaultNotesDir(home string) string {
	return filepath.Join(home,
		"Library", "Mobile Documents", "iCloud~md~obsidian", "Documents", "Notes", "01. Daily Notes")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	default:
		return defaultValue
	}
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
