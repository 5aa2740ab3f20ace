package config

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// Config is the process-level configuration, read from the environment the
// same way the backend services read theirs.
type Config struct {
	// APIBaseURL is the backend root; the client appends /api itself.
	APIBaseURL string
	// LogFile receives structured logs. The TUI owns the terminal, so
	// logging to stdout would corrupt the screen.
	LogFile string
	// LogLevel is a logrus level name.
	LogLevel string
	// SettingsFile persists UI settings (currently just the language).
	SettingsFile string
	// TranslationOverrides optionally points at a YAML file merged over
	// the built-in dictionaries and hot-reloaded on change.
	TranslationOverrides string
}

func Load() Config {
	return Config{
		APIBaseURL:           getEnv("POSADMIN_API_URL", "http://localhost:8000"),
		LogFile:              getEnv("POSADMIN_LOG_FILE", "posadmin.log"),
		LogLevel:             getEnv("POSADMIN_LOG_LEVEL", "info"),
		SettingsFile:         getEnv("POSADMIN_SETTINGS", defaultSettingsPath()),
		TranslationOverrides: os.Getenv("POSADMIN_TRANSLATIONS"),
	}
}

// SetupLogger configures the global logrus logger per the config.
func (c Config) SetupLogger() (*os.File, error) {
	log.SetFormatter(&log.JSONFormatter{})

	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}

func defaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "posadmin.yaml"
	}
	return dir + "/posadmin/settings.yaml"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
