package config

import (
	"fmt"
	"strings"

	"github.com/Veraticus/the-budget-must-balance/internal/common"
	"github.com/Veraticus/the-budget-must-balance/internal/projection"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyDatabasePath     = "database.path"
	KeyCurrency         = "budget.currency"
	KeyProjectionWindow = "projection.window"
	KeyLogLevel         = "logging.level"
	KeyLogFormat        = "logging.format"
)

// DefaultDatabasePath is where the store lives unless configured otherwise.
const DefaultDatabasePath = "~/.local/share/budget/budget.db"

// Settings is the resolved application configuration.
type Settings struct {
	DatabasePath     string
	Currency         string
	LogLevel         string
	LogFormat        string
	ProjectionWindow int
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabasePath, DefaultDatabasePath)
	v.SetDefault(KeyCurrency, "USD")
	v.SetDefault(KeyProjectionWindow, projection.DefaultWindow)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
}

// Load reads Settings from v, expanding the database path.
func Load(v *viper.Viper) Settings {
	return Settings{
		DatabasePath:     ExpandPath(v.GetString(KeyDatabasePath)),
		Currency:         strings.ToUpper(strings.TrimSpace(v.GetString(KeyCurrency))),
		ProjectionWindow: v.GetInt(KeyProjectionWindow),
		LogLevel:         strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat:        strings.ToLower(v.GetString(KeyLogFormat)),
	}
}

// Validate reports every problem with s at once.
func (s Settings) Validate() error {
	var problems []string

	if strings.TrimSpace(s.DatabasePath) == "" {
		problems = append(problems, "database path cannot be empty")
	}

	if s.Currency == "" {
		problems = append(problems, "currency label cannot be empty")
	} else if len(s.Currency) > 8 || strings.ContainsAny(s.Currency, " \t") {
		problems = append(problems, fmt.Sprintf("invalid currency label '%s'", s.Currency))
	}

	if s.ProjectionWindow < projection.MinWindow {
		problems = append(problems, fmt.Sprintf("invalid projection window %d: must be at least %d months", s.ProjectionWindow, projection.MinWindow))
	}

	if _, err := common.ParseLevel(s.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", s.LogLevel))
	}

	validFormats := []string{"text", "json"}
	if !contains(validFormats, s.LogFormat) {
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be one of %v", s.LogFormat, validFormats))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", common.ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
