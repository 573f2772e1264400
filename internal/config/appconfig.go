// internal/config/appconfig.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// AppKey defines an application-level configuration key. The site registers
// its keys with Load, which handles config files, environment variables, and
// command-line flags with the same precedence as the core keys.
type AppKey struct {
	// Name is the key name (e.g., "smtp_host"). Used as-is for config files
	// and CLI flags; uppercased and prefixed for env vars (FOLIO_SMTP_HOST).
	Name string

	// Default is the default value if not set elsewhere.
	// Supported types: string, int, int64, bool.
	Default any

	// Desc is a short description for --help output.
	Desc string
}

// AppConfigValues holds the loaded app configuration values keyed by
// AppKey.Name.
type AppConfigValues map[string]any

// String returns a string value or empty string if not found/wrong type.
func (a AppConfigValues) String(key string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return ""
}

// Int returns an int value or 0 if not found/wrong type.
// Handles both int and int64 (TOML/Viper returns int64 for integers).
func (a AppConfigValues) Int(key string) int {
	switch v := a[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

// Bool returns a bool value or false if not found/wrong type.
func (a AppConfigValues) Bool(key string) bool {
	if v, ok := a[key].(bool); ok {
		return v
	}
	return false
}

// Duration parses a duration value from the config. Accepts duration strings
// ("10m", "90s"), numeric values (seconds), or plain numeric strings.
// Returns def if the key is missing, empty, or invalid.
func (a AppConfigValues) Duration(key string, def time.Duration) time.Duration {
	raw := a[key]
	if raw == nil {
		return def
	}
	dur, err := parseDurationFlexible(raw, def)
	if err != nil {
		return def
	}
	return dur
}

// loadAppConfig loads app-specific configuration with the same precedence as
// the core config: flags > env > config files > defaults. Called from Load
// after pflags are parsed and config files are merged into v.
func loadAppConfig(logger *zap.Logger, v *viper.Viper, envPrefix string, keys []AppKey) AppConfigValues {
	if len(keys) == 0 {
		return make(AppConfigValues)
	}

	appV := viper.New()
	appV.SetEnvPrefix(envPrefix)
	appV.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	appV.AutomaticEnv()

	for _, key := range keys {
		appV.SetDefault(key.Name, key.Default)
		_ = appV.BindEnv(key.Name)

		// Config files are merged into the main viper instance.
		if v.IsSet(key.Name) {
			appV.Set(key.Name, v.Get(key.Name))
		}

		if f := pflag.Lookup(key.Name); f != nil && f.Changed {
			_ = appV.BindPFlag(key.Name, f)
		}
	}

	result := make(AppConfigValues, len(keys))
	for _, key := range keys {
		result[key.Name] = appV.Get(key.Name)
	}

	if logger != nil {
		fields := make([]zap.Field, 0, len(keys))
		for _, key := range keys {
			nameLower := strings.ToLower(key.Name)
			if strings.Contains(nameLower, "key") ||
				strings.Contains(nameLower, "secret") ||
				strings.Contains(nameLower, "password") ||
				strings.Contains(nameLower, "token") {
				fields = append(fields, zap.String(key.Name, "[REDACTED]"))
			} else {
				fields = append(fields, zap.Any(key.Name, result[key.Name]))
			}
		}
		logger.Info("app config loaded", fields...)
	}

	return result
}

// registerAppFlags registers command-line flags for app config keys.
// Must be called before pflag.Parse().
func registerAppFlags(keys []AppKey) error {
	for _, key := range keys {
		if pflag.Lookup(key.Name) != nil {
			return fmt.Errorf("config key %q conflicts with existing flag", key.Name)
		}

		switch d := key.Default.(type) {
		case string:
			pflag.String(key.Name, d, key.Desc)
		case int:
			pflag.Int(key.Name, d, key.Desc)
		case int64:
			pflag.Int64(key.Name, d, key.Desc)
		case bool:
			pflag.Bool(key.Name, d, key.Desc)
		default:
			return fmt.Errorf("config key %q has unsupported default type %T", key.Name, key.Default)
		}
	}
	return nil
}
