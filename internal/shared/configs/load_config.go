package configs

import (
	"fmt"
	"strings"

	"dataportal-stats/internal/shared/validators"

	"github.com/spf13/viper"
)

const envPrefix = "DPSTATS"

// DefaultCollectionResources are the data portal resources counted as "collection".
var DefaultCollectionResources = []string{
	"bb909597-dedf-427d-8c04-4c02b3a24db3",
	"05ff2255-c38a-40c9-b657-4ccb55ab2feb",
}

// LoadConfig reads configuration from file and validates it.
// Any key can be overridden from the environment, e.g. DPSTATS_LIVE_LOG_DB_PATH.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// setDefaults registers every key so that a minimal file works and so that
// AutomaticEnv can resolve keys that are absent from the file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("report.timezone", "UTC")
	v.SetDefault("report.collection_resources", DefaultCollectionResources)
	v.SetDefault("file_storage.root_dir", "./data")
	v.SetDefault("archive.key", "legacy.json")
	v.SetDefault("live_log.db_path", "")
	v.SetDefault("live_log.busy_timeout_ms", 5000)
	v.SetDefault("gbif.enabled", false)
	v.SetDefault("gbif.base_url", "https://api.gbif.org/v1")
	v.SetDefault("gbif.dataset_key", "")
	v.SetDefault("gbif.page_size", 500)
	v.SetDefault("gbif.cache_ttl", "4h")
	v.SetDefault("gbif.timeout", "30s")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_header_timeout", 5)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 60)
	v.SetDefault("metrics.textfile_path", "")
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Namespace uses mapstructure names ("Config.live_log.db_path" -> "live_log.db_path")
	if ns := e.Namespace(); ns != "" {
		parts := strings.Split(ns, ".")
		if len(parts) >= 2 {
			field = strings.Join(parts[1:], ".")
		}
	}

	var msg string
	switch tag {
	case "required", "required_if":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
