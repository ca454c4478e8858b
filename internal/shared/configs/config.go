package configs

import "time"

// Config holds all configuration for the application.
type Config struct {
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	Report      ReportConfig      `mapstructure:"report" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Archive     ArchiveConfig     `mapstructure:"archive" validate:"required"`
	LiveLog     LiveLogConfig     `mapstructure:"live_log" validate:"required"`
	GBIF        GBIFConfig        `mapstructure:"gbif"`
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
}

// ReportConfig controls how events are classified and bucketed.
type ReportConfig struct {
	Timezone            string   `mapstructure:"timezone" validate:"required,timezone"`
	CollectionResources []string `mapstructure:"collection_resources" validate:"required,min=1,dive,required"`
}

// Location resolves the report timezone. Validation guarantees it loads.
func (c ReportConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// ArchiveConfig locates the historical archive inside file storage.
type ArchiveConfig struct {
	Key string `mapstructure:"key" validate:"required"`
}

// LiveLogConfig holds the SQLite request log settings.
type LiveLogConfig struct {
	DBPath        string `mapstructure:"db_path" validate:"required"`
	BusyTimeoutMs int    `mapstructure:"busy_timeout_ms" validate:"min=0"`
}

// GBIFConfig holds the optional GBIF download-activity source.
type GBIFConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	BaseURL    string        `mapstructure:"base_url" validate:"required_if=Enabled true,omitempty,url"`
	DatasetKey string        `mapstructure:"dataset_key" validate:"required_if=Enabled true"`
	PageSize   int           `mapstructure:"page_size" validate:"min=1,max=1000"`
	CacheTTL   time.Duration `mapstructure:"cache_ttl"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// MetricsConfig holds metrics export settings for CLI runs.
type MetricsConfig struct {
	TextfilePath string `mapstructure:"textfile_path"`
}
