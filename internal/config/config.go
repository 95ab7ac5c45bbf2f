package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Schedule ScheduleConfig `mapstructure:"schedule" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Driver is the database/sql driver name: "sqlite3" or "pgx".
	Driver string `mapstructure:"driver" validate:"required,oneof=sqlite3 pgx"`
	// URL is a file path for sqlite3 or a connection string for pgx.
	URL string `mapstructure:"url" validate:"required"`
	// AutoMigrate applies pending migrations when the server starts.
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// ScheduleConfig contains the review interval table.
type ScheduleConfig struct {
	Intervals []int `mapstructure:"intervals" validate:"required,min=1,dive,gt=0"`
}
