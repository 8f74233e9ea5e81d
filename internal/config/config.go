package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Game   GameConfig   `mapstructure:"game" validate:"required"`
	NATS   NATSConfig   `mapstructure:"nats"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// GameConfig contains settings for dealing and drawing boards.
type GameConfig struct {
	// Seed for the board shuffle. Zero seeds from the clock.
	Seed int64 `mapstructure:"seed"`
	// Columns is the width of the rendered grid.
	Columns int `mapstructure:"columns" validate:"required,gt=0,lte=16"`
	// Interface selects the terminal front end: the full-screen "tui" or the
	// line-based "plain" prompt for piped input.
	Interface string `mapstructure:"interface" validate:"required,oneof=tui plain"`
}

// NATSConfig contains settings for publishing board events to NATS.
// Publishing is disabled when URL is empty.
type NATSConfig struct {
	URL     string `mapstructure:"url" validate:"omitempty,url"`
	Subject string `mapstructure:"subject" validate:"required_with=URL"`
}

// Enabled reports whether a NATS URL has been configured.
func (c NATSConfig) Enabled() bool {
	return c.URL != ""
}
