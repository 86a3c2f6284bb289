package config

import (
	"errors"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Discord     DiscordConfig  `mapstructure:"discord"`
	Session     SessionConfig  `mapstructure:"session"`
	Logger      LoggerConfig   `mapstructure:"logger"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// DiscordConfig contains Discord OAuth application credentials
type DiscordConfig struct {
	ClientID     string `mapstructure:"clientId"`
	ClientSecret string `mapstructure:"clientSecret"`
	RedirectURI  string `mapstructure:"redirectUri"`
}

// SessionConfig contains session store settings
type SessionConfig struct {
	CookieName      string        `mapstructure:"cookieName"`
	MaxAge          time.Duration `mapstructure:"maxAge"`          // hours
	PreAuthMaxAge   time.Duration `mapstructure:"preAuthMaxAge"`   // minutes
	CleanupInterval time.Duration `mapstructure:"cleanupInterval"` // minutes
	CookieSecure    bool          `mapstructure:"cookieSecure"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// Validate checks that settings without sensible defaults are present
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return errors.New("database host is required")
	}
	if c.Database.Username == "" {
		return errors.New("database username is required")
	}
	if c.Database.Password == "" {
		return errors.New("database password is required")
	}
	if c.Database.Database == "" {
		return errors.New("database name is required")
	}
	if c.Discord.ClientID == "" {
		return errors.New("discord client id is required")
	}
	if c.Discord.ClientSecret == "" {
		return errors.New("discord client secret is required")
	}
	if c.Discord.RedirectURI == "" {
		return errors.New("discord redirect uri is required")
	}
	return nil
}

// IsProduction reports whether the app runs in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
