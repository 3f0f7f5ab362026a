package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver       string
	URL          string
	MaxOpenConns int
	MaxIdleConns int
}

// NewDatabaseConfig creates a new database configuration using Viper
func NewDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Driver:       strings.ToLower(viper.GetString(DBDriver)),
		URL:          viper.GetString(DBURL),
		MaxOpenConns: viper.GetInt(DBMaxOpenConns),
		MaxIdleConns: viper.GetInt(DBMaxIdleConns),
	}
}

// GetConnectionString returns the driver connection string. MySQL DSNs get
// parseTime so DATETIME columns scan into time.Time.
func (c *DatabaseConfig) GetConnectionString() string {
	if c.Driver != DriverMySQL || strings.Contains(c.URL, "parseTime=") {
		return c.URL
	}
	if strings.Contains(c.URL, "?") {
		return c.URL + "&parseTime=true"
	}
	return c.URL + "?parseTime=true"
}

// Validate validates the database configuration
func (c *DatabaseConfig) Validate() error {
	switch c.Driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Driver)
	}

	if c.URL == "" {
		return fmt.Errorf("database URL is required")
	}

	return nil
}
