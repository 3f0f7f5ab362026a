package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{Port: "8080", Host: "localhost"},
		Database: DatabaseConfig{Driver: DriverSQLite, URL: "file:test.db"},
		Redis:    RedisConfig{Addr: "localhost:6379"},
		Scheduler: SchedulerConfig{
			SweepSpec:    "@every 1m",
			PollInterval: time.Second,
			PoolSize:     4,
			BatchSize:    10,
		},
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "localhost:8080", cfg.Server.Address())
	require.Equal(t, DriverPostgres, cfg.Database.Driver)
	require.Equal(t, 25, cfg.Database.MaxOpenConns)
	require.Equal(t, "@every 1m", cfg.Scheduler.SweepSpec)
	require.Equal(t, time.Second, cfg.Scheduler.PollInterval)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv(DBDriver, "MySQL")
	t.Setenv(DBURL, "user:pass@tcp(localhost:3306)/collectioneer")
	t.Setenv(SchedulerPoolSize, "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, DriverMySQL, cfg.Database.Driver)
	require.Equal(t, "user:pass@tcp(localhost:3306)/collectioneer?parseTime=true", cfg.Database.GetConnectionString())
	require.Equal(t, 3, cfg.Scheduler.PoolSize)
}

func TestDatabaseConfig_GetConnectionString(t *testing.T) {
	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "postgres untouched",
			cfg:  DatabaseConfig{Driver: DriverPostgres, URL: "postgres://localhost/db?sslmode=disable"},
			want: "postgres://localhost/db?sslmode=disable",
		},
		{
			name: "mysql with params",
			cfg:  DatabaseConfig{Driver: DriverMySQL, URL: "u@tcp(db)/c?charset=utf8mb4"},
			want: "u@tcp(db)/c?charset=utf8mb4&parseTime=true",
		},
		{
			name: "mysql already parsing time",
			cfg:  DatabaseConfig{Driver: DriverMySQL, URL: "u@tcp(db)/c?parseTime=false"},
			want: "u@tcp(db)/c?parseTime=false",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.cfg.GetConnectionString())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: "server port is required"},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "oracle" }, wantErr: "unsupported database driver"},
		{name: "missing url", mutate: func(c *Config) { c.Database.URL = "" }, wantErr: "database URL is required"},
		{name: "missing redis", mutate: func(c *Config) { c.Redis.Addr = "" }, wantErr: "redis address is required"},
		{name: "bad sweep spec", mutate: func(c *Config) { c.Scheduler.SweepSpec = "whenever" }, wantErr: "invalid scheduler sweep spec"},
		{name: "zero poll interval", mutate: func(c *Config) { c.Scheduler.PollInterval = 0 }, wantErr: "poll interval"},
		{name: "empty pool", mutate: func(c *Config) { c.Scheduler.PoolSize = 0 }, wantErr: "pool size"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}
