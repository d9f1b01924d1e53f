package config

import "os"

// Environment variables read by parseEnv.
const (
	EnvPasswordPepper = "AUTH_PASSWORD_PEPPER"
	EnvDatabaseDSN    = "AUTH_DATABASE_DSN"
)

// parseEnv overlays secrets that should not appear in a config file or on the
// command line.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv(EnvPasswordPepper); ok && v != "" {
		config.PasswordPepper = v
	}
	if v, ok := os.LookupEnv(EnvDatabaseDSN); ok && v != "" {
		config.DatabaseDSN = v
	}
}
