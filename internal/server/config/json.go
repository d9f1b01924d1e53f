package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
	"github.com/dmitrijs2005/gophauth/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "1s" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files. Pointer fields distinguish "absent" from zero values, so only keys
// present in the file override what is already in Config.
type JsonConfig struct {
	EndpointAddrGRPC     *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN          *string         `json:"database_dsn"`
	PasswordPepper       *string         `json:"password_pepper"`
	MetricsAddr          *string         `json:"metrics_addr"`
	DBMaxOpenConns       *int            `json:"db_max_open_conns"`
	DBAcquireTimeout     *timex.Duration `json:"db_acquire_timeout"`
	SessionTTL           *timex.Duration `json:"session_ttl"`
	SessionSweepInterval *timex.Duration `json:"session_sweep_interval"`
	HashTime             *uint32         `json:"hash_time"`
	HashMemoryKiB        *uint32         `json:"hash_memory_kib"`
	HashThreads          *uint8          `json:"hash_threads"`
	LogFormat            *string         `json:"log_format"`
	LogLevel             *string         `json:"log_level"`
	AuditLogFile         *string         `json:"audit_log_file"`
	UseInMemoryStore     *bool           `json:"use_in_memory_store"`
	StrictPasswords      *bool           `json:"strict_passwords"`
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setDuration(dst *time.Duration, src *timex.Duration) {
	if src != nil {
		*dst = src.Duration
	}
}

// parseJson loads configuration values from the JSON file named by the -c or
// -config flag. Without the flag nothing is loaded. An unreadable file or
// invalid JSON panics.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	set(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	set(&config.DatabaseDSN, c.DatabaseDSN)
	set(&config.PasswordPepper, c.PasswordPepper)
	set(&config.MetricsAddr, c.MetricsAddr)
	set(&config.DBMaxOpenConns, c.DBMaxOpenConns)
	setDuration(&config.DBAcquireTimeout, c.DBAcquireTimeout)
	setDuration(&config.SessionTTL, c.SessionTTL)
	setDuration(&config.SessionSweepInterval, c.SessionSweepInterval)
	set(&config.HashTime, c.HashTime)
	set(&config.HashMemoryKiB, c.HashMemoryKiB)
	set(&config.HashThreads, c.HashThreads)
	set(&config.LogFormat, c.LogFormat)
	set(&config.LogLevel, c.LogLevel)
	set(&config.AuditLogFile, c.AuditLogFile)
	set(&config.UseInMemoryStore, c.UseInMemoryStore)
	set(&config.StrictPasswords, c.StrictPasswords)
}
