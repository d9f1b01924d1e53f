package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-d", "db", "-p", "pepper", "-m", ":9200",
			"-n", "4", "-w", "2s", "-t", "30", "-sweep", "10s",
			"-l", "text", "-v", "debug", "-f", "audit.log",
			"-hash-time", "2", "-hash-memory", "1024", "-hash-threads", "1",
			"-memory", "-strict-passwords",
		}, expected: &Config{
			EndpointAddrGRPC:     "127.0.0.1:9090",
			DatabaseDSN:          "db",
			PasswordPepper:       "pepper",
			MetricsAddr:          ":9200",
			DBMaxOpenConns:       4,
			DBAcquireTimeout:     2 * time.Second,
			SessionTTL:           30 * time.Minute,
			SessionSweepInterval: 10 * time.Second,
			HashTime:             2,
			HashMemoryKiB:        1024,
			HashThreads:          1,
			LogFormat:            "text",
			LogLevel:             "debug",
			AuditLogFile:         "audit.log",
			UseInMemoryStore:     true,
			StrictPasswords:      true,
		}},
		{name: "unknown flags are ignored", args: []string{"cmd", "-x", "1", "-a", ":1"},
			expected: &Config{EndpointAddrGRPC: ":1"}},
		{name: "bool flags keep the following flag", args: []string{"cmd", "-memory", "-t", "0", "-strict-passwords", "-sweep", "30s"},
			expected: &Config{UseInMemoryStore: true, StrictPasswords: true, SessionSweepInterval: 30 * time.Second}},
		{name: "bool flag ignores a stray value", args: []string{"cmd", "-memory", "yes", "-a", ":1"},
			expected: &Config{UseInMemoryStore: true, EndpointAddrGRPC: ":1"}},
		{name: "bool flag explicit false", args: []string{"cmd", "-strict-passwords=false"},
			expected: &Config{}},
		{name: "malformed duration panics", args: []string{"cmd", "-w", "soon"}, expectPanic: true},
		{name: "hash time overflow panics", args: []string{"cmd", "-hash-time", "4294967296"}, expectPanic: true},
		{name: "hash memory overflow panics", args: []string{"cmd", "-hash-memory", "8589934592"}, expectPanic: true},
		{name: "hash threads overflow panics", args: []string{"cmd", "-hash-threads", "256"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

func TestParseFlags_KeepsCurrentValuesAsDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd"}

	c := validConfig()
	c.SessionTTL = 15 * time.Minute
	want := *c

	parseFlags(c)

	assert.Empty(t, cmp.Diff(&want, c))
}
