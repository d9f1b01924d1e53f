package config

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
)

var (
	serverValueFlags = []string{
		"-a", "-d", "-p", "-m", "-n", "-w", "-t", "-l", "-v", "-f",
		"-sweep", "-hash-time", "-hash-memory", "-hash-threads",
	}
	serverBoolFlags = []string{"-memory", "-strict-passwords"}
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string        gRPC bind address (e.g., ":50051")
//	-d string        PostgreSQL DSN
//	-p string        password pepper
//	-m string        metrics and health address, empty disables
//	-n int           max open DB connections
//	-w duration      per-call DB timeout (e.g., "5s")
//	-t int           session TTL, minutes (0 = sessions never expire)
//	-sweep duration  expired session sweep interval
//	-l string        log format, json or text
//	-v string        log level
//	-f string        audit log file
//	-hash-time, -hash-memory (KiB), -hash-threads   argon2id work factor
//	-memory          use the in-memory user store
//	-strict-passwords  enforce the password strength policy
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. Like a
// malformed value, a hash parameter that does not fit its field panics.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], serverValueFlags, serverBoolFlags...)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.PasswordPepper, "p", config.PasswordPepper, "password pepper")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "metrics and health address")
	fs.IntVar(&config.DBMaxOpenConns, "n", config.DBMaxOpenConns, "max open DB connections")
	fs.DurationVar(&config.DBAcquireTimeout, "w", config.DBAcquireTimeout, "per-call DB timeout")
	sessionTTL := fs.Int("t", int(config.SessionTTL.Minutes()), "session TTL (in minutes, 0 disables)")
	fs.DurationVar(&config.SessionSweepInterval, "sweep", config.SessionSweepInterval, "expired session sweep interval")
	fs.StringVar(&config.LogFormat, "l", config.LogFormat, "log format (json|text)")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")
	fs.StringVar(&config.AuditLogFile, "f", config.AuditLogFile, "audit log file")

	hashTime := fs.Uint("hash-time", uint(config.HashTime), "argon2id iterations")
	hashMemory := fs.Uint("hash-memory", uint(config.HashMemoryKiB), "argon2id memory (KiB)")
	hashThreads := fs.Uint("hash-threads", uint(config.HashThreads), "argon2id parallelism")

	fs.BoolVar(&config.UseInMemoryStore, "memory", config.UseInMemoryStore, "use in-memory user store")
	fs.BoolVar(&config.StrictPasswords, "strict-passwords", config.StrictPasswords, "enforce password strength policy")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTTL = time.Duration(*sessionTTL) * time.Minute
	if *hashTime > math.MaxUint32 {
		panic(fmt.Errorf("-hash-time %d out of range", *hashTime))
	}
	if *hashMemory > math.MaxUint32 {
		panic(fmt.Errorf("-hash-memory %d out of range", *hashMemory))
	}
	if *hashThreads > math.MaxUint8 {
		panic(fmt.Errorf("-hash-threads %d out of range", *hashThreads))
	}
	config.HashTime = uint32(*hashTime)
	config.HashMemoryKiB = uint32(*hashMemory)
	config.HashThreads = uint8(*hashThreads)
}
