package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Auth(ctx context.Context) error
	Deauth(ctx context.Context) error
	Role(ctx context.Context) error
	SetRole(ctx context.Context, args []string) error
	Ban(ctx context.Context, args []string) error
	Verify(ctx context.Context, args []string) error
	EmailToken(ctx context.Context, args []string) error
	Ping(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the inspector.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a' with the remaining tokens as
// arguments. Unknown commands are reported back to the user. The loop exits
// on scanner EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("inspector> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: role, deauth, setrole, ban, verify, emailtoken, ping, exit")
			} else {
				printlnFn("Available commands: register, auth, ping, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "auth", "login":
			_ = a.Auth(ctx)

		case "deauth", "logout":
			_ = a.Deauth(ctx)

		case "role":
			_ = a.Role(ctx)

		case "setrole":
			_ = a.SetRole(ctx, args)

		case "ban":
			_ = a.Ban(ctx, args)

		case "verify":
			_ = a.Verify(ctx, args)

		case "emailtoken":
			_ = a.EmailToken(ctx, args)

		case "ping":
			_ = a.Ping(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
