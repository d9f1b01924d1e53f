package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  map[string][]string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	if args != nil {
		if f.args == nil {
			f.args = map[string][]string{}
		}
		f.args[name] = args
	}
	return nil
}

func (f *fakeExec) isLoggedIn() bool                   { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error { return f.record("register", nil) }
func (f *fakeExec) Role(ctx context.Context) error     { return f.record("role", nil) }
func (f *fakeExec) Ping(ctx context.Context) error     { return f.record("ping", nil) }
func (f *fakeExec) Auth(ctx context.Context) error {
	f.loggedIn = true
	return f.record("auth", nil)
}
func (f *fakeExec) Deauth(ctx context.Context) error {
	f.loggedIn = false
	return f.record("deauth", nil)
}
func (f *fakeExec) SetRole(ctx context.Context, args []string) error {
	return f.record("setrole", args)
}
func (f *fakeExec) Ban(ctx context.Context, args []string) error { return f.record("ban", args) }
func (f *fakeExec) Verify(ctx context.Context, args []string) error {
	return f.record("verify", args)
}
func (f *fakeExec) EmailToken(ctx context.Context, args []string) error {
	return f.record("emailtoken", args)
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_DispatchesCommandsInOrder(t *testing.T) {
	out := captureOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"register",
		"auth",
		"help",
		"role",
		"setrole 2 moderator",
		"ban 3",
		"verify 3 false",
		"emailtoken 4 abc",
		"ping",
		"",
		"deauth",
		"foobar",
		"exit",
		"role",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input))

	assert.Equal(t, []string{"register", "auth", "role", "setrole", "ban", "verify", "emailtoken", "ping", "deauth"}, exec.calls)
	assert.Equal(t, []string{"2", "moderator"}, exec.args["setrole"])
	assert.Equal(t, []string{"3"}, exec.args["ban"])
	assert.Equal(t, []string{"3", "false"}, exec.args["verify"])
	assert.Equal(t, []string{"4", "abc"}, exec.args["emailtoken"])

	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "Available commands: register, auth, ping, exit")
	assert.Contains(t, joined, "Available commands: role, deauth")
	assert.Contains(t, joined, "Unknown command:foobar")
	assert.Contains(t, joined, "Bye!")
}

func TestRunREPL_AliasesAndEOF(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(strings.NewReader("login\nlogout\n")))

	assert.Equal(t, []string{"auth", "deauth"}, exec.calls)
}

func TestRunREPL_QuitImmediately(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(strings.NewReader("quit\n")))

	assert.Empty(t, exec.calls)
}
