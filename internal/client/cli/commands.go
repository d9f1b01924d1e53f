package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/gophauth/internal/common"
)

var errUsage = errors.New("usage")

func (a *App) Register(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return a.report(err)
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return a.report(err)
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return a.report(err)
	}
	defer common.WipeByteArray(password)

	id, err := a.client.Register(ctx, userName, string(password), email)
	if err != nil {
		return a.report(err)
	}

	fmt.Fprintf(a.out, "Registered %s with id %d\n", userName, id)
	return nil
}

func (a *App) Auth(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return a.report(err)
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return a.report(err)
	}
	defer common.WipeByteArray(password)

	token, err := a.client.Authenticate(ctx, userName, string(password))
	if err != nil {
		return a.report(err)
	}

	fmt.Fprintf(a.out, "Authenticated, session %s\n", fingerprint(token))
	return nil
}

func (a *App) Deauth(ctx context.Context) error {
	if err := a.client.Deauthenticate(ctx); err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Session revoked")
	return nil
}

func (a *App) Role(ctx context.Context) error {
	role, err := a.client.Role(ctx)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "Role: %s\n", role)
	return nil
}

func (a *App) SetRole(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return a.usage("setrole <user_id> <admin|moderator|user>")
	}
	id, err := parseUserID(args[0])
	if err != nil {
		return a.report(err)
	}
	return a.done(a.client.SetUserRole(ctx, id, args[1]))
}

func (a *App) Ban(ctx context.Context, args []string) error {
	id, flag, err := parseIDAndFlag(args)
	if err != nil {
		return a.usage("ban <user_id> [true|false]")
	}
	return a.done(a.client.SetUserBanned(ctx, id, flag))
}

func (a *App) Verify(ctx context.Context, args []string) error {
	id, flag, err := parseIDAndFlag(args)
	if err != nil {
		return a.usage("verify <user_id> [true|false]")
	}
	return a.done(a.client.SetUserVerified(ctx, id, flag))
}

func (a *App) EmailToken(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return a.usage("emailtoken <user_id> [token]")
	}
	id, err := parseUserID(args[0])
	if err != nil {
		return a.report(err)
	}
	var token *string
	if len(args) == 2 {
		token = &args[1]
	}
	return a.done(a.client.SetEmailToken(ctx, id, token))
}

func (a *App) Ping(ctx context.Context) error {
	if err := a.client.Ping(ctx); err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Server is up")
	return nil
}

func (a *App) done(err error) error {
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "OK")
	return nil
}

func (a *App) report(err error) error {
	fmt.Fprintf(a.out, "Error: %v\n", err)
	return err
}

func (a *App) usage(text string) error {
	fmt.Fprintf(a.out, "Usage: %s\n", text)
	return errUsage
}

func parseUserID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid user id %q", s)
	}
	return id, nil
}

// parseIDAndFlag reads "<user_id> [true|false]"; the flag defaults to true.
func parseIDAndFlag(args []string) (int64, bool, error) {
	if len(args) < 1 || len(args) > 2 {
		return 0, false, errUsage
	}
	id, err := parseUserID(args[0])
	if err != nil {
		return 0, false, err
	}
	flag := true
	if len(args) == 2 {
		flag, err = strconv.ParseBool(args[1])
		if err != nil {
			return 0, false, err
		}
	}
	return id, flag, nil
}
