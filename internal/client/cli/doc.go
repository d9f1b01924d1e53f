// Package cli provides the inspector, an interactive command-line client for
// the auth server.
//
// The inspector keeps one session at a time: auth stores the issued token and
// the following role, deauth and admin commands use it. Commands:
//
//	register                      create an account (prompts for name, email, password)
//	auth                          log in (prompts for name and password)
//	deauth                        revoke the current session
//	role                          show the role of the current session
//	setrole <user_id> <role>      admin: change a user's role
//	ban <user_id> [true|false]    admin: ban or unban a user
//	verify <user_id> [true|false] admin: mark a user's email as verified
//	emailtoken <user_id> [token]  admin: set or clear the email token
//	ping                          check the server is reachable
//	exit | quit                   leave the program
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
