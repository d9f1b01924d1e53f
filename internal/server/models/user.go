// Package models defines the server-side domain types: users, roles and
// sessions.
package models

import "time"

// User is the persisted identity record. PasswordHash is an opaque PHC string
// produced by cryptox.Hasher.
type User struct {
	ID           int64
	Email        string
	UserName     string
	PasswordHash string
	Banned       bool
	Verified     bool
	EmailToken   *string
	CreatedAt    time.Time
}
