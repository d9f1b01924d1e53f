package store

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Memory is an in-process user store with the same error contract as
// Postgres. It backs local runs and tests.
type Memory struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]models.User
	byName map[string]int64
	emails map[string]int64
	roles  map[int64]models.Role
}

func NewMemory() *Memory {
	return &Memory{
		users:  make(map[int64]models.User),
		byName: make(map[string]int64),
		emails: make(map[string]int64),
		roles:  make(map[int64]models.Role),
	}
}

func (m *Memory) FetchUser(_ context.Context, userName string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byName[userName]
	if !ok {
		return nil, common.KindInvalidUsername.Builder().With("username", userName).Wrap(common.ErrorNotFound)
	}
	u := m.users[id]
	return &u, nil
}

func (m *Memory) FetchRole(_ context.Context, userID int64) (models.Role, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	role, ok := m.roles[userID]
	if !ok {
		return 0, common.KindServerError.Builder().With("user_id", userID).Wrap(common.ErrorNotFound)
	}
	return role, nil
}

func (m *Memory) CreateUserWithRole(_ context.Context, user *models.User, role models.Role) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, nameTaken := m.byName[user.UserName]
	_, emailTaken := m.emails[user.Email]
	if nameTaken || emailTaken {
		return nil, common.KindExistingUser.Builder().With("username", user.UserName).Wrap(common.ErrorAlreadyExists)
	}

	m.nextID++
	u := *user
	u.ID = m.nextID
	u.CreatedAt = time.Now().UTC()

	m.users[u.ID] = u
	m.byName[u.UserName] = u.ID
	m.emails[u.Email] = u.ID
	m.roles[u.ID] = role

	out := u
	return &out, nil
}

func (m *Memory) UpdateRole(_ context.Context, userID int64, role models.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[userID]; !ok {
		return unknownUser(userID)
	}
	m.roles[userID] = role
	return nil
}

func (m *Memory) UpdateBan(_ context.Context, userID int64, banned bool) error {
	return m.mutate(userID, func(u *models.User) { u.Banned = banned })
}

func (m *Memory) UpdateVerify(_ context.Context, userID int64, verified bool) error {
	return m.mutate(userID, func(u *models.User) { u.Verified = verified })
}

func (m *Memory) UpdateEmailToken(_ context.Context, userID int64, token *string) error {
	return m.mutate(userID, func(u *models.User) {
		if token == nil {
			u.EmailToken = nil
			return
		}
		t := *token
		u.EmailToken = &t
	})
}

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) mutate(userID int64, fn func(u *models.User)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return unknownUser(userID)
	}
	fn(&u)
	m.users[userID] = u
	return nil
}

func unknownUser(userID int64) error {
	return common.KindInvalidUsername.Builder().With("user_id", userID).Wrap(common.ErrorNotFound)
}
