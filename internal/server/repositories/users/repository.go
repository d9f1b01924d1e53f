package users

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUserName(ctx context.Context, userName string) (*models.User, error)
	SetBanned(ctx context.Context, userID int64, banned bool) error
	SetVerified(ctx context.Context, userID int64, verified bool) error
	SetEmailToken(ctx context.Context, userID int64, token *string) error
}
