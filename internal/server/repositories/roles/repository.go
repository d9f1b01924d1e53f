package roles

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, userID int64, role models.Role) error
	GetByUserID(ctx context.Context, userID int64) (models.Role, error)
	Update(ctx context.Context, userID int64, role models.Role) error
}
