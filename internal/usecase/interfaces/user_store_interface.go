package interfaces

import (
	"context"

	"medpipeline/internal/domain/entities"
)

// IUserStore abstracts the remote sheet holding dashboard accounts.

type IUserStore interface {
	FetchAll(ctx context.Context) ([]entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	Update(ctx context.Context, id string, u entities.User) (int, error)
}
