package repository

import (
	"context"

	"github.com/polkiloo/shopdash/internal/domain/model"
)

// UserRepository exposes dashboard contacts.
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
