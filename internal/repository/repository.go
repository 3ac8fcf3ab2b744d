package repository

import (
	"context"

	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/models"
)

// UserRepository is the persistence contract for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// PhotoRepository is the persistence contract for photo records. GetWithOwner
// performs the owner join explicitly and returns a composed view rather than
// lazily expanding a relation.
type PhotoRepository interface {
	Create(ctx context.Context, photo *models.Photo) error
	List(ctx context.Context) ([]models.Photo, error)
	GetWithOwner(ctx context.Context, id int) (*models.PhotoDetail, error)
}
