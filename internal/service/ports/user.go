package ports

import (
	"context"
	"time"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, upd domain.ProfileUpdate, at time.Time) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string, at time.Time) error
}

type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}
