package ports

import (
	"context"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
)

type Notifier interface {
	NotifyUserRegistered(ctx context.Context, user *domain.User)
	NotifyBookingConfirmed(ctx context.Context, user *domain.User, c *domain.Confirmation)
}
