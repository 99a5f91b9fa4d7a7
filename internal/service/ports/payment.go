package ports

import (
	"context"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
	"github.com/stpnv0/CinemaDistrict/internal/payment"
)

type PaymentGateway interface {
	Charge(ctx context.Context, req payment.Request) (*domain.Payment, error)
}
