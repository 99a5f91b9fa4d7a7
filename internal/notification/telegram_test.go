package notification

import (
	"context"
	"testing"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestNewTelegramNotifier_EmptyTokenDisablesBot(t *testing.T) {
	n, err := NewTelegramNotifier("", 42, newTestLogger(t))

	require.NoError(t, err)
	assert.Nil(t, n.bot)
}

func TestTelegramNotifier_DisabledIsNoop(t *testing.T) {
	n, err := NewTelegramNotifier("", 0, newTestLogger(t))
	require.NoError(t, err)

	c := &domain.Confirmation{
		BookingID: "CNDABC123456",
		Booking: domain.Booking{
			Seats: []domain.Seat{{ID: "A1"}},
		},
	}

	assert.NotPanics(t, func() {
		n.NotifyUserRegistered(context.Background(), &domain.User{Name: "Ann", Email: "ann@example.com"})
		n.NotifyBookingConfirmed(context.Background(), &domain.User{Email: "ann@example.com"}, c)
	})
}

func TestEscape(t *testing.T) {
	assert.Equal(t, `john\_doe@example.com`, escape("john_doe@example.com"))
}
