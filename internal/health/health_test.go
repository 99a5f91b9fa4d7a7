package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/CinemaDistrict/internal/health/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMonitor_DisconnectedBeforeFirstProbe(t *testing.T) {
	m := NewMonitor(mocks.NewMockPinger(t), time.Second)

	st := m.Status()

	assert.Equal(t, "OK", st.Status)
	assert.Equal(t, Disconnected, st.Database)
	assert.True(t, m.CheckedAt().IsZero())
}

func TestMonitor_ProbeSuccess(t *testing.T) {
	db := mocks.NewMockPinger(t)
	m := NewMonitor(db, time.Second)

	db.EXPECT().Ping(mock.Anything).Return(nil)

	require.NoError(t, m.Probe(context.Background()))
	assert.Equal(t, Connected, m.Status().Database)
	assert.False(t, m.CheckedAt().IsZero())
}

func TestMonitor_ProbeFailureFlipsStatus(t *testing.T) {
	db := mocks.NewMockPinger(t)
	m := NewMonitor(db, time.Second)

	db.EXPECT().Ping(mock.Anything).Return(nil).Once()
	db.EXPECT().Ping(mock.Anything).Return(errors.New("connection refused")).Once()

	require.NoError(t, m.Probe(context.Background()))
	require.Error(t, m.Probe(context.Background()))

	assert.Equal(t, Disconnected, m.Status().Database)
}

func TestMonitor_ProbeAppliesTimeout(t *testing.T) {
	db := mocks.NewMockPinger(t)
	m := NewMonitor(db, 50*time.Millisecond)

	db.EXPECT().Ping(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	err := m.Probe(context.Background())

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, Disconnected, m.Status().Database)
}
