package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/CinemaDistrict/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func TestScheduler_ProbesImmediately(t *testing.T) {
	health := mocks.NewMockProber(t)
	log := newTestLogger(t)

	s := New(health, time.Second, log)

	health.EXPECT().Probe(mock.Anything).Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.Len(t, health.Calls, 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	health := mocks.NewMockProber(t)
	log := newTestLogger(t)

	s := New(health, 50*time.Millisecond, log)

	health.EXPECT().Probe(mock.Anything).Return(errors.New("connection refused"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(health.Calls), 1)
	assert.False(t, s.healthy)
}

func TestScheduler_Tick_Recovers(t *testing.T) {
	health := mocks.NewMockProber(t)
	s := New(health, time.Second, newTestLogger(t))

	health.EXPECT().Probe(mock.Anything).Return(errors.New("down")).Once()
	health.EXPECT().Probe(mock.Anything).Return(nil).Once()

	s.tick(context.Background())
	assert.False(t, s.healthy)

	s.tick(context.Background())
	assert.True(t, s.healthy)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	health := mocks.NewMockProber(t)
	log := newTestLogger(t)

	s := New(health, time.Second, log) // interval longer than test

	health.EXPECT().Probe(mock.Anything).Return(nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	health := mocks.NewMockProber(t)
	log := newTestLogger(t)

	s := New(health, 30*time.Millisecond, log)

	health.EXPECT().Probe(mock.Anything).Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(health.Calls), 3)
}
