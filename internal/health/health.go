package health

import (
	"context"
	"sync"
	"time"
)

const (
	Connected    = "Connected"
	Disconnected = "Disconnected"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Status struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
}

// Monitor remembers the outcome of the last storage probe so the health
// endpoint never blocks on the database.
type Monitor struct {
	db      Pinger
	timeout time.Duration

	mu        sync.RWMutex
	connected bool
	checkedAt time.Time
}

func NewMonitor(db Pinger, timeout time.Duration) *Monitor {
	return &Monitor{db: db, timeout: timeout}
}

func (m *Monitor) Probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.db.Ping(ctx)

	m.mu.Lock()
	m.connected = err == nil
	m.checkedAt = time.Now().UTC()
	m.mu.Unlock()

	return err
}

func (m *Monitor) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	db := Disconnected
	if m.connected {
		db = Connected
	}

	return Status{
		Status:    "OK",
		Timestamp: time.Now().UTC(),
		Database:  db,
	}
}

// CheckedAt is the zero time until the first probe.
func (m *Monitor) CheckedAt() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.checkedAt
}
