package repository

import (
	"context"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// PostgresPinger exposes the primary connection to the health monitor.
type PostgresPinger struct {
	db *dbpg.DB
}

func NewPostgresPinger(db *dbpg.DB) *PostgresPinger {
	return &PostgresPinger{db: db}
}

func (p *PostgresPinger) Ping(ctx context.Context) error {
	return p.db.Master.PingContext(ctx)
}
