package snapshot

import (
	"context"
	"fmt"
	"time"

	"performance-tracker-backend/internal/logger"

	"github.com/jackc/pgx/v5"
)

// Refresher rebuilds derived state after the database changed
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Listener subscribes to the Postgres change channel fed by the triggers that
// database.InstallNotifyTriggers installs, and refreshes on every notification.
type Listener struct {
	dsn            string
	channel        string
	reconnectDelay time.Duration
	refresher      Refresher
	log            *logger.Logger
}

// NewListener creates a listener for channel on the database at dsn
func NewListener(dsn, channel string, reconnectDelay time.Duration, refresher Refresher) *Listener {
	if reconnectDelay <= 0 {
		reconnectDelay = 5 * time.Second
	}
	return &Listener{
		dsn:            dsn,
		channel:        channel,
		reconnectDelay: reconnectDelay,
		refresher:      refresher,
		log:            logger.WithComponent("snapshot-listener").WithField("channel", channel),
	}
}

// Run listens until ctx is cancelled, reconnecting after connection failures.
// It returns nil once ctx is done.
func (l *Listener) Run(ctx context.Context) error {
	for {
		err := l.listen(ctx)
		if ctx.Err() != nil {
			return nil
		}

		l.log.WithError(err).WithField("retry_in", l.reconnectDelay.String()).Warn("Change listener disconnected")

		timer := time.NewTimer(l.reconnectDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	l.log.Info("Listening for database changes")

	// Changes made while disconnected produced no notification we could see.
	l.refresh(ctx, "")

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}
		l.refresh(ctx, notification.Payload)
	}
}

func (l *Listener) refresh(ctx context.Context, table string) {
	if err := l.refresher.Refresh(ctx); err != nil {
		if ctx.Err() == nil {
			l.log.WithError(err).WithField("table", table).Error("Failed to refresh snapshot")
		}
		return
	}
	l.log.WithField("table", table).Debug("Snapshot refreshed")
}
