package storage

import (
	"context"
	"time"
)

// schema is the full database schema, applied idempotently at startup.
// Audit log rows keep denormalized scout names on purpose: they must survive
// roster deletions, so there is no foreign key from logs to users.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id           SERIAL PRIMARY KEY,
    username     TEXT NOT NULL UNIQUE,
    name         TEXT NOT NULL,
    level        TEXT NOT NULL,
    is_admin     BOOLEAN NOT NULL DEFAULT FALSE,
    is_online    BOOLEAN NOT NULL DEFAULT FALSE,
    banner_color TEXT NOT NULL DEFAULT '',
    pin_hash     TEXT NOT NULL,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS inventory (
    user_id     INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    cookie_type TEXT NOT NULL,
    starting    INTEGER NOT NULL DEFAULT 0,
    additional  INTEGER NOT NULL DEFAULT 0,
    sold        INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (user_id, cookie_type)
);

CREATE TABLE IF NOT EXISTS inventory_logs (
    id          UUID PRIMARY KEY,
    user_id     INTEGER NOT NULL,
    user_name   TEXT NOT NULL,
    cookie_type TEXT NOT NULL,
    field       TEXT NOT NULL,
    old_value   INTEGER NOT NULL,
    new_value   INTEGER NOT NULL,
    changed_by  TEXT NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS trades (
    id             UUID PRIMARY KEY,
    from_user_id   INTEGER NOT NULL,
    from_user_name TEXT NOT NULL,
    to_user_id     INTEGER NOT NULL,
    to_user_name   TEXT NOT NULL,
    offering       JSONB NOT NULL,
    requesting     JSONB NOT NULL,
    status         TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'accepted', 'rejected')),
    created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS booths (
    id         UUID PRIMARY KEY,
    business   TEXT NOT NULL,
    location   TEXT NOT NULL,
    notes      TEXT NOT NULL DEFAULT '',
    date       TEXT NOT NULL,
    start_time TEXT NOT NULL,
    end_time   TEXT NOT NULL,
    duration   TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS meetings (
    id          UUID PRIMARY KEY,
    title       TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    date        TEXT NOT NULL,
    start_time  TEXT NOT NULL,
    end_time    TEXT NOT NULL,
    location    TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS notifications (
    id         UUID PRIMARY KEY,
    type       TEXT NOT NULL,
    title      TEXT NOT NULL,
    message    TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS notification_reads (
    notification_id UUID NOT NULL REFERENCES notifications(id) ON DELETE CASCADE,
    user_id         INTEGER NOT NULL,
    PRIMARY KEY (notification_id, user_id)
);

CREATE TABLE IF NOT EXISTS messages (
    id           UUID PRIMARY KEY,
    sender_id    INTEGER NOT NULL,
    sender_name  TEXT NOT NULL,
    recipient_id INTEGER,
    content      TEXT NOT NULL,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Bootstrap applies the schema. Safe to run on every startup.
func (postgresql *PostgreSQL) Bootstrap(ctx context.Context) error {
	const bootstrapTimeout = 30 * time.Second
	ctx, cancel := context.WithTimeout(ctx, bootstrapTimeout)
	defer cancel()

	if _, err := postgresql.db.ExecContext(ctx, schema); err != nil {
		postgresql.log.Sugar().Errorf("Failed to apply database schema: %s", err)
		return err
	}
	return nil
}

// ResetSystem wipes every table. The caller reseeds the roster afterwards;
// this is the only operation that ever removes audit log entries.
func (postgresql *PostgreSQL) ResetSystem(ctx context.Context) error {
	const resetQuery = `TRUNCATE users, inventory, inventory_logs, trades, booths, meetings, notifications, notification_reads, messages RESTART IDENTITY;`
	if _, err := postgresql.db.ExecContext(ctx, resetQuery); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query resetQuery: %s", err)
		return err
	}
	return nil
}
