package databaseprovisioner

import (
	"context"
	"time"
)

// ConnectOptions carries the coerced connection parameters.
type ConnectOptions struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	// Timeout bounds dialing and each network read/write. Zero leaves the driver default.
	Timeout time.Duration
}

// Connector opens database sessions.
type Connector interface {
	// Connect opens one session. Statements executed on the session are not
	// visible to other clients until Commit.
	Connect(ctx context.Context, opts ConnectOptions) (Session, error)
}

// Session is a single database connection used sequentially.
type Session interface {
	// Exec runs a statement that returns no rows.
	Exec(ctx context.Context, statement string) error
	// Commit makes the executed statements durable.
	Commit(ctx context.Context) error
	// CountRows runs query and returns how many rows it produced.
	CountRows(ctx context.Context, query string, args ...any) (int, error)
	// Close releases the session. It is safe to call more than once.
	Close() error
}
