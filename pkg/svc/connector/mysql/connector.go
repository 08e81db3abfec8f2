package mysqlconnector

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"
	databaseprovisioner "github.com/uelms/dbsetup/pkg/svc/provisioner/database"
)

// MySQL server error numbers that get an operator hint.
const (
	erAccessDenied  = 1045
	erBadDatabase   = 1049
	maxOpenSessions = 1
)

// ErrAccessDenied is returned when the server rejects the user or password.
var ErrAccessDenied = errors.New("access denied: check the user and password")

// ErrUnknownDatabase is returned when the named database does not exist on the server.
var ErrUnknownDatabase = errors.New("unknown database: check the database name")

// Opener creates a connection pool for a driver configuration.
type Opener func(cfg *mysql.Config) (*sql.DB, error)

// Connector opens MySQL sessions.
type Connector struct {
	open Opener
}

// NewConnector creates a connector that dials the server with go-sql-driver/mysql.
func NewConnector() *Connector {
	return &Connector{open: openDB}
}

// NewConnectorWithOpener creates a connector that obtains its pool from open.
func NewConnectorWithOpener(open Opener) *Connector {
	return &Connector{open: open}
}

// Config builds the driver configuration for opts.
func Config(opts databaseprovisioner.ConnectOptions) *mysql.Config {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port))
	cfg.DBName = opts.Database
	cfg.User = opts.User
	cfg.Passwd = opts.Password

	if opts.Timeout > 0 {
		cfg.Timeout = opts.Timeout
		cfg.ReadTimeout = opts.Timeout
		cfg.WriteTimeout = opts.Timeout
	}

	return cfg
}

// Connect opens the pool, pins one connection and begins a transaction on it.
func (c *Connector) Connect(
	ctx context.Context,
	opts databaseprovisioner.ConnectOptions,
) (databaseprovisioner.Session, error) {
	db, err := c.open(Config(opts))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", annotate(err))
	}

	db.SetMaxOpenConns(maxOpenSessions)

	conn, err := db.Conn(ctx)
	if err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("connect to %s: %w", net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port)), annotate(err))
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		_ = conn.Close()
		_ = db.Close()

		return nil, fmt.Errorf("begin transaction: %w", annotate(err))
	}

	return &Session{db: db, conn: conn, tx: tx}, nil
}

func openDB(cfg *mysql.Config) (*sql.DB, error) {
	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("build mysql connector: %w", err)
	}

	return sql.OpenDB(connector), nil
}

func annotate(err error) error {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return err
	}

	switch mysqlErr.Number {
	case erAccessDenied:
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)
	case erBadDatabase:
		return fmt.Errorf("%w: %w", ErrUnknownDatabase, err)
	default:
		return err
	}
}
