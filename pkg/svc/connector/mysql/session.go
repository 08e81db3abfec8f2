package mysqlconnector

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrSessionClosed is returned by operations on a closed session.
var ErrSessionClosed = errors.New("session is closed")

// Session is a MySQL connection with one open transaction.
// Statements run inside the transaction; queries issued after Commit run on
// the same connection.
type Session struct {
	db     *sql.DB
	conn   *sql.Conn
	tx     *sql.Tx
	closed bool
}

// Exec runs statement inside the session transaction.
func (s *Session) Exec(ctx context.Context, statement string) error {
	if s.closed {
		return ErrSessionClosed
	}

	if s.tx == nil {
		_, err := s.conn.ExecContext(ctx, statement)
		if err != nil {
			return fmt.Errorf("exec: %w", annotate(err))
		}

		return nil
	}

	_, err := s.tx.ExecContext(ctx, statement)
	if err != nil {
		return fmt.Errorf("exec: %w", annotate(err))
	}

	return nil
}

// Commit commits the session transaction. Later statements run in autocommit mode.
func (s *Session) Commit(_ context.Context) error {
	if s.closed {
		return ErrSessionClosed
	}

	if s.tx == nil {
		return nil
	}

	tx := s.tx
	s.tx = nil

	err := tx.Commit()
	if err != nil {
		return fmt.Errorf("commit: %w", annotate(err))
	}

	return nil
}

// CountRows runs query and counts the rows it returns.
func (s *Session) CountRows(ctx context.Context, query string, args ...any) (int, error) {
	if s.closed {
		return 0, ErrSessionClosed
	}

	var (
		rows *sql.Rows
		err  error
	)

	if s.tx != nil {
		rows, err = s.tx.QueryContext(ctx, query, args...)
	} else {
		rows, err = s.conn.QueryContext(ctx, query, args...)
	}

	if err != nil {
		return 0, fmt.Errorf("query: %w", annotate(err))
	}

	defer func() { _ = rows.Close() }()

	count := 0
	for rows.Next() {
		count++
	}

	err = rows.Err()
	if err != nil {
		return 0, fmt.Errorf("read rows: %w", err)
	}

	return count, nil
}

// Close rolls back an uncommitted transaction and releases the connection and
// its pool. Calling Close again is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}

	s.closed = true

	var errs []error

	if s.tx != nil {
		err := s.tx.Rollback()
		if err != nil && !errors.Is(err, sql.ErrTxDone) {
			errs = append(errs, fmt.Errorf("rollback: %w", err))
		}

		s.tx = nil
	}

	err := s.conn.Close()
	if err != nil && !errors.Is(err, sql.ErrConnDone) {
		errs = append(errs, fmt.Errorf("close connection: %w", err))
	}

	err = s.db.Close()
	if err != nil {
		errs = append(errs, fmt.Errorf("close pool: %w", err))
	}

	return errors.Join(errs...)
}
