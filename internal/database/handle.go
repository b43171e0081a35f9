package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stemsi/quizforge/internal/apperr"
)

// Querier is the subset of *sql.Conn and *sql.Tx used by repositories, so
// the same read helpers run inside or outside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Handle owns the single connection to the store. At most one unit of work
// touches the connection at a time; callers block until the guard is free
// or their context ends.
//
// Units are not re-entrant: fn must not call Do or Tx on the same Handle.
// Multi-step writes finish their unit before issuing the follow-up read.
type Handle struct {
	guard  chan struct{}
	db     *sql.DB
	conn   *sql.Conn
	closed bool
}

func newHandle(db *sql.DB, conn *sql.Conn) *Handle {
	return &Handle{
		guard: make(chan struct{}, 1),
		db:    db,
		conn:  conn,
	}
}

// Do runs fn with exclusive access to the connection.
func (h *Handle) Do(ctx context.Context, fn func(ctx context.Context, q Querier) error) error {
	if err := h.acquire(ctx); err != nil {
		return err
	}
	defer h.release()

	return fn(ctx, h.conn)
}

// Tx runs fn inside one transaction with exclusive access to the connection.
// Any error from fn rolls the whole unit back; nothing fn wrote is visible
// to later units unless the commit succeeds.
func (h *Handle) Tx(ctx context.Context, fn func(ctx context.Context, tx *sql.Tx) error) error {
	if err := h.acquire(ctx); err != nil {
		return err
	}
	defer h.release()

	tx, err := h.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Close waits for the in-flight unit, then closes the connection and the
// underlying pool. Later calls fail with apperr.ErrStorageUnavailable.
func (h *Handle) Close() error {
	h.guard <- struct{}{}
	defer h.release()

	if h.closed {
		return nil
	}
	h.closed = true
	return errors.Join(h.conn.Close(), h.db.Close())
}

func (h *Handle) acquire(ctx context.Context) error {
	select {
	case h.guard <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", apperr.ErrStorageUnavailable, ctx.Err())
	}
	if h.closed {
		h.release()
		return fmt.Errorf("%w: handle closed", apperr.ErrStorageUnavailable)
	}
	return nil
}

func (h *Handle) release() {
	<-h.guard
}
