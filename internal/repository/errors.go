package repository

import (
	"context"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/stemsi/quizforge/internal/apperr"
	"github.com/stemsi/quizforge/internal/database"
)

// classify maps driver failures onto the error kinds callers branch on.
// Errors that already carry a kind pass through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var se *sqlite.Error
	if errors.As(err, &se) && se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return fmt.Errorf("%w: %s", apperr.ErrConstraintViolation, se.Error())
	}
	return err
}

func notFound(entity string, id int64) error {
	return fmt.Errorf("%w: %s %d", apperr.ErrNotFound, entity, id)
}

// deleteByID removes one row and everything that cascades from it. Deleting
// a missing id is not an error.
//
// foreign_keys is re-enabled first because SQLite ignores the pragma inside a
// transaction, so the delete runs as one plain statement.
func deleteByID(ctx context.Context, db *database.Handle, table string, id int64) error {
	err := db.Do(ctx, func(ctx context.Context, q database.Querier) error {
		if _, err := q.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
			return err
		}
		_, err := q.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, id)
		return err
	})
	return classify(err)
}

// expectAffected turns an UPDATE that touched nothing into NotFound.
func expectAffected(n int64, entity string, id int64) error {
	if n == 0 {
		return notFound(entity, id)
	}
	return nil
}
