package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/quizden/quizden/internal/quiz/store"

	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// dbtx is the common surface of *sql.DB and *sql.Tx, so the repos can run
// against either the root store or a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Ensure rollback is called if we panic or return early with error
	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	// Execute the function
	if err := fn(tx); err != nil {
		return err // rollback happens in defer
	}

	// Commit on success
	return tx.Commit()
}

func (s *Store) Users() store.Users               { return &usersRepo{db: s.db} }
func (s *Store) Questions() store.Questions       { return &questionsRepo{db: s.db} }
func (s *Store) Scores() store.Scores             { return &scoresRepo{db: s.db} }
func (s *Store) Achievements() store.Achievements { return &achievementsRepo{db: s.db} }
func (s *Store) OAuthStates() store.OAuthStates   { return &oauthStatesRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConflict translates SQLite unique constraint violations into
// store.ErrAlreadyExists. The unique indexes, not any preceding lookup,
// are the correctness boundary under concurrent writes.
func mapConflict(err error) error {
	var se *sqlitedrv.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return store.ErrAlreadyExists
		}
	}
	return err
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
