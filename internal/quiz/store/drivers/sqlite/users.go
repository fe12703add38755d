package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/quizden/quizden/internal/quiz/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, username, email, password_hash, google_id, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) GetUserByGoogleID(ctx context.Context, googleID string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE google_id = ?`, googleID)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := u.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = now
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, email, password_hash, google_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Email,
		mapStringNull(u.PasswordHash), mapStringNull(u.GoogleID),
		createdAt, updatedAt)
	if err != nil {
		return mapConflict(err)
	}
	return nil
}

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u            domain.User
		passwordHash sql.NullString
		googleID     sql.NullString
	)
	err := row.Scan(&u.ID, &u.Username, &u.Email, &passwordHash, &googleID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.PasswordHash = mapNullString(passwordHash)
	u.GoogleID = mapNullString(googleID)
	return u, nil
}
