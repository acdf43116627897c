package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-todo-list/internal/models"
)

// ErrDuplicateKey is returned when an insert violates a unique constraint.
var ErrDuplicateKey = errors.New("duplicate key")

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsernameAndEmail returns the user matching both username and email, or nil.
func (r *UserReadRepository) GetByUsernameAndEmail(ctx context.Context, username, email string) (*models.User, error) {
	const query = `
		SELECT id, username, email
		FROM "user"
		WHERE username = $1 AND email = $2
		LIMIT 1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, username, email)
	logQuery(query, []any{username, email}, user, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetIDByUsername returns the id of the user with the given username, or nil.
func (r *UserReadRepository) GetIDByUsername(ctx context.Context, username string) (*int64, error) {
	const query = `SELECT id FROM "user" WHERE username = $1`

	var id int64
	err := r.db.GetContext(ctx, &id, query, username)
	logQuery(query, []any{username}, id, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &id, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user. A taken username yields ErrDuplicateKey.
func (r *UserWriteRepository) Save(ctx context.Context, username string, email *string) (*models.User, error) {
	const query = `
		INSERT INTO "user" (username, email)
		VALUES ($1, $2)
		RETURNING id, username, email
	`
	args := []any{username, email}

	var user models.User
	err := r.db.GetContext(ctx, &user, query, args...)
	logQuery(query, args, user, err)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	return &user, nil
}
