package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-todo-list/internal/models"
)

const todoColumns = `id, user_id, content, has_completed, created_at`

// TodoReadRepository handles todo read operations
type TodoReadRepository struct {
	db *sqlx.DB
}

func NewTodoReadRepository(db *sqlx.DB) *TodoReadRepository {
	return &TodoReadRepository{db: db}
}

// List returns every todo joined with its owner's username, in no particular order.
func (r *TodoReadRepository) List(ctx context.Context) ([]models.Todo, error) {
	const query = `
		SELECT t.id, t.content, t.has_completed, t.created_at, u.username
		FROM todo t
		JOIN "user" u ON t.user_id = u.id
	`

	todos := []models.Todo{}
	err := r.db.SelectContext(ctx, &todos, query)
	logQuery(query, nil, len(todos), err)

	if err != nil {
		return nil, err
	}
	return todos, nil
}

// GetByID returns the todo joined with its owner's username, or nil.
func (r *TodoReadRepository) GetByID(ctx context.Context, id int64) (*models.Todo, error) {
	const query = `
		SELECT t.id, t.content, t.has_completed, t.created_at, u.username
		FROM todo t
		JOIN "user" u ON t.user_id = u.id
		WHERE t.id = $1
	`

	var todo models.Todo
	err := r.db.GetContext(ctx, &todo, query, id)
	logQuery(query, []any{id}, todo, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// ListByUsername returns the todos owned by username. Unknown users have no todos.
func (r *TodoReadRepository) ListByUsername(ctx context.Context, username string) ([]models.Todo, error) {
	const query = `
		SELECT t.id, t.content, t.has_completed, t.created_at
		FROM todo t
		JOIN "user" u ON t.user_id = u.id
		WHERE u.username = $1
	`

	todos := []models.Todo{}
	err := r.db.SelectContext(ctx, &todos, query, username)
	logQuery(query, []any{username}, len(todos), err)

	if err != nil {
		return nil, err
	}
	return todos, nil
}

// TodoWriteRepository handles todo write operations
type TodoWriteRepository struct {
	db *sqlx.DB
}

func NewTodoWriteRepository(db *sqlx.DB) *TodoWriteRepository {
	return &TodoWriteRepository{db: db}
}

// Save inserts a todo for userID. The store fills has_completed and created_at.
func (r *TodoWriteRepository) Save(ctx context.Context, userID int64, content string) (*models.Todo, error) {
	const query = `
		INSERT INTO todo (user_id, content)
		VALUES ($1, $2)
		RETURNING ` + todoColumns
	args := []any{userID, content}

	var todo models.Todo
	err := r.db.GetContext(ctx, &todo, query, args...)
	logQuery(query, args, todo, err)

	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// UpdateContent replaces the content of a todo and returns the updated row, or nil.
func (r *TodoWriteRepository) UpdateContent(ctx context.Context, id int64, content string) (*models.Todo, error) {
	const query = `
		UPDATE todo SET content = $1
		WHERE id = $2
		RETURNING ` + todoColumns
	return r.returning(ctx, query, content, id)
}

// UpdateCompleted sets the completion flag of a todo and returns the updated row, or nil.
func (r *TodoWriteRepository) UpdateCompleted(ctx context.Context, id int64, hasCompleted bool) (*models.Todo, error) {
	const query = `
		UPDATE todo SET has_completed = $1
		WHERE id = $2
		RETURNING ` + todoColumns
	return r.returning(ctx, query, hasCompleted, id)
}

// Delete removes a todo and returns the deleted row, or nil.
func (r *TodoWriteRepository) Delete(ctx context.Context, id int64) (*models.Todo, error) {
	const query = `
		DELETE FROM todo
		WHERE id = $1
		RETURNING ` + todoColumns
	return r.returning(ctx, query, id)
}

func (r *TodoWriteRepository) returning(ctx context.Context, query string, args ...any) (*models.Todo, error) {
	var todo models.Todo
	err := r.db.GetContext(ctx, &todo, query, args...)
	logQuery(query, args, todo, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}
