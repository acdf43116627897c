package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

var todoRowColumns = []string{"id", "user_id", "content", "has_completed", "created_at"}

func TestMigrate(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS "user"`)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS todo`)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`CREATE INDEX IF NOT EXISTS todo_user_id_idx`)).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, Migrate(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_Error(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS "user"`)).WillReturnError(errors.New("permission denied"))

	err := Migrate(context.Background(), db)
	assert.ErrorContains(t, err, "permission denied")
}

func TestUserReadRepository_GetByUsernameAndEmail(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`WHERE username = $1 AND email = $2`)

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs("alice", "a@x.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).AddRow(1, "alice", "a@x.com"))

		user, err := NewUserReadRepository(db).GetByUsernameAndEmail(ctx, "alice", "a@x.com")
		assert.NoError(t, err)
		if assert.NotNil(t, user) {
			assert.Equal(t, int64(1), user.ID)
			assert.Equal(t, "alice", user.Username)
			assert.Equal(t, "a@x.com", *user.Email)
		}
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs("alice", "a@x.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}))

		user, err := NewUserReadRepository(db).GetByUsernameAndEmail(ctx, "alice", "a@x.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("db error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WillReturnError(errors.New("connection reset"))

		user, err := NewUserReadRepository(db).GetByUsernameAndEmail(ctx, "alice", "a@x.com")
		assert.EqualError(t, err, "connection reset")
		assert.Nil(t, user)
	})
}

func TestUserReadRepository_GetIDByUsername(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id FROM "user" WHERE username = $1`)

	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	mock.ExpectQuery(query).WithArgs("alice").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	id, err := repo.GetIDByUsername(ctx, "alice")
	assert.NoError(t, err)
	if assert.NotNil(t, id) {
		assert.Equal(t, int64(7), *id)
	}

	mock.ExpectQuery(query).WithArgs("bob").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	id, err = repo.GetIDByUsername(ctx, "bob")
	assert.NoError(t, err)
	assert.Nil(t, id)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO "user" (username, email)`)

	t.Run("created", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs("alice", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).AddRow(3, "alice", nil))

		user, err := NewUserWriteRepository(db).Save(ctx, "alice", nil)
		assert.NoError(t, err)
		if assert.NotNil(t, user) {
			assert.Equal(t, int64(3), user.ID)
			assert.Nil(t, user.Email)
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs("alice", sqlmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

		user, err := NewUserWriteRepository(db).Save(ctx, "alice", nil)
		assert.ErrorIs(t, err, ErrDuplicateKey)
		assert.Nil(t, user)
	})

	t.Run("other error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WillReturnError(errors.New("disk full"))

		_, err := NewUserWriteRepository(db).Save(ctx, "alice", nil)
		assert.EqualError(t, err, "disk full")
	})
}

func TestTodoReadRepository_List(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`JOIN "user" u ON t.user_id = u.id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "has_completed", "created_at", "username"}).
			AddRow(2, "walk dog", true, now, "bob").
			AddRow(1, "buy milk", false, now, "alice"))

	todos, err := NewTodoReadRepository(db).List(ctx)
	assert.NoError(t, err)
	if assert.Len(t, todos, 2) {
		assert.Equal(t, "bob", todos[0].Username)
		assert.Equal(t, "buy milk", todos[1].Content)
		assert.False(t, todos[1].HasCompleted)
	}
}

func TestTodoReadRepository_ListEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM todo t`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "has_completed", "created_at", "username"}))

	todos, err := NewTodoReadRepository(db).List(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
}

func TestTodoReadRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`WHERE t.id = $1`)

	db, mock := newMockDB(t)
	repo := NewTodoReadRepository(db)

	mock.ExpectQuery(query).WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "has_completed", "created_at", "username"}).
			AddRow(5, "buy milk", false, time.Now(), "alice"))
	todo, err := repo.GetByID(ctx, 5)
	assert.NoError(t, err)
	if assert.NotNil(t, todo) {
		assert.Equal(t, "alice", todo.Username)
	}

	mock.ExpectQuery(query).WithArgs(int64(6)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "has_completed", "created_at", "username"}))
	todo, err = repo.GetByID(ctx, 6)
	assert.NoError(t, err)
	assert.Nil(t, todo)
}

func TestTodoReadRepository_ListByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE u.username = $1`)).WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "has_completed", "created_at"}).
			AddRow(1, "buy milk", false, time.Now()))

	todos, err := NewTodoReadRepository(db).ListByUsername(context.Background(), "alice")
	assert.NoError(t, err)
	if assert.Len(t, todos, 1) {
		assert.Equal(t, "buy milk", todos[0].Content)
		assert.Empty(t, todos[0].Username)
	}
}

func TestTodoWriteRepository_Save(t *testing.T) {
	now := time.Now()

	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO todo (user_id, content)`)).
		WithArgs(int64(1), "buy milk").
		WillReturnRows(sqlmock.NewRows(todoRowColumns).AddRow(10, 1, "buy milk", false, now))

	todo, err := NewTodoWriteRepository(db).Save(context.Background(), 1, "buy milk")
	assert.NoError(t, err)
	if assert.NotNil(t, todo) {
		assert.Equal(t, int64(10), todo.ID)
		assert.Equal(t, int64(1), todo.UserID)
		assert.False(t, todo.HasCompleted)
		assert.Equal(t, now, todo.CreatedAt)
	}
}

func TestTodoWriteRepository_Updates(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	db, mock := newMockDB(t)
	repo := NewTodoWriteRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE todo SET content = $1`)).
		WithArgs("oat milk", int64(5)).
		WillReturnRows(sqlmock.NewRows(todoRowColumns).AddRow(5, 1, "oat milk", false, now))
	todo, err := repo.UpdateContent(ctx, 5, "oat milk")
	assert.NoError(t, err)
	if assert.NotNil(t, todo) {
		assert.Equal(t, "oat milk", todo.Content)
	}

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE todo SET has_completed = $1`)).
		WithArgs(true, int64(5)).
		WillReturnRows(sqlmock.NewRows(todoRowColumns).AddRow(5, 1, "oat milk", true, now))
	todo, err = repo.UpdateCompleted(ctx, 5, true)
	assert.NoError(t, err)
	if assert.NotNil(t, todo) {
		assert.True(t, todo.HasCompleted)
	}

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE todo SET has_completed = $1`)).
		WithArgs(true, int64(99)).
		WillReturnRows(sqlmock.NewRows(todoRowColumns))
	todo, err = repo.UpdateCompleted(ctx, 99, true)
	assert.NoError(t, err)
	assert.Nil(t, todo)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoWriteRepository_Delete(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`DELETE FROM todo`)

	db, mock := newMockDB(t)
	repo := NewTodoWriteRepository(db)

	mock.ExpectQuery(query).WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(todoRowColumns).AddRow(5, 1, "buy milk", false, time.Now()))
	todo, err := repo.Delete(ctx, 5)
	assert.NoError(t, err)
	assert.NotNil(t, todo)

	mock.ExpectQuery(query).WithArgs(int64(5)).WillReturnRows(sqlmock.NewRows(todoRowColumns))
	todo, err = repo.Delete(ctx, 5)
	assert.NoError(t, err)
	assert.Nil(t, todo)

	mock.ExpectQuery(query).WithArgs(int64(6)).WillReturnError(errors.New("timeout"))
	_, err = repo.Delete(ctx, 6)
	assert.EqualError(t, err, "timeout")
}
