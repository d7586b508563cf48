package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/migrations"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestLocalUserRepo(t *testing.T, dialect string) (*localUserRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var classifier ErrorClassificator = NewSQLiteErrorClassifier()
	if dialect == migrations.DialectPostgres {
		classifier = NewPostgresErrorClassifier()
	}

	l := logger.Nop()
	repo := &localUserRepository{
		db:     &DB{DB: db, dialect: dialect, errorClassificator: classifier, logger: l},
		logger: l,
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows(userColumns)
}

func addUserRow(rows *sqlmock.Rows, u models.User) *sqlmock.Rows {
	var picture any
	if u.ProfilePictureURL != nil {
		picture = *u.ProfilePictureURL
	}
	return rows.AddRow(u.ID, u.Username, u.Name, u.Surname, u.Email, u.PasswordHash,
		u.Gender, u.DateOfBirth, string(u.Role), u.RegistrationDate, picture)
}

func sampleUser() models.User {
	return models.User{
		Username:         "alice",
		Name:             "Alice",
		Surname:          "Smith",
		Email:            "alice@example.com",
		PasswordHash:     "hash",
		Gender:           "Female",
		DateOfBirth:      "01/02/1990",
		Role:             models.RoleUser,
		RegistrationDate: "18/10/2026",
	}
}

// ── Insert ──

func TestLocalInsert_Success(t *testing.T) {
	repo, mock := newTestLocalUserRepo(t, migrations.DialectSQLite)
	user := sampleUser()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.Name, user.Surname, user.Email, user.PasswordHash,
			user.Gender, user.DateOfBirth, "user", user.RegistrationDate, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	created, err := repo.Insert(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, user.Email, created.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalInsert_PostgresUniqueViolation(t *testing.T) {
	repo, mock := newTestLocalUserRepo(t, migrations.DialectPostgres)

	mock.ExpectQuery(`INSERT INTO users .* VALUES \(\$1,\$2`).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Insert(context.Background(), sampleUser())
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLocalInsert_SQLiteUniqueViolation(t *testing.T) {
	repo, mock := newTestLocalUserRepo(t, migrations.DialectSQLite)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})

	_, err := repo.Insert(context.Background(), sampleUser())
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLocalInsert_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestLocalUserRepo(t, migrations.DialectSQLite)

	mock.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Insert(context.Background(), sampleUser())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}

// ── Update / Delete ──

func TestLocalUpdate_Success(t *testing.T) {
	repo, mock := newTestLocalUserRepo(t, migrations.DialectSQLite)
	user := sampleUser()
	user.ID = 3

	mock.ExpectExec("UPDATE users SET").
		WithArgs(user.Username, user.Name, user.Surname, user.Email, user.PasswordHash,
			user.Gender, user.DateOfBirth, "user", user.RegistrationDate, sqlmock.AnyArg(), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), user))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalUpdate_MissingRow(t *testing.T) {
	repo, mock := newTestLocalUserRepo(t, migrations.DialectSQLite)
	user := sampleUser()
	user.ID = 99

	mock.ExpectExec("UPDATE users SET").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Update(context.Background(), user), ErrUserNotFound)
}

func TestLocalDelete_ByID(t *testing.T) {
	repo, mock := newTestLocalUserRepo(t, migrations.DialectSQLite)

	mock.ExpectExec(`DELETE FROM users WHERE id = \?`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), models.User{ID: 5, Email: "a@b.com"}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalDelete_ByEmailWhenIDUnknown(t *testing.T) {
	repo, mock := newTestLocalUserRepo(t, migrations.DialectPostgres)

	mock.ExpectExec(`DELETE FROM users WHERE email = \$1`).
		WithArgs("a@b.com").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), models.User{Email: "a@b.com"}))
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── Reads ──

func TestLocalGetAll(t *testing.T) {
	repo, mock := newTestLocalUserRepo(t, migrations.DialectSQLite)

	pic := "https://cdn.example.com/p.jpg"
	first := sampleUser()
	first.ID = 1
	second := sampleUser()
	second.ID = 2
	second.Email = "bob@example.com"
	second.ProfilePictureURL = &pic

	mock.ExpectQuery("SELECT .* FROM users ORDER BY id").
		WillReturnRows(addUserRow(addUserRow(userRows(), first), second))

	users, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Nil(t, users[0].ProfilePictureURL)
	require.NotNil(t, users[1].ProfilePictureURL)
	assert.Equal(t, pic, *users[1].ProfilePictureURL)
	assert.Equal(t, models.RoleUser, users[1].Role)
}

func TestLocalGetAll_EmptyIsNotNil(t *testing.T) {
	repo, mock := newTestLocalUserRepo(t, migrations.DialectSQLite)

	mock.ExpectQuery("SELECT .* FROM users").WillReturnRows(userRows())

	users, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestLocalGetAll_QueryError(t *testing.T) {
	repo, mock := newTestLocalUserRepo(t, migrations.DialectSQLite)

	mock.ExpectQuery("SELECT .* FROM users").WillReturnError(errors.New("boom"))

	_, err := repo.GetAll(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestLocalGetByEmail(t *testing.T) {
	repo, mock := newTestLocalUserRepo(t, migrations.DialectSQLite)
	user := sampleUser()
	user.ID = 4

	mock.ExpectQuery(`SELECT .* FROM users WHERE email = \? LIMIT 1`).
		WithArgs(user.Email).
		WillReturnRows(addUserRow(userRows(), user))

	found, err := repo.GetByEmail(context.Background(), user.Email)
	require.NoError(t, err)
	assert.Equal(t, user, found)
}

func TestLocalGetByEmail_NotFound(t *testing.T) {
	repo, mock := newTestLocalUserRepo(t, migrations.DialectSQLite)

	mock.ExpectQuery("SELECT .* FROM users WHERE email").
		WithArgs("nobody@example.com").
		WillReturnRows(userRows())

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLocalFindByUsername(t *testing.T) {
	repo, mock := newTestLocalUserRepo(t, migrations.DialectSQLite)
	user := sampleUser()
	user.ID = 8

	mock.ExpectQuery(`SELECT .* FROM users WHERE username = \?`).
		WithArgs("alice").
		WillReturnRows(addUserRow(userRows(), user))

	found, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(8), found.ID)
}

// ── ValidateUser / ValidateAdmin ──

func TestLocalValidateUser(t *testing.T) {
	hash, err := utils.HashPassword("Secret123", bcrypt.MinCost)
	require.NoError(t, err)

	user := sampleUser()
	user.ID = 1
	user.PasswordHash = hash

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"matching password", "Secret123", nil},
		{"wrong password", "Secret124", ErrUserNotFound},
		{"empty password", "", ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestLocalUserRepo(t, migrations.DialectSQLite)
			mock.ExpectQuery(`SELECT .* FROM users WHERE email = \? AND role = \?`).
				WithArgs(user.Email, "user").
				WillReturnRows(addUserRow(userRows(), user))

			found, err := repo.ValidateUser(context.Background(), user.Email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.Email, found.Email)
		})
	}
}

func TestLocalValidateUser_AdminRowIsFilteredOut(t *testing.T) {
	repo, mock := newTestLocalUserRepo(t, migrations.DialectSQLite)

	// The role predicate excludes admin rows, so the engine returns nothing.
	mock.ExpectQuery(`WHERE email = \? AND role = \?`).
		WithArgs("admin@t.com", "user").
		WillReturnRows(userRows())

	_, err := repo.ValidateUser(context.Background(), "admin@t.com", "Admin1234")
	assert.ErrorIs(t, err, ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalValidateAdmin_UsesAdminRole(t *testing.T) {
	hash, err := utils.HashPassword("Admin1234", bcrypt.MinCost)
	require.NoError(t, err)

	admin := sampleUser()
	admin.ID = 1
	admin.Email = "admin@t.com"
	admin.Role = models.RoleAdmin
	admin.PasswordHash = hash

	repo, mock := newTestLocalUserRepo(t, migrations.DialectPostgres)
	mock.ExpectQuery(`WHERE email = \$1 AND role = \$2`).
		WithArgs("admin@t.com", "admin").
		WillReturnRows(addUserRow(userRows(), admin))

	found, err := repo.ValidateAdmin(context.Background(), "admin@t.com", "Admin1234")
	require.NoError(t, err)
	assert.True(t, found.IsAdmin())
}

func TestLocalValidateUser_EmptyHashNeverMatches(t *testing.T) {
	user := sampleUser()
	user.PasswordHash = ""

	repo, mock := newTestLocalUserRepo(t, migrations.DialectSQLite)
	mock.ExpectQuery("SELECT .* FROM users").WillReturnRows(addUserRow(userRows(), user))

	_, err := repo.ValidateUser(context.Background(), user.Email, "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// ── Watch ──

func TestLocalWatch_ReemitsAfterMutation(t *testing.T) {
	repo, mock := newTestLocalUserRepo(t, migrations.DialectSQLite)

	first := sampleUser()
	first.ID = 1
	second := sampleUser()
	second.ID = 2
	second.Email = "bob@example.com"

	mock.ExpectQuery("SELECT .* FROM users").WillReturnRows(addUserRow(userRows(), first))
	mock.ExpectQuery("INSERT INTO users").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectQuery("SELECT .* FROM users").
		WillReturnRows(addUserRow(addUserRow(userRows(), first), second))

	sub := repo.Watch(context.Background())
	defer sub.Unsubscribe()

	snapshot := receive(t, sub.Updates())
	require.Len(t, snapshot, 1)

	_, err := repo.Insert(context.Background(), second)
	require.NoError(t, err)

	updated := receive(t, sub.Updates())
	require.Len(t, updated, 2)
	assert.Equal(t, "bob@example.com", updated[1].Email)
}

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()

	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for update")
	}

	var zero T
	return zero
}

// ── Error classification ──

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.SerializationFailure)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.ConnectionFailure)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.True(t, c.IsUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.False(t, c.IsUniqueViolation(sql.ErrNoRows))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.True(t, c.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.False(t, c.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}))
	assert.False(t, c.IsUniqueViolation(errors.New("plain")))
}
