package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// localUserRepository is the database/sql implementation of
// [LocalUserRepository] over the "users" table.
//
// Every mutation is a single statement, so each one completes or fails
// atomically on its own. Successful mutations wake the Watch listeners.
type localUserRepository struct {
	db     *DB
	logger *logger.Logger
	feed   changeFeed
}

// NewLocalUserRepository constructs a [LocalUserRepository] on db.
func NewLocalUserRepository(db *DB, logger *logger.Logger) LocalUserRepository {
	logger.Debug().Msg("creating local user repository")
	return &localUserRepository{
		db:     db,
		logger: logger,
	}
}

// Insert adds a row and returns it with the generated id.
// A duplicate email yields [ErrEmailAlreadyExists].
func (r *localUserRepository) Insert(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.statementBuilder(), user)
	if err != nil {
		log.Err(err).Str("func", "*localUserRepository.Insert").Msg("error building query")
		return models.User{}, wrapErr(ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		log.Err(err).Str("func", "*localUserRepository.Insert").
			Str("class", r.db.classify(err)).
			Msg("error inserting user")
		if r.db.isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, wrapErr(ErrExecutingStatement, err)
	}

	r.feed.notify()
	return user, nil
}

// Update rewrites every column of the row with user.ID.
func (r *localUserRepository) Update(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.db.statementBuilder(), user)
	if err != nil {
		log.Err(err).Str("func", "*localUserRepository.Update").Msg("error building query")
		return wrapErr(ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*localUserRepository.Update").
			Str("class", r.db.classify(err)).
			Msg("error updating user")
		if r.db.isUniqueViolation(err) {
			return ErrEmailAlreadyExists
		}
		return wrapErr(ErrExecutingStatement, err)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrUserNotFound
	}

	r.feed.notify()
	return nil
}

// Delete removes the row of user. Deleting a missing row is not an error.
func (r *localUserRepository) Delete(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(r.db.statementBuilder(), user)
	if err != nil {
		log.Err(err).Str("func", "*localUserRepository.Delete").Msg("error building query")
		return wrapErr(ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*localUserRepository.Delete").
			Str("class", r.db.classify(err)).
			Msg("error deleting user")
		return wrapErr(ErrExecutingStatement, err)
	}

	r.feed.notify()
	return nil
}

// GetAll returns every row ordered by id.
func (r *localUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllUsersQuery(r.db.statementBuilder())
	if err != nil {
		log.Err(err).Str("func", "*localUserRepository.GetAll").Msg("error building query")
		return nil, wrapErr(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*localUserRepository.GetAll").Msg("error selecting users")
		return nil, wrapErr(ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*localUserRepository.GetAll").Msg("error scanning user")
			return nil, wrapErr(ErrScanningRow, err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*localUserRepository.GetAll").Msg("error iterating users")
		return nil, wrapErr(ErrScanningRows, err)
	}

	return users, nil
}

// Watch emits the full user list now and again after every mutation made
// through this repository.
func (r *localUserRepository) Watch(ctx context.Context) *Subscription[[]models.User] {
	trigger, release := r.feed.listen()
	return subscribe(ctx, r.logger, r.GetAll, trigger, 0, release)
}

// GetByEmail returns the row with email or [ErrUserNotFound].
func (r *localUserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := buildSelectUserByEmailQuery(r.db.statementBuilder(), email)
	if err != nil {
		return models.User{}, wrapErr(ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*localUserRepository.GetByEmail", query, args)
}

// ValidateUser returns the user-role row whose email and password match.
func (r *localUserRepository) ValidateUser(ctx context.Context, email, password string) (models.User, error) {
	return r.validate(ctx, email, password, models.RoleUser)
}

// ValidateAdmin returns the admin-role row whose email and password match.
func (r *localUserRepository) ValidateAdmin(ctx context.Context, email, password string) (models.User, error) {
	return r.validate(ctx, email, password, models.RoleAdmin)
}

func (r *localUserRepository) validate(ctx context.Context, email, password string, role models.Role) (models.User, error) {
	query, args, err := buildSelectUserByEmailAndRoleQuery(r.db.statementBuilder(), email, role)
	if err != nil {
		return models.User{}, wrapErr(ErrBuildingSQLQuery, err)
	}

	user, err := r.findOne(ctx, "*localUserRepository.validate", query, args)
	if err != nil {
		return models.User{}, err
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

// FindByUsername returns the first row with username or [ErrUserNotFound].
func (r *localUserRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	query, args, err := buildSelectUserByUsernameQuery(r.db.statementBuilder(), username)
	if err != nil {
		return models.User{}, wrapErr(ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*localUserRepository.FindByUsername", query, args)
}

func (r *localUserRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting user")
		return models.User{}, wrapErr(ErrScanningRow, err)
	}

	return user, nil
}
