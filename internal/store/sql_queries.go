package store

import (
	"database/sql"

	"github.com/MKhiriev/go-recipe-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable = "users"

	colID                = "id"
	colUsername          = "username"
	colName              = "name"
	colSurname           = "surname"
	colEmail             = "email"
	colPasswordHash      = "password_hash"
	colGender            = "gender"
	colDateOfBirth       = "date_of_birth"
	colRole              = "role"
	colRegistrationDate  = "registration_date"
	colProfilePictureURL = "profile_picture_url"
)

// userColumns is the SELECT column list; scanUser reads them in this order.
var userColumns = []string{
	colID,
	colUsername,
	colName,
	colSurname,
	colEmail,
	colPasswordHash,
	colGender,
	colDateOfBirth,
	colRole,
	colRegistrationDate,
	colProfilePictureURL,
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns[1:]...).
		Values(
			user.Username,
			user.Name,
			user.Surname,
			user.Email,
			user.PasswordHash,
			user.Gender,
			user.DateOfBirth,
			string(user.Role),
			user.RegistrationDate,
			nullString(user.ProfilePictureURL),
		).
		Suffix("RETURNING " + colID).
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Update(usersTable).
		Set(colUsername, user.Username).
		Set(colName, user.Name).
		Set(colSurname, user.Surname).
		Set(colEmail, user.Email).
		Set(colPasswordHash, user.PasswordHash).
		Set(colGender, user.Gender).
		Set(colDateOfBirth, user.DateOfBirth).
		Set(colRole, string(user.Role)).
		Set(colRegistrationDate, user.RegistrationDate).
		Set(colProfilePictureURL, nullString(user.ProfilePictureURL)).
		Where(sq.Eq{colID: user.ID}).
		ToSql()
}

// buildDeleteUserQuery deletes by primary key, or by email for rows that
// were never read back from the database.
func buildDeleteUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query := b.Delete(usersTable)
	if user.ID != 0 {
		return query.Where(sq.Eq{colID: user.ID}).ToSql()
	}

	return query.Where(sq.Eq{colEmail: user.Email}).ToSql()
}

func buildSelectAllUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		OrderBy(colID).
		ToSql()
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{colEmail: email}).
		Limit(1).
		ToSql()
}

func buildSelectUserByEmailAndRoleQuery(b sq.StatementBuilderType, email string, role models.Role) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{colEmail: email}).
		Where(sq.Eq{colRole: string(role)}).
		Limit(1).
		ToSql()
}

func buildSelectUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{colUsername: username}).
		OrderBy(colID).
		Limit(1).
		ToSql()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user    models.User
		role    string
		picture sql.NullString
	)

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Name,
		&user.Surname,
		&user.Email,
		&user.PasswordHash,
		&user.Gender,
		&user.DateOfBirth,
		&role,
		&user.RegistrationDate,
		&picture,
	)
	if err != nil {
		return models.User{}, err
	}

	user.Role = models.Role(role)
	if picture.Valid {
		user.ProfilePictureURL = &picture.String
	}

	return user, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *s, Valid: true}
}
