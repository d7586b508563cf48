package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/docstore"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// remoteUserRepository keeps user documents under users/{EmailKey(email)}.
type remoteUserRepository struct {
	tree   docstore.Tree
	logger *logger.Logger
	poll   time.Duration
	feed   changeFeed
}

// NewRemoteUserRepository constructs a [RemoteUserRepository] on tree.
// Subscriptions pick up writes made through the repository immediately and
// writes made by other clients every poll interval (0 disables polling).
func NewRemoteUserRepository(tree docstore.Tree, poll time.Duration, logger *logger.Logger) RemoteUserRepository {
	logger.Debug().Msg("creating remote user repository")
	return &remoteUserRepository{
		tree:   tree,
		logger: logger,
		poll:   poll,
	}
}

// EmailExists reports whether any user document has this email.
func (r *remoteUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	nodes, err := r.tree.QueryEqual(ctx, usersPath, "email", email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*remoteUserRepository.EmailExists").Msg("error querying users")
		return false, wrapErr(ErrRemoteRead, err)
	}

	return len(nodes) > 0, nil
}

// InsertUser writes the document at users/{EmailKey(user.Email)}, replacing
// any previous document with the same key.
func (r *remoteUserRepository) InsertUser(ctx context.Context, user models.RemoteUser) (string, error) {
	key, err := EmailKey(user.Email)
	if err != nil {
		return "", err
	}

	path, err := docstore.Join(usersPath, key)
	if err != nil {
		return "", ErrInvalidEmailKey
	}

	user.Key = ""
	if err = r.tree.Set(ctx, path, user); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*remoteUserRepository.InsertUser").Msg("error writing user")
		return "", wrapErr(ErrRemoteWrite, err)
	}

	r.feed.notify()
	return key, nil
}

// FindByEmail returns every document with this email ordered by key.
// Normally there is at most one.
func (r *remoteUserRepository) FindByEmail(ctx context.Context, email string) ([]models.RemoteUser, error) {
	nodes, err := r.tree.QueryEqual(ctx, usersPath, "email", email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*remoteUserRepository.FindByEmail").Msg("error querying users")
		return nil, wrapErr(ErrRemoteRead, err)
	}

	return decodeUsers(nodes)
}

// GetUser reads users/{key}.
func (r *remoteUserRepository) GetUser(ctx context.Context, key string) (models.RemoteUser, error) {
	path, err := docstore.Join(usersPath, key)
	if err != nil {
		return models.RemoteUser{}, ErrRemoteUserNotFound
	}

	raw, err := r.tree.Get(ctx, path)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*remoteUserRepository.GetUser").Msg("error reading user")
		return models.RemoteUser{}, wrapErr(ErrRemoteRead, err)
	}
	if docstore.IsAbsent(raw) {
		return models.RemoteUser{}, ErrRemoteUserNotFound
	}

	users, err := decodeUsers([]docstore.Node{{Key: key, Value: raw}})
	if err != nil {
		return models.RemoteUser{}, err
	}

	return users[0], nil
}

// ListUsers returns every user document ordered by key.
func (r *remoteUserRepository) ListUsers(ctx context.Context) ([]models.RemoteUser, error) {
	nodes, err := r.tree.Children(ctx, usersPath)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*remoteUserRepository.ListUsers").Msg("error listing users")
		return nil, wrapErr(ErrRemoteRead, err)
	}

	return decodeUsers(nodes)
}

// SubscribeUsers emits the whole user list now and after every change.
// The caller must Unsubscribe or cancel ctx to stop delivery.
func (r *remoteUserRepository) SubscribeUsers(ctx context.Context) *Subscription[[]models.RemoteUser] {
	trigger, release := r.feed.listen()
	return subscribe(ctx, r.logger, r.ListUsers, trigger, r.poll, release)
}

// UpdateUserProfile overwrites the profile fields of users/{key}. The
// password and uid are left as stored. A non-nil photoURL replaces the
// picture; otherwise user.ProfilePictureURL is written.
func (r *remoteUserRepository) UpdateUserProfile(ctx context.Context, key string, user models.RemoteUser, photoURL *string) error {
	path, err := docstore.Join(usersPath, key)
	if err != nil {
		return ErrRemoteUserNotFound
	}

	picture := user.ProfilePictureURL
	if photoURL != nil {
		picture = photoURL
	}

	fields := map[string]any{
		"username":          user.Username,
		"name":              user.Name,
		"surname":           user.Surname,
		"email":             user.Email,
		"gender":            user.Gender,
		"dateOfBirth":       user.DateOfBirth,
		"role":              user.Role,
		"registrationDate":  user.RegistrationDate,
		"profilePictureUrl": picture,
	}

	if err = r.tree.Update(ctx, path, fields); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*remoteUserRepository.UpdateUserProfile").Msg("error updating user")
		return wrapErr(ErrRemoteWrite, err)
	}

	r.feed.notify()
	return nil
}

// DeleteUser removes users/{key} only.
func (r *remoteUserRepository) DeleteUser(ctx context.Context, key string) error {
	path, err := docstore.Join(usersPath, key)
	if err != nil {
		return ErrRemoteUserNotFound
	}

	if err = r.tree.Delete(ctx, path); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*remoteUserRepository.DeleteUser").Msg("error deleting user")
		return wrapErr(ErrRemoteWrite, err)
	}

	r.feed.notify()
	return nil
}

func decodeUsers(nodes []docstore.Node) ([]models.RemoteUser, error) {
	users := make([]models.RemoteUser, 0, len(nodes))
	for _, node := range nodes {
		var user models.RemoteUser
		if err := node.Unmarshal(&user); err != nil {
			return nil, wrapErr(ErrDecodingDocument, err)
		}
		user.Key = node.Key
		users = append(users, user)
	}

	return users, nil
}
