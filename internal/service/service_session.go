package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// defaultGoogleUsername is used when the identity provider supplies no
// display name.
const defaultGoogleUsername = "New User"

// sessionService is the concrete implementation of SessionService.
type sessionService struct {
	localUsers  store.LocalUserRepository
	remoteUsers store.RemoteUserRepository
	identity    adapter.IdentityVerifier
	validator   validators.Validator

	// passwordCost is the bcrypt cost for new hashes.
	passwordCost int

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	// today returns the registration date for new accounts.
	today func() string

	logger *logger.Logger
}

// NewSessionService constructs a SessionService over both user stores.
func NewSessionService(
	localUsers store.LocalUserRepository,
	remoteUsers store.RemoteUserRepository,
	identity adapter.IdentityVerifier,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) SessionService {
	return &sessionService{
		localUsers:    localUsers,
		remoteUsers:   remoteUsers,
		identity:      identity,
		validator:     validator,
		passwordCost:  cfg.PasswordCost,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		today:         utils.Today,
		logger:        logger,
	}
}

// LoginLocal validates req and looks the account up in the local store.
// Unknown emails, wrong passwords and role mismatches all yield
// ErrInvalidCredentials.
func (s *sessionService) LoginLocal(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	validate := s.localUsers.ValidateUser
	if req.Admin {
		validate = s.localUsers.ValidateAdmin
	}

	user, err := validate(ctx, strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("func", "*sessionService.LoginLocal").Bool("admin", req.Admin).Msg("no matching account")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*sessionService.LoginLocal").Msg("local login failed")
		return models.User{}, fmt.Errorf("local login failed: %w", err)
	}

	return user, nil
}

// LoginRemote queries the remote collection by email and returns the first
// document whose password hash matches.
func (s *sessionService) LoginRemote(ctx context.Context, req models.LoginRequest) (models.RemoteUser, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.RemoteUser{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	candidates, err := s.remoteUsers.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		log.Err(err).Str("func", "*sessionService.LoginRemote").Msg("remote lookup failed")
		return models.RemoteUser{}, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	for _, candidate := range candidates {
		if utils.CheckPassword(candidate.Password, req.Password) {
			return candidate.WithoutSecrets(), nil
		}
	}

	log.Debug().Str("func", "*sessionService.LoginRemote").Int("candidates", len(candidates)).Msg("no matching account")
	return models.RemoteUser{}, ErrInvalidCredentials
}

// Register validates req, rejects emails already present in either store and
// then writes the account to both stores. Any other local write failure is
// logged and left to the sync job; a remote write failure rolls back the
// local row and fails the registration.
func (s *sessionService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	exists, err := s.remoteUsers.EmailExists(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("func", "*sessionService.Register").Msg("email check failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
	if exists {
		return models.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := utils.HashPassword(req.Password, s.passwordCost)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	user := models.User{
		Username:         req.Username,
		Name:             req.Name,
		Surname:          req.Surname,
		Email:            req.Email,
		PasswordHash:     hash,
		Gender:           req.Gender,
		DateOfBirth:      req.DateOfBirth,
		Role:             models.RoleUser,
		RegistrationDate: s.today(),
	}

	created, localErr := s.localUsers.Insert(ctx, user)
	if errors.Is(localErr, store.ErrEmailAlreadyExists) {
		// accounts created by Google sign-in exist only locally
		return models.User{}, ErrEmailAlreadyRegistered
	}
	if localErr != nil {
		log.Err(localErr).Str("func", "*sessionService.Register").Msg("local insert failed, sync will retry")
		created = user
	}

	if _, err = s.remoteUsers.InsertUser(ctx, models.NewRemoteUser(created)); err != nil {
		log.Err(err).Str("func", "*sessionService.Register").Msg("remote insert failed")
		if localErr == nil {
			if delErr := s.localUsers.Delete(ctx, created); delErr != nil {
				log.Err(delErr).Str("func", "*sessionService.Register").Msg("local rollback failed")
			}
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	log.Info().Str("func", "*sessionService.Register").Int64("id", created.ID).Msg("user registered")
	return created, nil
}

// GoogleSignIn verifies idToken and returns the local account with the
// token's email, creating a password-less user account on first sign-in.
// The remote collection is not written.
func (s *sessionService) GoogleSignIn(ctx context.Context, idToken string) (models.User, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(idToken) == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	account, err := s.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		if errors.Is(err, adapter.ErrIdentityDisabled) {
			return models.User{}, ErrIdentityUnavailable
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	existing, err := s.localUsers.GetByEmail(ctx, account.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("func", "*sessionService.GoogleSignIn").Msg("local lookup failed")
		return models.User{}, fmt.Errorf("google sign-in failed: %w", err)
	}

	user := models.User{
		Username:         googleUsername(account),
		Name:             account.GivenName,
		Surname:          account.FamilyName,
		Email:            account.Email,
		Role:             models.RoleUser,
		RegistrationDate: s.today(),
	}
	if account.PhotoURL != "" {
		user.ProfilePictureURL = &account.PhotoURL
	}

	created, err := s.localUsers.Insert(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*sessionService.GoogleSignIn").Msg("local insert failed")
		return models.User{}, fmt.Errorf("google sign-in failed: %w", err)
	}

	return created, nil
}

func googleUsername(account models.GoogleAccount) string {
	name := strings.TrimSpace(account.DisplayName)
	if name == "" {
		return defaultGoogleUsername
	}
	if runes := []rune(name); len(runes) > 25 {
		name = strings.TrimSpace(string(runes[:25]))
	}

	return name
}

// CreateToken issues a signed session token for email with role.
func (s *sessionService) CreateToken(ctx context.Context, email string, role models.Role) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, email, role, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates tokenString. Expired tokens yield ErrTokenIsExpired,
// every other failure ErrTokenIsExpiredOrInvalid.
func (s *sessionService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
