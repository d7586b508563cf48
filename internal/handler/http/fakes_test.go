package http

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey = "handler-test-key"
	testIssuer  = "handler-test"
)

// ---- Fake: SessionService ----

type fakeSessionSvc struct {
	loginLocal   func(models.LoginRequest) (models.User, error)
	loginRemote  func(models.LoginRequest) (models.RemoteUser, error)
	register     func(models.RegisterRequest) (models.User, error)
	googleSignIn func(string) (models.User, error)
}

func (f *fakeSessionSvc) LoginLocal(_ context.Context, req models.LoginRequest) (models.User, error) {
	return f.loginLocal(req)
}
func (f *fakeSessionSvc) LoginRemote(_ context.Context, req models.LoginRequest) (models.RemoteUser, error) {
	return f.loginRemote(req)
}
func (f *fakeSessionSvc) Register(_ context.Context, req models.RegisterRequest) (models.User, error) {
	return f.register(req)
}
func (f *fakeSessionSvc) GoogleSignIn(_ context.Context, idToken string) (models.User, error) {
	return f.googleSignIn(idToken)
}
func (f *fakeSessionSvc) CreateToken(_ context.Context, email string, role models.Role) (models.Token, error) {
	return utils.GenerateJWTToken(testIssuer, email, role, time.Hour, testSignKey)
}
func (f *fakeSessionSvc) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, testSignKey, testIssuer)
	if err != nil {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return token, nil
}

// ---- Fake: ProfileService ----

type fakeProfileSvc struct {
	getProfile  func(email string) (models.User, error)
	editProfile func(email string, update models.ProfileUpdate, photo *models.Photo) (models.RemoteUser, error)
	listUsers   func() ([]models.RemoteUser, error)
	deleteUser  func(key string) error

	// remote backs SubscribeUsers.
	remote store.RemoteUserRepository
}

func (f *fakeProfileSvc) GetProfile(_ context.Context, email string) (models.User, error) {
	return f.getProfile(email)
}
func (f *fakeProfileSvc) EditProfile(_ context.Context, email string, update models.ProfileUpdate, photo *models.Photo) (models.RemoteUser, error) {
	return f.editProfile(email, update, photo)
}
func (f *fakeProfileSvc) ListUsers(_ context.Context) ([]models.RemoteUser, error) {
	return f.listUsers()
}
func (f *fakeProfileSvc) SubscribeUsers(ctx context.Context) *store.Subscription[[]models.RemoteUser] {
	return f.remote.SubscribeUsers(ctx)
}
func (f *fakeProfileSvc) DeleteUser(_ context.Context, key string) error {
	return f.deleteUser(key)
}

// ---- Fake: FavoritesService ----

type fakeFavoritesSvc struct {
	add      func(email string, recipe models.Recipe) error
	remove   func(email, recipeID string) error
	list     func(email string) ([]models.Recipe, error)
	post     func(email, recipeID, text string) (models.Comment, error)
	comments func(recipeID string) ([]models.Comment, error)
}

func (f *fakeFavoritesSvc) AddToFavorites(_ context.Context, email string, recipe models.Recipe) error {
	return f.add(email, recipe)
}
func (f *fakeFavoritesSvc) RemoveFromFavorites(_ context.Context, email, recipeID string) error {
	return f.remove(email, recipeID)
}
func (f *fakeFavoritesSvc) GetFavoriteRecipes(_ context.Context, email string) ([]models.Recipe, error) {
	return f.list(email)
}
func (f *fakeFavoritesSvc) PostComment(_ context.Context, email, recipeID, text string) (models.Comment, error) {
	return f.post(email, recipeID, text)
}
func (f *fakeFavoritesSvc) ListComments(_ context.Context, recipeID string) ([]models.Comment, error) {
	return f.comments(recipeID)
}

// ---- Fake: RecipeService / ReportService / AppInfoService ----

type fakeRecipeSvc struct {
	search func(keyword string) []models.Recipe
}

func (f *fakeRecipeSvc) Search(_ context.Context, keyword string) []models.Recipe {
	return f.search(keyword)
}

type fakeReportSvc struct {
	build func(year string) (models.Report, error)
}

func (f *fakeReportSvc) Build(_ context.Context, year string) (models.Report, error) {
	return f.build(year)
}

type fakeAppInfoSvc struct{}

func (fakeAppInfoSvc) GetAppVersion(_ context.Context) string { return "test-version" }
func (fakeAppInfoSvc) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return models.AppBuildInfo{Version: "test-version", Commit: "abc123"}
}

// ---- Helpers ----

// newTestServices returns services whose fakes fail the test when called
// without being configured.
func newTestServices(t *testing.T) *service.Services {
	t.Helper()
	fail := func(name string) { t.Helper(); t.Fatalf("unexpected call to %s", name) }

	return &service.Services{
		SessionService: &fakeSessionSvc{
			loginLocal:   func(models.LoginRequest) (models.User, error) { fail("LoginLocal"); return models.User{}, nil },
			loginRemote:  func(models.LoginRequest) (models.RemoteUser, error) { fail("LoginRemote"); return models.RemoteUser{}, nil },
			register:     func(models.RegisterRequest) (models.User, error) { fail("Register"); return models.User{}, nil },
			googleSignIn: func(string) (models.User, error) { fail("GoogleSignIn"); return models.User{}, nil },
		},
		ProfileService: &fakeProfileSvc{
			getProfile: func(string) (models.User, error) { fail("GetProfile"); return models.User{}, nil },
			editProfile: func(string, models.ProfileUpdate, *models.Photo) (models.RemoteUser, error) {
				fail("EditProfile")
				return models.RemoteUser{}, nil
			},
			listUsers:  func() ([]models.RemoteUser, error) { fail("ListUsers"); return nil, nil },
			deleteUser: func(string) error { fail("DeleteUser"); return nil },
		},
		FavoritesService: &fakeFavoritesSvc{
			add:      func(string, models.Recipe) error { fail("AddToFavorites"); return nil },
			remove:   func(string, string) error { fail("RemoveFromFavorites"); return nil },
			list:     func(string) ([]models.Recipe, error) { fail("GetFavoriteRecipes"); return nil, nil },
			post:     func(string, string, string) (models.Comment, error) { fail("PostComment"); return models.Comment{}, nil },
			comments: func(string) ([]models.Comment, error) { fail("ListComments"); return nil, nil },
		},
		RecipeService:  &fakeRecipeSvc{search: func(string) []models.Recipe { fail("Search"); return nil }},
		ReportService:  &fakeReportSvc{build: func(string) (models.Report, error) { fail("Build"); return models.Report{}, nil }},
		AppInfoService: fakeAppInfoSvc{},
	}
}

func newTestHandler(t *testing.T, svcs *service.Services, opts ...Option) *Handler {
	t.Helper()
	return NewHandler(svcs, logger.Nop(), opts...)
}

// bearer returns an Authorization header value for email with role.
func bearer(t *testing.T, email string, role models.Role) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, email, role, time.Hour, testSignKey)
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}
