package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func newTestAuthService(t *testing.T) (*authService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(repo, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-notes-keeper",
		TokenDuration: time.Hour,
	}, logger.Nop()).(*authService)
	svc.ids = fixedID("user-1")

	return svc, repo
}

// ── RegisterUser ────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()
	req := models.RegisterRequest{FullName: "Ada", Email: "ada@example.com", Password: "secret"}

	gomock.InOrder(
		repo.EXPECT().FindUserByEmail(ctx, "ada@example.com").Return(models.User{}, store.ErrUserNotFound),
		repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "user-1", u.ID)
				assert.Equal(t, "Ada", u.FullName)
				assert.NotEqual(t, "secret", u.PasswordHash)
				assert.NoError(t, utils.ComparePassword(u.PasswordHash, "secret"))
				u.CreatedOn = time.Now()
				return u, nil
			},
		),
	)

	user, err := svc.RegisterUser(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
}

func TestAuthService_RegisterUser_MissingField(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{Email: "a@b.c", Password: "p"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyFullName)
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "a@b.c").Return(models.User{ID: "other"}, nil)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{FullName: "A", Email: "a@b.c", Password: "p"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_RegisterUser_RaceOnUniqueConstraint(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "a@b.c").Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{FullName: "A", Email: "a@b.c", Password: "p"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_RegisterUser_LookupError(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	repo.EXPECT().FindUserByEmail(ctx, "a@b.c").Return(models.User{}, dbErr)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{FullName: "A", Email: "a@b.c", Password: "p"})
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrUserAlreadyExists)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	hash, err := utils.HashPassword("secret")
	require.NoError(t, err)
	stored := models.User{ID: "u1", Email: "a@b.c", PasswordHash: hash}

	tests := []struct {
		name     string
		req      models.LoginRequest
		found    models.User
		foundErr error
		wantErr  error
	}{
		{name: "success", req: models.LoginRequest{Email: "a@b.c", Password: "secret"}, found: stored},
		{name: "wrong password", req: models.LoginRequest{Email: "a@b.c", Password: "nope"}, found: stored, wantErr: ErrInvalidCredentials},
		{name: "unknown email", req: models.LoginRequest{Email: "a@b.c", Password: "secret"}, foundErr: store.ErrUserNotFound, wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuthService(t)
			repo.EXPECT().FindUserByEmail(gomock.Any(), tt.req.Email).Return(tt.found, tt.foundErr)

			user, err := svc.Login(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", user.ID)
		})
	}
}

func TestAuthService_Login_MissingPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "a@b.c"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyPassword)
}

// ── tokens ──────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{ID: "u1"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)

	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestAuthService_CreateToken_EmptyUser(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.CreateToken(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	otherIssuer, err := utils.GenerateJWTToken("someone-else", "u1", time.Hour, "test-sign-key")
	require.NoError(t, err)
	otherKey, err := utils.GenerateJWTToken("go-notes-keeper", "u1", time.Hour, "other-key")
	require.NoError(t, err)
	expired, err := utils.GenerateJWTToken("go-notes-keeper", "u1", -time.Minute, "test-sign-key")
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":      "not-a-jwt",
		"other issuer": otherIssuer.SignedString,
		"other key":    otherKey.SignedString,
		"expired":      expired.SignedString,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, raw)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

// ── GetUser ─────────────────────────────────────────────────────────────────

func TestAuthService_GetUser(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByID(ctx, "u1").Return(models.User{ID: "u1", FullName: "Ada"}, nil)
	repo.EXPECT().FindUserByID(ctx, "gone").Return(models.User{}, store.ErrUserNotFound)

	user, err := svc.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.FullName)

	_, err = svc.GetUser(ctx, "gone")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
