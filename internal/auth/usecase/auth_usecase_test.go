package usecase

import (
	"testing"
	"time"

	"auth-service/internal/auth/domain"
	"auth-service/internal/auth/dto"
	"auth-service/internal/auth/repository"
	"auth-service/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:              "test",
		JWTAccessSecret:  "test-access-secret",
		JWTRefreshSecret: "test-refresh-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
}

func newTestUsecase(cfg *config.Config) AuthUsecase {
	return NewAuthUsecase(repository.NewMemoryRepository(), cfg)
}

func registerReq() *dto.RegisterRequest {
	return &dto.RegisterRequest{Email: "a@b.com", Password: "Aa1!aaaa", Name: "Ann"}
}

func TestRegisterThenLogin_SameUserID(t *testing.T) {
	t.Parallel()

	uc := newTestUsecase(testConfig())

	registered, pair, err := uc.Register(registerReq())
	require.NoError(t, err)
	require.NotNil(t, pair)
	require.NotEmpty(t, registered.ID)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	loggedIn, _, err := uc.Login(&dto.LoginRequest{Email: "a@b.com", Password: "Aa1!aaaa"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, loggedIn.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	uc := newTestUsecase(testConfig())

	_, _, err := uc.Register(registerReq())
	require.NoError(t, err)

	// Different password and name must not matter.
	_, _, err = uc.Register(&dto.RegisterRequest{Email: "a@b.com", Password: "Bb2?bbbb", Name: "Bob"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestRegister_PasswordNeverStoredPlain(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepository()
	uc := NewAuthUsecase(repo, testConfig())

	_, _, err := uc.Register(registerReq())
	require.NoError(t, err)

	stored, err := repo.FindByEmail("a@b.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "Aa1!aaaa", stored.Password)
	assert.True(t, repository.CheckPasswordHash("Aa1!aaaa", stored.Password))
}

func TestLogin_UniformErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	t.Parallel()

	uc := newTestUsecase(testConfig())
	_, _, err := uc.Register(registerReq())
	require.NoError(t, err)

	_, _, wrongPassword := uc.Login(&dto.LoginRequest{Email: "a@b.com", Password: "wrong"})
	_, _, unknownEmail := uc.Login(&dto.LoginRequest{Email: "nobody@b.com", Password: "Aa1!aaaa"})

	assert.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownEmail, "both failures must be indistinguishable")
}

func TestVerifyAccessToken_ClaimsMatchIdentity(t *testing.T) {
	t.Parallel()

	uc := newTestUsecase(testConfig())
	user, pair, err := uc.Register(registerReq())
	require.NoError(t, err)

	claims, err := uc.VerifyAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
}

func TestVerifyAccessToken_RejectsRefreshToken(t *testing.T) {
	t.Parallel()

	uc := newTestUsecase(testConfig())
	_, pair, err := uc.Register(registerReq())
	require.NoError(t, err)

	// Token classes use distinct secrets and must never be interchangeable.
	_, err = uc.VerifyAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, _, err = uc.Refresh(pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.JWTAccessExpiry = -time.Minute
	uc := newTestUsecase(cfg)

	_, pair, err := uc.Register(registerReq())
	require.NoError(t, err)

	_, err = uc.VerifyAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestVerifyAccessToken_Tampered(t *testing.T) {
	t.Parallel()

	uc := newTestUsecase(testConfig())
	_, pair, err := uc.Register(registerReq())
	require.NoError(t, err)

	tampered := pair.AccessToken[:len(pair.AccessToken)-2] + "xx"
	_, err = uc.VerifyAccessToken(tampered)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, err = uc.VerifyAccessToken("not.a.jwt")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestRefresh_IssuesWorkingPair(t *testing.T) {
	t.Parallel()

	uc := newTestUsecase(testConfig())
	user, pair, err := uc.Register(registerReq())
	require.NoError(t, err)

	refreshed, next, err := uc.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, refreshed.ID)

	claims, err := uc.VerifyAccessToken(next.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRefresh_UnresolvableIdentity(t *testing.T) {
	t.Parallel()

	// A refresh token minted for a user the store has never seen: the
	// signature is fine but the identity does not resolve.
	cfg := testConfig()
	issuing := newTestUsecase(cfg)
	_, pair, err := issuing.Register(registerReq())
	require.NoError(t, err)

	verifying := newTestUsecase(cfg)
	_, _, err = verifying.Refresh(pair.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetProfile(t *testing.T) {
	t.Parallel()

	uc := newTestUsecase(testConfig())
	user, _, err := uc.Register(registerReq())
	require.NoError(t, err)

	found, err := uc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", found.Email)

	_, err = uc.GetProfile("no-such-id")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
