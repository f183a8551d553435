package usecase

import (
	"context"
	"testing"

	"murray-moving/internal/data/repository"
	"murray-moving/internal/dto/request"
	"murray-moving/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	repo := repository.NewMemoryRepository(zap.NewNop())
	config := &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
		Admin:   utils.AdminConfig{Username: "admin", Password: "s3cret-pass", Email: "admin@example.com"},
	}
	svc := NewAuthService(repo, config, nil, zap.NewNop())
	require.NoError(t, svc.EnsureAdmin(context.Background()))
	return svc
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	svc := newAuthService(t)
	assert.NoError(t, svc.EnsureAdmin(context.Background()))
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &request.LoginRequest{Username: "admin", Password: "s3cret-pass"}, ClientInfo{UserAgent: "test"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.User.IsAdmin)
	assert.Equal(t, "admin", resp.User.Username)

	identity, err := svc.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.True(t, identity.IsAdmin)
	assert.Equal(t, resp.User.ID, identity.UserID)

	user, err := svc.CurrentUser(utils.SetIdentityContext(ctx, *identity))
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", *user.Email)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), &request.LoginRequest{Username: "admin", Password: "wrong"}, ClientInfo{})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &request.LoginRequest{Username: "nobody", Password: "wrong"}, ClientInfo{})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &request.LoginRequest{}, ClientInfo{})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestLogin_UnknownUserStillComparesHash(t *testing.T) {
	svc := newAuthService(t)

	var compared []string
	orig := checkPassword
	checkPassword = func(password, hash string) bool {
		compared = append(compared, hash)
		return orig(password, hash)
	}
	t.Cleanup(func() { checkPassword = orig })

	_, err := svc.Login(context.Background(), &request.LoginRequest{Username: "nobody", Password: "wrong"}, ClientInfo{})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	require.Len(t, compared, 1)
	assert.NotEmpty(t, compared[0])

	_, err = svc.Login(context.Background(), &request.LoginRequest{Username: "admin", Password: "wrong"}, ClientInfo{})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Len(t, compared, 2)
}

func TestLogout_RevokesSession(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &request.LoginRequest{Username: "admin", Password: "s3cret-pass"}, ClientInfo{})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.Token))

	identity, err := svc.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Nil(t, identity)

	assert.ErrorIs(t, svc.Logout(ctx, resp.Token), ErrUnauthorized)
	assert.ErrorIs(t, svc.Logout(ctx, "not-a-uuid"), ErrUnauthorized)
}

func TestAuthenticate_UnknownToken(t *testing.T) {
	svc := newAuthService(t)

	identity, err := svc.Authenticate(context.Background(), "garbage")
	assert.NoError(t, err)
	assert.Nil(t, identity)

	identity, err = svc.Authenticate(context.Background(), "6f1c2a7e-1d9b-4b7e-9d3a-2f9a4c1b8e00")
	assert.NoError(t, err)
	assert.Nil(t, identity)
}

func TestCurrentUser_Anonymous(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.CurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}
