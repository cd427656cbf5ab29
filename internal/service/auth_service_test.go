package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kral14/mobilsayt/internal/dto"
	"github.com/kral14/mobilsayt/internal/model"
	"github.com/kral14/mobilsayt/internal/repository"
)

type stubUserRepo struct {
	users map[string]*model.User
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func authFixture(t *testing.T) (AuthService, *stubUserRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("sekret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &stubUserRepo{users: map[string]*model.User{
		"aysel": {ID: 1, Username: "aysel", PasswordHash: string(hash), Name: "Aysel", Role: "admin", IsActive: true},
	}}
	return NewAuthService(repo, "test-secret", 1, 24), repo
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, _ := authFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "aysel", Password: "sekret"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, "admin", resp.User.Role)

	claims, err := svc.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "access", claims.TokenType)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := authFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "aysel", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := authFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDisabledUser(t *testing.T) {
	svc, repo := authFixture(t)
	repo.users["aysel"].IsActive = false

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "aysel", Password: "sekret"})
	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := authFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "aysel", Password: "sekret"})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshIssuesFreshPair(t *testing.T) {
	svc, _ := authFixture(t)

	login, err := svc.Login(context.Background(), dto.LoginRequest{Username: "aysel", Password: "sekret"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	claims, err := svc.ParseToken(refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "access", claims.TokenType)
}

func TestParseGarbageToken(t *testing.T) {
	svc, _ := authFixture(t)

	_, err := svc.ParseToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
