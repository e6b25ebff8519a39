package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techagentng/itsm-backend/config"
	"github.com/techagentng/itsm-backend/models"
	"github.com/techagentng/itsm-backend/services/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users          map[uint]*models.User
	storedPassword map[uint]string
	createErr      error
	replaceErr     error
	deleteErr      error
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{
		users:          map[uint]*models.User{},
		storedPassword: map[uint]string{},
	}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) CreateUser(user *models.User) (*models.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	user.ID = uint(len(r.users) + 1)
	r.users[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) FindUserByID(id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindUserByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetAllUsers() ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) ReplaceUser(user *models.User) (*models.User, error) {
	if r.replaceErr != nil {
		return nil, r.replaceErr
	}
	existing, ok := r.users[user.ID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	existing.Name = user.Name
	existing.Email = user.Email
	existing.Phone = user.Phone
	return existing, nil
}

func (r *fakeUserRepo) UpdatePassword(userID uint, hashedPassword string) error {
	r.storedPassword[userID] = hashedPassword
	return nil
}

func (r *fakeUserRepo) DeleteUser(id uint) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.users, id)
	return nil
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret"}
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeUserRepo(&models.User{
		ID:             1,
		Email:          "ada@example.com",
		HashedPassword: hashPassword(t, "correct horse"),
	})
	svc := NewAuthService(repo, testConfig())

	resp, err := svc.Login(&models.LoginRequest{Email: "ada@example.com", Password: "correct horse"})
	require.Nil(t, err)
	require.NotNil(t, resp.User)
	assert.Equal(t, uint(1), resp.User.ID)

	claims, tokenErr := jwt.ValidateAndGetClaims(resp.Token, "test-secret")
	require.NoError(t, tokenErr)
	sub, tokenErr := jwt.SubjectFromClaims(claims)
	require.NoError(t, tokenErr)
	assert.Equal(t, uint(1), sub)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo(&models.User{
		ID:             1,
		Email:          "ada@example.com",
		HashedPassword: hashPassword(t, "correct horse"),
	})
	svc := NewAuthService(repo, testConfig())

	_, err := svc.Login(&models.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	require.NotNil(t, err)
	assert.Equal(t, http.StatusUnauthorized, err.Status)
	assert.Equal(t, "invalid email or password", err.Message)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testConfig())

	_, err := svc.Login(&models.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	require.NotNil(t, err)
	assert.Equal(t, http.StatusUnauthorized, err.Status)
	assert.Equal(t, "invalid email or password", err.Message)
}

func TestChangePasswordSuccess(t *testing.T) {
	repo := newFakeUserRepo(&models.User{
		ID:             7,
		Email:          "ada@example.com",
		HashedPassword: hashPassword(t, "old password"),
	})
	svc := NewAuthService(repo, testConfig())

	err := svc.ChangePassword(7, "old password", "new password 123")
	require.Nil(t, err)

	stored := repo.storedPassword[7]
	require.NotEmpty(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("new password 123")))
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	repo := newFakeUserRepo(&models.User{
		ID:             7,
		HashedPassword: hashPassword(t, "old password"),
	})
	svc := NewAuthService(repo, testConfig())

	err := svc.ChangePassword(7, "not the old one", "new password 123")
	require.NotNil(t, err)
	assert.Equal(t, http.StatusUnauthorized, err.Status)
}

func TestChangePasswordUnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testConfig())

	err := svc.ChangePassword(99, "whatever", "new password 123")
	require.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.Status)
}

func TestChangePasswordRejectsWeakPassword(t *testing.T) {
	repo := newFakeUserRepo(&models.User{
		ID:             7,
		HashedPassword: hashPassword(t, "old password"),
	})
	svc := NewAuthService(repo, testConfig())

	err := svc.ChangePassword(7, "old password", "short")
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Empty(t, repo.storedPassword)
}

func TestResetPasswordSkipsCurrentCheck(t *testing.T) {
	repo := newFakeUserRepo(&models.User{
		ID:             3,
		HashedPassword: hashPassword(t, "forgotten"),
	})
	svc := NewAuthService(repo, testConfig())

	err := svc.ResetPassword(3, "fresh password 456")
	require.Nil(t, err)

	stored := repo.storedPassword[3]
	require.NotEmpty(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("fresh password 456")))
}

func TestResetPasswordUnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testConfig())

	err := svc.ResetPassword(42, "fresh password 456")
	require.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.Status)
}
