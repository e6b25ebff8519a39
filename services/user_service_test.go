package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techagentng/itsm-backend/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestCreateUserHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, err := svc.CreateUser(&models.CreateUserInput{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	require.Nil(t, err)
	assert.NotEqual(t, "correct horse", user.HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("correct horse")))
}

func TestCreateUserRejectsWeakPassword(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.CreateUser(&models.CreateUserInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "short",
	})
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Status)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	repo.createErr = gorm.ErrDuplicatedKey
	svc := NewUserService(repo)

	_, err := svc.CreateUser(&models.CreateUserInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	require.NotNil(t, err)
	assert.Equal(t, http.StatusConflict, err.Status)
}

func TestGetUserNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.GetUser(12)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.Status)
}

func TestReplaceUserKeepsPassword(t *testing.T) {
	repo := newFakeUserRepo(&models.User{
		ID:             1,
		Name:           "Ada",
		Email:          "ada@example.com",
		HashedPassword: "stored-hash",
	})
	svc := NewUserService(repo)

	updated, err := svc.ReplaceUser(&models.ReplaceUserInput{
		ID:    1,
		Name:  "Ada Lovelace",
		Email: "ada.lovelace@example.com",
	})
	require.Nil(t, err)
	assert.Equal(t, "Ada Lovelace", updated.Name)
	assert.Equal(t, "stored-hash", updated.HashedPassword)
}

func TestReplaceUserNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.ReplaceUser(&models.ReplaceUserInput{ID: 9, Name: "x", Email: "x@example.com"})
	require.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.Status)
}

func TestDeleteUserReturnsDeletedRow(t *testing.T) {
	repo := newFakeUserRepo(&models.User{ID: 4, Name: "Ada", Email: "ada@example.com"})
	svc := NewUserService(repo)

	user, err := svc.DeleteUser(4)
	require.Nil(t, err)
	assert.Equal(t, uint(4), user.ID)

	_, getErr := svc.GetUser(4)
	require.NotNil(t, getErr)
	assert.Equal(t, http.StatusNotFound, getErr.Status)
}
