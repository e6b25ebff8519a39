package services

import (
	"errors"
	"log"
	"net/http"

	passwd "github.com/go-passwd/validator"
	"github.com/techagentng/itsm-backend/config"
	"github.com/techagentng/itsm-backend/db"
	apiError "github.com/techagentng/itsm-backend/errors"
	"github.com/techagentng/itsm-backend/models"
	"github.com/techagentng/itsm-backend/services/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService issues bearer tokens and manages password changes.
type AuthService interface {
	Login(loginRequest *models.LoginRequest) (*models.LoginResponse, *apiError.Error)
	ChangePassword(userID uint, currentPassword, newPassword string) *apiError.Error
	ResetPassword(userID uint, newPassword string) *apiError.Error
}

type authService struct {
	Config         *config.Config
	userRepo       db.UserRepository
	passwordPolicy *passwd.Validator
}

func NewAuthService(userRepo db.UserRepository, conf *config.Config) AuthService {
	return &authService{
		Config:         conf,
		userRepo:       userRepo,
		passwordPolicy: passwd.New(passwd.MinLength(8, nil), passwd.MaxLength(72, nil)),
	}
}

func (a *authService) Login(loginRequest *models.LoginRequest) (*models.LoginResponse, *apiError.Error) {
	foundUser, err := a.userRepo.FindUserByEmail(loginRequest.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrInvalidCredentials
		}
		log.Printf("error finding user by email: %v", err)
		return nil, apiError.New("unable to find user", http.StatusInternalServerError)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.HashedPassword), []byte(loginRequest.Password)); err != nil {
		return nil, apiError.ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(foundUser.ID, foundUser.Email, a.Config.JWTSecret)
	if err != nil {
		log.Printf("error generating token for user %d: %v", foundUser.ID, err)
		return nil, apiError.ErrInternalServerError
	}

	return &models.LoginResponse{
		User:  foundUser,
		Token: token,
	}, nil
}

func (a *authService) ChangePassword(userID uint, currentPassword, newPassword string) *apiError.Error {
	foundUser, err := a.userRepo.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError.NotFound("user")
		}
		log.Printf("error finding user %d: %v", userID, err)
		return apiError.ErrInternalServerError
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.HashedPassword), []byte(currentPassword)); err != nil {
		return apiError.New("current password is incorrect", http.StatusUnauthorized)
	}

	return a.storePassword(userID, newPassword)
}

// ResetPassword skips the current-password check; the route is guarded and
// intended as an administrative bypass.
func (a *authService) ResetPassword(userID uint, newPassword string) *apiError.Error {
	if _, err := a.userRepo.FindUserByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError.NotFound("user")
		}
		log.Printf("error finding user %d: %v", userID, err)
		return apiError.ErrInternalServerError
	}
	return a.storePassword(userID, newPassword)
}

func (a *authService) storePassword(userID uint, newPassword string) *apiError.Error {
	if err := a.passwordPolicy.Validate(newPassword); err != nil {
		return apiError.New(err.Error(), http.StatusBadRequest)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("error hashing password for user %d", userID)
		return apiError.ErrInternalServerError
	}
	if err := a.userRepo.UpdatePassword(userID, string(hashed)); err != nil {
		log.Printf("error storing password for user %d: %v", userID, err)
		return apiError.ErrInternalServerError
	}
	return nil
}
