package services

import (
	"log"
	"net/http"

	passwd "github.com/go-passwd/validator"
	"github.com/techagentng/itsm-backend/db"
	apiError "github.com/techagentng/itsm-backend/errors"
	"github.com/techagentng/itsm-backend/models"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	CreateUser(input *models.CreateUserInput) (*models.User, *apiError.Error)
	GetUser(id uint) (*models.User, *apiError.Error)
	GetAllUsers() ([]models.User, *apiError.Error)
	ReplaceUser(input *models.ReplaceUserInput) (*models.User, *apiError.Error)
	DeleteUser(id uint) (*models.User, *apiError.Error)
}

type userService struct {
	userRepo       db.UserRepository
	passwordPolicy *passwd.Validator
}

func NewUserService(userRepo db.UserRepository) UserService {
	return &userService{
		userRepo:       userRepo,
		passwordPolicy: passwd.New(passwd.MinLength(8, nil), passwd.MaxLength(72, nil)),
	}
}

func (s *userService) CreateUser(input *models.CreateUserInput) (*models.User, *apiError.Error) {
	if err := s.passwordPolicy.Validate(input.Password); err != nil {
		return nil, apiError.New(err.Error(), http.StatusBadRequest)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("error hashing password: bcrypt failure")
		return nil, apiError.ErrInternalServerError
	}

	user := &models.User{
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		HashedPassword: string(hashed),
	}
	created, err := s.userRepo.CreateUser(user)
	if err != nil {
		log.Printf("error creating user: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while creating the user")
	}
	return created, nil
}

func (s *userService) GetUser(id uint) (*models.User, *apiError.Error) {
	user, err := s.userRepo.FindUserByID(id)
	if err != nil {
		return nil, apiError.FromDB(err, "an error occurred while retrieving the user")
	}
	return user, nil
}

func (s *userService) GetAllUsers() ([]models.User, *apiError.Error) {
	users, err := s.userRepo.GetAllUsers()
	if err != nil {
		log.Printf("error listing users: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while retrieving users")
	}
	return users, nil
}

func (s *userService) ReplaceUser(input *models.ReplaceUserInput) (*models.User, *apiError.Error) {
	user := &models.User{
		ID:    input.ID,
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}
	updated, err := s.userRepo.ReplaceUser(user)
	if err != nil {
		log.Printf("error replacing user %d: %v", input.ID, err)
		return nil, apiError.FromDB(err, "an error occurred while updating the user")
	}
	return updated, nil
}

func (s *userService) DeleteUser(id uint) (*models.User, *apiError.Error) {
	user, err := s.userRepo.FindUserByID(id)
	if err != nil {
		return nil, apiError.FromDB(err, "an error occurred while deleting the user")
	}
	if err := s.userRepo.DeleteUser(id); err != nil {
		log.Printf("error deleting user %d: %v", id, err)
		return nil, apiError.FromDB(err, "an error occurred while deleting the user")
	}
	return user, nil
}
