package db

import (
	"github.com/pkg/errors"
	"github.com/techagentng/itsm-backend/models"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *models.User) (*models.User, error)
	FindUserByID(id uint) (*models.User, error)
	FindUserByEmail(email string) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	ReplaceUser(user *models.User) (*models.User, error)
	UpdatePassword(userID uint, hashedPassword string) error
	DeleteUser(id uint) error
}

type userRepo struct {
	DB *gorm.DB
}

func NewUserRepo(db *GormDB) UserRepository {
	return &userRepo{db.DB}
}

func (u *userRepo) CreateUser(user *models.User) (*models.User, error) {
	if err := u.DB.Create(user).Error; err != nil {
		return nil, errors.Wrap(err, "create user")
	}
	return user, nil
}

func (u *userRepo) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := u.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *userRepo) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := u.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *userRepo) GetAllUsers() ([]models.User, error) {
	var users []models.User
	if err := u.DB.Order("id").Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	return users, nil
}

// ReplaceUser writes the full scalar field set for the row identified by
// user.ID. The stored password hash is not touched.
func (u *userRepo) ReplaceUser(user *models.User) (*models.User, error) {
	var existing models.User
	if err := u.DB.First(&existing, user.ID).Error; err != nil {
		return nil, err
	}
	res := u.DB.Model(&existing).
		Select("Name", "Email", "Phone").
		Updates(user)
	if res.Error != nil {
		return nil, res.Error
	}
	return &existing, nil
}

func (u *userRepo) UpdatePassword(userID uint, hashedPassword string) error {
	return u.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("hashed_password", hashedPassword).Error
}

func (u *userRepo) DeleteUser(id uint) error {
	res := u.DB.Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
