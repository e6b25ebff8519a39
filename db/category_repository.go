package db

import (
	"github.com/pkg/errors"
	"github.com/techagentng/itsm-backend/models"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	CreateCategory(category *models.Category) (*models.Category, error)
	FindCategoryByID(id uint) (*models.Category, error)
	GetAllCategories() ([]models.Category, error)
	UpdateCategory(category *models.Category) (*models.Category, error)
	DeleteCategory(id uint) error
}

type categoryRepo struct {
	DB *gorm.DB
}

func NewCategoryRepo(db *GormDB) CategoryRepository {
	return &categoryRepo{db.DB}
}

func (c *categoryRepo) CreateCategory(category *models.Category) (*models.Category, error) {
	if err := c.DB.Create(category).Error; err != nil {
		return nil, errors.Wrap(err, "create category")
	}
	return category, nil
}

func (c *categoryRepo) FindCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := c.DB.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *categoryRepo) GetAllCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := c.DB.Order("id").Find(&categories).Error; err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	return categories, nil
}

func (c *categoryRepo) UpdateCategory(category *models.Category) (*models.Category, error) {
	var existing models.Category
	if err := c.DB.First(&existing, category.ID).Error; err != nil {
		return nil, err
	}
	if err := c.DB.Model(&existing).Update("name", category.Name).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (c *categoryRepo) DeleteCategory(id uint) error {
	res := c.DB.Delete(&models.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
