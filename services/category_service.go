package services

import (
	"log"

	"github.com/techagentng/itsm-backend/db"
	apiError "github.com/techagentng/itsm-backend/errors"
	"github.com/techagentng/itsm-backend/models"
)

type CategoryService interface {
	CreateCategory(input *models.CreateCategoryInput) (*models.Category, *apiError.Error)
	GetCategory(id uint) (*models.Category, *apiError.Error)
	GetAllCategories() ([]models.Category, *apiError.Error)
	UpdateCategory(input *models.UpdateCategoryInput) (*models.Category, *apiError.Error)
	DeleteCategory(id uint) *apiError.Error
}

type categoryService struct {
	categoryRepo db.CategoryRepository
}

func NewCategoryService(categoryRepo db.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(input *models.CreateCategoryInput) (*models.Category, *apiError.Error) {
	category, err := s.categoryRepo.CreateCategory(&models.Category{Name: input.Name})
	if err != nil {
		log.Printf("error creating category: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while creating the category")
	}
	return category, nil
}

func (s *categoryService) GetCategory(id uint) (*models.Category, *apiError.Error) {
	category, err := s.categoryRepo.FindCategoryByID(id)
	if err != nil {
		return nil, apiError.FromDB(err, "an error occurred while retrieving the category")
	}
	return category, nil
}

func (s *categoryService) GetAllCategories() ([]models.Category, *apiError.Error) {
	categories, err := s.categoryRepo.GetAllCategories()
	if err != nil {
		log.Printf("error listing categories: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while retrieving categories")
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(input *models.UpdateCategoryInput) (*models.Category, *apiError.Error) {
	category, err := s.categoryRepo.UpdateCategory(&models.Category{ID: input.ID, Name: input.Name})
	if err != nil {
		log.Printf("error updating category %d: %v", input.ID, err)
		return nil, apiError.FromDB(err, "an error occurred while updating the category")
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(id uint) *apiError.Error {
	if err := s.categoryRepo.DeleteCategory(id); err != nil {
		log.Printf("error deleting category %d: %v", id, err)
		return apiError.FromDB(err, "an error occurred while deleting the category")
	}
	return nil
}
