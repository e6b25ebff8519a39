package models

type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

type CreateCategoryInput struct {
	Name string `json:"name" conform:"trim" validate:"required"`
}

type UpdateCategoryInput struct {
	ID   uint   `json:"id" validate:"required"`
	Name string `json:"name" conform:"trim" validate:"required"`
}
