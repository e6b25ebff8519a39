package models

import "time"

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	Phone          string    `json:"phone,omitempty"`
	HashedPassword string    `json:"-" gorm:"column:hashed_password;not null"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CreateUserInput struct {
	Name     string `json:"name" conform:"trim" validate:"required"`
	Email    string `json:"email" conform:"email" validate:"required,email"`
	Phone    string `json:"phone" conform:"trim" validate:"omitempty,e164"`
	Password string `json:"password" validate:"required"`
}

// ReplaceUserInput is the full-replace payload; the id travels in the body
// and the stored password is kept as-is.
type ReplaceUserInput struct {
	ID    uint   `json:"id" validate:"required"`
	Name  string `json:"name" conform:"trim" validate:"required"`
	Email string `json:"email" conform:"email" validate:"required,email"`
	Phone string `json:"phone" conform:"trim" validate:"omitempty,e164"`
}
