package models

import "time"

type IncidentComment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Content    string    `json:"content" gorm:"not null"`
	UserID     uint      `json:"userId"`
	User       *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	IncidentID uint      `json:"incidentId"`
	CreatedAt  time.Time `json:"createdAt"`
}

type RequestComment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"not null"`
	UserID    uint      `json:"userId"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RequestID uint      `json:"requestId"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateIncidentCommentInput struct {
	Content    string `json:"content" conform:"trim" validate:"required"`
	UserID     uint   `json:"userId" validate:"required"`
	IncidentID uint   `json:"incidentId" validate:"required"`
}

type CreateRequestCommentInput struct {
	Content   string `json:"content" conform:"trim" validate:"required"`
	UserID    uint   `json:"userId" validate:"required"`
	RequestID uint   `json:"requestId" validate:"required"`
}
