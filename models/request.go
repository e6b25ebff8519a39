package models

import "time"

type RequestStatus string

const (
	RequestStatusNew        RequestStatus = "NEW"
	RequestStatusInProgress RequestStatus = "IN_PROGRESS"
	RequestStatusCompleted  RequestStatus = "COMPLETED"
	RequestStatusCanceled   RequestStatus = "CANCELED"
)

// RequestTerminalStatuses are excluded from the recent-requests view.
var RequestTerminalStatuses = []RequestStatus{RequestStatusCompleted, RequestStatusCanceled}

type Request struct {
	ID             uint             `json:"id" gorm:"primaryKey"`
	Title          string           `json:"title" gorm:"not null"`
	Description    string           `json:"description"`
	Status         RequestStatus    `json:"status" gorm:"default:NEW"`
	RequestorID    uint             `json:"requestorId"`
	Requestor      *User            `json:"requestor,omitempty" gorm:"foreignKey:RequestorID"`
	AssigneeID     *uint            `json:"assigneeId,omitempty"`
	Assignee       *User            `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
	Categories     []Category       `json:"categories,omitempty" gorm:"many2many:request_categories"`
	Approvers      []User           `json:"approvers,omitempty" gorm:"many2many:request_approvers"`
	Comments       []RequestComment `json:"comments,omitempty" gorm:"foreignKey:RequestID"`
	PlannedForDate time.Time        `json:"plannedForDate"`
	ResolvedAt     *time.Time       `json:"resolvedAt,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

type RequestPayload struct {
	Title          string    `json:"title" conform:"trim" validate:"required"`
	Description    string    `json:"description" conform:"trim" validate:"required"`
	Categories     []uint    `json:"categories"`
	RequestorID    uint      `json:"requestorId" validate:"required"`
	AssigneeID     *uint     `json:"assigneeId"`
	PlannedForDate time.Time `json:"plannedForDate" validate:"required"`
}

type CreateRequestInput struct {
	RequestPayload
	Categories []uint `json:"categories" validate:"required,min=1"`
}

type UpdateRequestInput struct {
	RequestPayload
	ID         uint       `json:"id" validate:"required"`
	Status     string     `json:"status" validate:"omitempty,oneof=NEW IN_PROGRESS COMPLETED CANCELED"`
	ResolvedAt *time.Time `json:"resolvedAt"`
}
