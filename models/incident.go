package models

import "time"

type IncidentPriority string

const (
	IncidentPriorityLow      IncidentPriority = "LOW"
	IncidentPriorityMedium   IncidentPriority = "MEDIUM"
	IncidentPriorityHigh     IncidentPriority = "HIGH"
	IncidentPriorityCritical IncidentPriority = "CRITICAL"
)

type IncidentStatus string

const (
	IncidentStatusNew        IncidentStatus = "NEW"
	IncidentStatusInProgress IncidentStatus = "IN_PROGRESS"
	IncidentStatusResolved   IncidentStatus = "RESOLVED"
	IncidentStatusClosed     IncidentStatus = "CLOSED"
)

// IncidentTerminalStatuses are excluded from the recent-incidents view.
var IncidentTerminalStatuses = []IncidentStatus{IncidentStatusResolved, IncidentStatusClosed}

type Incident struct {
	ID          uint              `json:"id" gorm:"primaryKey"`
	Title       string            `json:"title" gorm:"not null"`
	Description string            `json:"description"`
	Priority    IncidentPriority  `json:"priority"`
	Status      IncidentStatus    `json:"status" gorm:"default:NEW"`
	ReporterID  uint              `json:"reporterId"`
	Reporter    *User             `json:"reporter,omitempty" gorm:"foreignKey:ReporterID"`
	AssigneeID  *uint             `json:"assigneeId,omitempty"`
	Assignee    *User             `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
	AssetID     *uint             `json:"assetId,omitempty"`
	Asset       *Asset            `json:"asset,omitempty" gorm:"foreignKey:AssetID"`
	Categories  []Category        `json:"categories,omitempty" gorm:"many2many:incident_categories"`
	Comments    []IncidentComment `json:"comments,omitempty" gorm:"foreignKey:IncidentID"`
	ResolvedAt  *time.Time        `json:"resolvedAt,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type IncidentPayload struct {
	Title       string `json:"title" conform:"trim" validate:"required"`
	Description string `json:"description" conform:"trim" validate:"required"`
	Priority    string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Categories  []uint `json:"categories"`
	ReporterID  uint   `json:"reporterId" validate:"required"`
	AssetID     *uint  `json:"assetId"`
	AssigneeID  *uint  `json:"assigneeId"`
}

type CreateIncidentInput struct {
	IncidentPayload
	Categories []uint `json:"categories" validate:"required,min=1"`
}

type UpdateIncidentInput struct {
	IncidentPayload
	ID         uint       `json:"id" validate:"required"`
	Status     string     `json:"status" validate:"omitempty,oneof=NEW IN_PROGRESS RESOLVED CLOSED"`
	ResolvedAt *time.Time `json:"resolvedAt"`
}
