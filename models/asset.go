package models

import "time"

type AssetType string

const (
	AssetTypeHardware   AssetType = "HARDWARE"
	AssetTypeSoftware   AssetType = "SOFTWARE"
	AssetTypeNetwork    AssetType = "NETWORK"
	AssetTypePeripheral AssetType = "PERIPHERAL"
	AssetTypeOther      AssetType = "OTHER"
)

type AssetStatus string

const (
	AssetStatusActive         AssetStatus = "ACTIVE"
	AssetStatusInactive       AssetStatus = "INACTIVE"
	AssetStatusDecommissioned AssetStatus = "DECOMMISSIONED"
)

// AssetTerminalStatuses are excluded from the recent-assets view.
var AssetTerminalStatuses = []AssetStatus{AssetStatusInactive, AssetStatusDecommissioned}

type Asset struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	Name              string         `json:"name" gorm:"not null"`
	Description       string         `json:"description"`
	Type              AssetType      `json:"type"`
	Status            AssetStatus    `json:"status"`
	OwnerID           *uint          `json:"ownerId,omitempty"`
	Owner             *User          `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	PurchasedAt       time.Time      `json:"purchasedAt"`
	WarrantyExpiresAt *time.Time     `json:"warrantyExpiresAt,omitempty"`
	Categories        []Category     `json:"categories,omitempty" gorm:"many2many:asset_categories"`
	Incidents         []Incident     `json:"incidents,omitempty" gorm:"foreignKey:AssetID"`
	Articles          []AssetArticle `json:"articles,omitempty" gorm:"foreignKey:AssetID"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

type AssetPayload struct {
	Name              string     `json:"name" conform:"trim" validate:"required"`
	Description       string     `json:"description" conform:"trim" validate:"required"`
	Type              string     `json:"type" validate:"omitempty,oneof=HARDWARE SOFTWARE NETWORK PERIPHERAL OTHER"`
	Status            string     `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE DECOMMISSIONED"`
	Categories        []uint     `json:"categories"`
	OwnerID           *uint      `json:"ownerId"`
	PurchasedAt       time.Time  `json:"purchasedAt" validate:"required"`
	WarrantyExpiresAt *time.Time `json:"warrantyExpiresAt"`
}

type CreateAssetInput struct {
	AssetPayload
	Categories []uint `json:"categories" validate:"required,min=1"`
}

type UpdateAssetInput struct {
	AssetPayload
	ID uint `json:"id" validate:"required"`
}
