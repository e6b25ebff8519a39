package models

import "time"

type KnowledgeArticle struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	Title            string         `json:"title" gorm:"not null"`
	DocURL           string         `json:"docUrl" gorm:"column:doc_url"`
	CreatedByID      *uint          `json:"createdById,omitempty"`
	CreatedBy        *User          `json:"createdBy,omitempty" gorm:"foreignKey:CreatedByID"`
	LastModifiedByID *uint          `json:"lastModifiedById,omitempty"`
	LastModifiedBy   *User          `json:"lastModifiedBy,omitempty" gorm:"foreignKey:LastModifiedByID"`
	Categories       []Category     `json:"categories,omitempty" gorm:"many2many:article_categories"`
	Assets           []AssetArticle `json:"assets,omitempty" gorm:"foreignKey:ArticleID"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// AssetArticle is the join entity linking assets to knowledge articles.
type AssetArticle struct {
	AssetID   uint              `json:"assetId" gorm:"primaryKey;autoIncrement:false"`
	ArticleID uint              `json:"articleId" gorm:"primaryKey;autoIncrement:false"`
	Asset     *Asset            `json:"asset,omitempty" gorm:"foreignKey:AssetID"`
	Article   *KnowledgeArticle `json:"article,omitempty" gorm:"foreignKey:ArticleID"`
}

type ArticlePayload struct {
	Title      string `json:"title" conform:"trim" validate:"required"`
	DocURL     string `json:"docUrl" conform:"trim" validate:"required,url"`
	Categories []uint `json:"categories"`
	Assets     []uint `json:"assets"`
}

type CreateArticleInput struct {
	ArticlePayload
	Categories  []uint `json:"categories" validate:"required,min=1"`
	CreatedByID uint   `json:"createdById" validate:"required"`
}

type UpdateArticleInput struct {
	ArticlePayload
	ID               uint  `json:"id" validate:"required"`
	LastModifiedByID *uint `json:"lastModifiedById"`
}
