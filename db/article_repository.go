package db

import (
	"github.com/pkg/errors"
	"github.com/techagentng/itsm-backend/models"
	"gorm.io/gorm"
)

type ArticleRepository interface {
	CreateArticle(article *models.KnowledgeArticle, categoryIDs, assetIDs []uint) (*models.KnowledgeArticle, error)
	FindArticleByID(id uint) (*models.KnowledgeArticle, error)
	GetAllArticles() ([]models.KnowledgeArticle, error)
	UpdateArticle(article *models.KnowledgeArticle, categoryIDs, assetIDs []uint) (*models.KnowledgeArticle, error)
	DeleteArticle(id uint) error
	CountArticlesByCategory() ([]models.NameCount, error)
	GetTopAuthor() (*models.TopAuthor, error)
	GetAssetWithMostArticles() (*models.TopArticleAsset, error)
	GetRecentArticles(limit int) ([]models.KnowledgeArticle, error)
}

type articleRepo struct {
	DB *gorm.DB
}

func NewArticleRepo(db *GormDB) ArticleRepository {
	return &articleRepo{db.DB}
}

func setArticleAssetLinks(tx *gorm.DB, articleID uint, assetIDs []uint) error {
	if err := tx.Where("article_id = ?", articleID).Delete(&models.AssetArticle{}).Error; err != nil {
		return err
	}
	for _, assetID := range assetIDs {
		link := models.AssetArticle{AssetID: assetID, ArticleID: articleID}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

func (a *articleRepo) CreateArticle(article *models.KnowledgeArticle, categoryIDs, assetIDs []uint) (*models.KnowledgeArticle, error) {
	err := a.DB.Transaction(func(tx *gorm.DB) error {
		cats, err := findCategories(tx, categoryIDs)
		if err != nil {
			return err
		}
		article.Categories = cats
		if err := tx.Create(article).Error; err != nil {
			return err
		}
		return setArticleAssetLinks(tx, article.ID, assetIDs)
	})
	if err != nil {
		return nil, err
	}
	return article, nil
}

func (a *articleRepo) FindArticleByID(id uint) (*models.KnowledgeArticle, error) {
	var article models.KnowledgeArticle
	err := a.DB.
		Preload("CreatedBy").
		Preload("LastModifiedBy").
		Preload("Categories").
		Preload("Assets.Asset").
		First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (a *articleRepo) GetAllArticles() ([]models.KnowledgeArticle, error) {
	var articles []models.KnowledgeArticle
	err := a.DB.
		Preload("CreatedBy").
		Preload("LastModifiedBy").
		Preload("Categories").
		Preload("Assets.Asset").
		Order("id").
		Find(&articles).Error
	if err != nil {
		return nil, errors.Wrap(err, "list knowledge articles")
	}
	return articles, nil
}

func (a *articleRepo) UpdateArticle(article *models.KnowledgeArticle, categoryIDs, assetIDs []uint) (*models.KnowledgeArticle, error) {
	err := a.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.KnowledgeArticle
		if err := tx.First(&existing, article.ID).Error; err != nil {
			return err
		}
		cats, err := findCategories(tx, categoryIDs)
		if err != nil {
			return err
		}
		res := tx.Model(&existing).
			Select("Title", "DocURL", "LastModifiedByID").
			Updates(article)
		if res.Error != nil {
			return res.Error
		}
		if err := tx.Model(&existing).Association("Categories").Replace(cats); err != nil {
			return err
		}
		if err := setArticleAssetLinks(tx, existing.ID, assetIDs); err != nil {
			return err
		}
		*article = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return article, nil
}

// DeleteArticle removes the asset-link join rows and the article as one
// atomic unit.
func (a *articleRepo) DeleteArticle(id uint) error {
	return a.DB.Transaction(func(tx *gorm.DB) error {
		var article models.KnowledgeArticle
		if err := tx.First(&article, id).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&models.AssetArticle{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&article).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(&article).Error
	})
}

// CountArticlesByCategory counts with many-to-many fan-out: an article is
// counted once per category it belongs to.
func (a *articleRepo) CountArticlesByCategory() ([]models.NameCount, error) {
	var rows []models.NameCount
	err := a.DB.Model(&models.Category{}).
		Select("categories.name AS name, COUNT(article_categories.knowledge_article_id) AS total").
		Joins("JOIN article_categories ON article_categories.category_id = categories.id").
		Group("categories.name").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "count articles by category")
	}
	return rows, nil
}

func (a *articleRepo) GetTopAuthor() (*models.TopAuthor, error) {
	var grouped struct {
		CreatedByID uint
		Total       int64
	}
	res := a.DB.Model(&models.KnowledgeArticle{}).
		Select("created_by_id, COUNT(*) AS total").
		Where("created_by_id IS NOT NULL").
		Group("created_by_id").
		Order("total DESC").
		Limit(1).
		Scan(&grouped)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrEmptyResult
	}

	var author models.User
	if err := a.DB.First(&author, grouped.CreatedByID).Error; err != nil {
		return nil, err
	}
	return &models.TopAuthor{
		ID:            author.ID,
		Name:          author.Name,
		Email:         author.Email,
		TotalArticles: grouped.Total,
	}, nil
}

func (a *articleRepo) GetAssetWithMostArticles() (*models.TopArticleAsset, error) {
	var grouped struct {
		AssetID uint
		Total   int64
	}
	res := a.DB.Model(&models.AssetArticle{}).
		Select("asset_id, COUNT(*) AS total").
		Group("asset_id").
		Order("total DESC").
		Limit(1).
		Scan(&grouped)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrEmptyResult
	}

	var asset models.Asset
	if err := a.DB.First(&asset, grouped.AssetID).Error; err != nil {
		return nil, err
	}
	return &models.TopArticleAsset{
		ID:            asset.ID,
		Name:          asset.Name,
		Description:   asset.Description,
		Type:          string(asset.Type),
		Status:        string(asset.Status),
		TotalArticles: grouped.Total,
	}, nil
}

func (a *articleRepo) GetRecentArticles(limit int) ([]models.KnowledgeArticle, error) {
	var articles []models.KnowledgeArticle
	err := a.DB.
		Preload("CreatedBy").
		Preload("LastModifiedBy").
		Preload("Categories").
		Preload("Assets").
		Order("updated_at DESC").
		Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, errors.Wrap(err, "recent articles")
	}
	return articles, nil
}
