package db

import (
	"github.com/pkg/errors"
	"github.com/techagentng/itsm-backend/models"
	"gorm.io/gorm"
)

type AssetRepository interface {
	CreateAsset(asset *models.Asset, categoryIDs []uint) (*models.Asset, error)
	FindAssetByID(id uint) (*models.Asset, error)
	GetAllAssets() ([]models.Asset, error)
	UpdateAsset(asset *models.Asset, categoryIDs []uint) (*models.Asset, error)
	DeleteAsset(id uint) error
	CountAssetsByType() ([]models.NameCount, error)
	GetTopAssetOwner() (*models.TopAssetOwner, error)
	GetRecentAssets(limit int) ([]models.Asset, error)
}

type assetRepo struct {
	DB *gorm.DB
}

func NewAssetRepo(db *GormDB) AssetRepository {
	return &assetRepo{db.DB}
}

func (a *assetRepo) CreateAsset(asset *models.Asset, categoryIDs []uint) (*models.Asset, error) {
	err := a.DB.Transaction(func(tx *gorm.DB) error {
		cats, err := findCategories(tx, categoryIDs)
		if err != nil {
			return err
		}
		asset.Categories = cats
		return tx.Create(asset).Error
	})
	if err != nil {
		return nil, err
	}
	return asset, nil
}

func (a *assetRepo) FindAssetByID(id uint) (*models.Asset, error) {
	var asset models.Asset
	err := a.DB.
		Preload("Owner").
		Preload("Categories").
		First(&asset, id).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (a *assetRepo) GetAllAssets() ([]models.Asset, error) {
	var assets []models.Asset
	err := a.DB.
		Preload("Owner").
		Preload("Categories").
		Preload("Incidents").
		Preload("Articles.Article").
		Order("id").
		Find(&assets).Error
	if err != nil {
		return nil, errors.Wrap(err, "list assets")
	}
	return assets, nil
}

func (a *assetRepo) UpdateAsset(asset *models.Asset, categoryIDs []uint) (*models.Asset, error) {
	err := a.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Asset
		if err := tx.First(&existing, asset.ID).Error; err != nil {
			return err
		}
		cats, err := findCategories(tx, categoryIDs)
		if err != nil {
			return err
		}
		res := tx.Model(&existing).
			Select("Name", "Description", "Type", "Status", "OwnerID", "PurchasedAt", "WarrantyExpiresAt").
			Updates(asset)
		if res.Error != nil {
			return res.Error
		}
		// Wholesale replace: category ids not in the new set are dropped.
		if err := tx.Model(&existing).Association("Categories").Replace(cats); err != nil {
			return err
		}
		*asset = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return asset, nil
}

func (a *assetRepo) DeleteAsset(id uint) error {
	return a.DB.Transaction(func(tx *gorm.DB) error {
		var asset models.Asset
		if err := tx.First(&asset, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&asset).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(&asset).Error
	})
}

func (a *assetRepo) CountAssetsByType() ([]models.NameCount, error) {
	var rows []models.NameCount
	err := a.DB.Model(&models.Asset{}).
		Select("type AS name, COUNT(*) AS total").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "count assets by type")
	}
	return rows, nil
}

func (a *assetRepo) GetTopAssetOwner() (*models.TopAssetOwner, error) {
	var grouped struct {
		OwnerID uint
		Total   int64
	}
	res := a.DB.Model(&models.Asset{}).
		Select("owner_id, COUNT(*) AS total").
		Where("owner_id IS NOT NULL").
		Group("owner_id").
		Order("total DESC").
		Limit(1).
		Scan(&grouped)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrEmptyResult
	}

	var owner models.User
	if err := a.DB.First(&owner, grouped.OwnerID).Error; err != nil {
		return nil, err
	}
	return &models.TopAssetOwner{
		ID:          owner.ID,
		Name:        owner.Name,
		TotalAssets: grouped.Total,
	}, nil
}

func (a *assetRepo) GetRecentAssets(limit int) ([]models.Asset, error) {
	var assets []models.Asset
	err := a.DB.
		Where("status NOT IN ?", models.AssetTerminalStatuses).
		Preload("Owner").
		Preload("Categories").
		Preload("Incidents").
		Order("updated_at DESC").
		Limit(limit).
		Find(&assets).Error
	if err != nil {
		return nil, errors.Wrap(err, "recent assets")
	}
	return assets, nil
}
