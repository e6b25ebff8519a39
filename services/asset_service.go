package services

import (
	"log"

	"github.com/techagentng/itsm-backend/db"
	apiError "github.com/techagentng/itsm-backend/errors"
	"github.com/techagentng/itsm-backend/models"
)

// recentLimit caps every recent-N reporting endpoint.
const recentLimit = 5

type AssetService interface {
	CreateAsset(input *models.CreateAssetInput) (*models.Asset, *apiError.Error)
	GetAsset(id uint) (*models.Asset, *apiError.Error)
	GetAllAssets() ([]models.Asset, *apiError.Error)
	UpdateAsset(input *models.UpdateAssetInput) (*models.Asset, *apiError.Error)
	DeleteAsset(id uint) *apiError.Error
	AssetsByType() ([]models.NameCount, *apiError.Error)
	TopAssetOwner() (*models.TopAssetOwner, *apiError.Error)
	RecentAssets() ([]models.Asset, *apiError.Error)
}

type assetService struct {
	assetRepo db.AssetRepository
}

func NewAssetService(assetRepo db.AssetRepository) AssetService {
	return &assetService{assetRepo: assetRepo}
}

func assetFromPayload(p *models.AssetPayload) *models.Asset {
	return &models.Asset{
		Name:              p.Name,
		Description:       p.Description,
		Type:              models.AssetType(p.Type),
		Status:            models.AssetStatus(p.Status),
		OwnerID:           p.OwnerID,
		PurchasedAt:       p.PurchasedAt,
		WarrantyExpiresAt: p.WarrantyExpiresAt,
	}
}

func (s *assetService) CreateAsset(input *models.CreateAssetInput) (*models.Asset, *apiError.Error) {
	asset := assetFromPayload(&input.AssetPayload)
	created, err := s.assetRepo.CreateAsset(asset, input.Categories)
	if err != nil {
		log.Printf("error creating asset: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while creating the asset")
	}
	return created, nil
}

func (s *assetService) GetAsset(id uint) (*models.Asset, *apiError.Error) {
	asset, err := s.assetRepo.FindAssetByID(id)
	if err != nil {
		return nil, apiError.FromDB(err, "an error occurred while retrieving the asset")
	}
	return asset, nil
}

func (s *assetService) GetAllAssets() ([]models.Asset, *apiError.Error) {
	assets, err := s.assetRepo.GetAllAssets()
	if err != nil {
		log.Printf("error listing assets: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while retrieving assets")
	}
	return assets, nil
}

func (s *assetService) UpdateAsset(input *models.UpdateAssetInput) (*models.Asset, *apiError.Error) {
	asset := assetFromPayload(&input.AssetPayload)
	asset.ID = input.ID
	updated, err := s.assetRepo.UpdateAsset(asset, input.Categories)
	if err != nil {
		log.Printf("error updating asset %d: %v", input.ID, err)
		return nil, apiError.FromDB(err, "an error occurred while updating the asset")
	}
	return updated, nil
}

func (s *assetService) DeleteAsset(id uint) *apiError.Error {
	if err := s.assetRepo.DeleteAsset(id); err != nil {
		log.Printf("error deleting asset %d: %v", id, err)
		return apiError.FromDB(err, "an error occurred while deleting the asset")
	}
	return nil
}

func (s *assetService) AssetsByType() ([]models.NameCount, *apiError.Error) {
	rows, err := s.assetRepo.CountAssetsByType()
	if err != nil {
		log.Printf("error counting assets by type: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while retrieving assets by type")
	}
	return rows, nil
}

func (s *assetService) TopAssetOwner() (*models.TopAssetOwner, *apiError.Error) {
	owner, err := s.assetRepo.GetTopAssetOwner()
	if err != nil {
		log.Printf("error retrieving top asset owner: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while retrieving the user with the most assets")
	}
	return owner, nil
}

func (s *assetService) RecentAssets() ([]models.Asset, *apiError.Error) {
	assets, err := s.assetRepo.GetRecentAssets(recentLimit)
	if err != nil {
		log.Printf("error retrieving recent assets: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while retrieving the recent assets")
	}
	return assets, nil
}
