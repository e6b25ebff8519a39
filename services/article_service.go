package services

import (
	"log"

	"github.com/techagentng/itsm-backend/db"
	apiError "github.com/techagentng/itsm-backend/errors"
	"github.com/techagentng/itsm-backend/models"
)

type ArticleService interface {
	CreateArticle(input *models.CreateArticleInput) (*models.KnowledgeArticle, *apiError.Error)
	GetArticle(id uint) (*models.KnowledgeArticle, *apiError.Error)
	GetAllArticles() ([]models.KnowledgeArticle, *apiError.Error)
	UpdateArticle(input *models.UpdateArticleInput) (*models.KnowledgeArticle, *apiError.Error)
	DeleteArticle(id uint) *apiError.Error
	ArticlesByCategory() ([]models.NameCount, *apiError.Error)
	TopAuthor() (*models.TopAuthor, *apiError.Error)
	AssetWithMostArticles() (*models.TopArticleAsset, *apiError.Error)
	RecentArticles() ([]models.KnowledgeArticle, *apiError.Error)
}

type articleService struct {
	articleRepo db.ArticleRepository
}

func NewArticleService(articleRepo db.ArticleRepository) ArticleService {
	return &articleService{articleRepo: articleRepo}
}

func (s *articleService) CreateArticle(input *models.CreateArticleInput) (*models.KnowledgeArticle, *apiError.Error) {
	createdBy := input.CreatedByID
	article := &models.KnowledgeArticle{
		Title:       input.Title,
		DocURL:      input.DocURL,
		CreatedByID: &createdBy,
	}
	created, err := s.articleRepo.CreateArticle(article, input.Categories, input.Assets)
	if err != nil {
		log.Printf("error creating knowledge article: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while creating the article")
	}
	return created, nil
}

func (s *articleService) GetArticle(id uint) (*models.KnowledgeArticle, *apiError.Error) {
	article, err := s.articleRepo.FindArticleByID(id)
	if err != nil {
		return nil, apiError.FromDB(err, "an error occurred while retrieving the article")
	}
	return article, nil
}

func (s *articleService) GetAllArticles() ([]models.KnowledgeArticle, *apiError.Error) {
	articles, err := s.articleRepo.GetAllArticles()
	if err != nil {
		log.Printf("error listing knowledge articles: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while retrieving articles")
	}
	return articles, nil
}

func (s *articleService) UpdateArticle(input *models.UpdateArticleInput) (*models.KnowledgeArticle, *apiError.Error) {
	article := &models.KnowledgeArticle{
		ID:               input.ID,
		Title:            input.Title,
		DocURL:           input.DocURL,
		LastModifiedByID: input.LastModifiedByID,
	}
	updated, err := s.articleRepo.UpdateArticle(article, input.Categories, input.Assets)
	if err != nil {
		log.Printf("error updating knowledge article %d: %v", input.ID, err)
		return nil, apiError.FromDB(err, "an error occurred while updating the article")
	}
	return updated, nil
}

func (s *articleService) DeleteArticle(id uint) *apiError.Error {
	if err := s.articleRepo.DeleteArticle(id); err != nil {
		log.Printf("error deleting knowledge article %d: %v", id, err)
		return apiError.FromDB(err, "an error occurred while deleting the knowledge article")
	}
	return nil
}

func (s *articleService) ArticlesByCategory() ([]models.NameCount, *apiError.Error) {
	rows, err := s.articleRepo.CountArticlesByCategory()
	if err != nil {
		log.Printf("error counting articles by category: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while retrieving articles by category")
	}
	return rows, nil
}

func (s *articleService) TopAuthor() (*models.TopAuthor, *apiError.Error) {
	author, err := s.articleRepo.GetTopAuthor()
	if err != nil {
		log.Printf("error retrieving top author: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while retrieving the person who created the most articles")
	}
	return author, nil
}

func (s *articleService) AssetWithMostArticles() (*models.TopArticleAsset, *apiError.Error) {
	asset, err := s.articleRepo.GetAssetWithMostArticles()
	if err != nil {
		log.Printf("error retrieving asset with most articles: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while retrieving the asset with the most related articles")
	}
	return asset, nil
}

func (s *articleService) RecentArticles() ([]models.KnowledgeArticle, *apiError.Error) {
	articles, err := s.articleRepo.GetRecentArticles(recentLimit)
	if err != nil {
		log.Printf("error retrieving recent articles: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while retrieving the recent articles")
	}
	return articles, nil
}
