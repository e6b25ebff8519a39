package db

import (
	"errors"
	"fmt"
	"log"

	"github.com/techagentng/itsm-backend/config"
	"github.com/techagentng/itsm-backend/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrEmptyResult is returned by top-1 reporting queries when the grouped
// set has no rows at all.
var ErrEmptyResult = errors.New("empty result set")

type GormDB struct {
	DB *gorm.DB
}

func GetDB(c *config.Config) *GormDB {
	gormDB := &GormDB{}
	gormDB.Init(c)
	return gormDB
}

func (g *GormDB) Init(c *config.Config) {
	g.DB = getPostgresDB(c)

	if err := migrate(g.DB); err != nil {
		log.Fatalf("unable to run migrations: %v", err)
	}
}

func getPostgresDB(c *config.Config) *gorm.DB {
	postgresDSN := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d",
		c.PostgresHost, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresPort)

	// TranslateError surfaces duplicate-key and FK violations as gorm
	// sentinel errors, which the errors package maps onto HTTP statuses.
	gormConfig := &gorm.Config{TranslateError: true}
	if c.Env != "prod" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		DSN: postgresDSN,
	}), gormConfig)
	if err != nil {
		log.Fatal(err)
	}

	return gormDB
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Asset{},
		&models.Incident{},
		&models.Request{},
		&models.KnowledgeArticle{},
		&models.AssetArticle{},
		&models.IncidentComment{},
		&models.RequestComment{},
	)
}

// findCategories loads the categories for the given ids and fails with a
// foreign-key violation when any id does not exist, so callers surface a
// 400 instead of silently creating blank categories.
func findCategories(tx *gorm.DB, ids []uint) ([]models.Category, error) {
	var cats []models.Category
	if len(ids) == 0 {
		return cats, nil
	}
	if err := tx.Find(&cats, ids).Error; err != nil {
		return nil, err
	}
	if len(cats) != len(ids) {
		return nil, gorm.ErrForeignKeyViolated
	}
	return cats, nil
}
