package main

import (
	"log"

	"github.com/techagentng/itsm-backend/config"
	"github.com/techagentng/itsm-backend/db"
	"github.com/techagentng/itsm-backend/server"
	"github.com/techagentng/itsm-backend/services"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gormDB := db.GetDB(conf)

	userRepo := db.NewUserRepo(gormDB)
	categoryRepo := db.NewCategoryRepo(gormDB)
	assetRepo := db.NewAssetRepo(gormDB)
	incidentRepo := db.NewIncidentRepo(gormDB)
	requestRepo := db.NewRequestRepo(gormDB)
	articleRepo := db.NewArticleRepo(gormDB)
	commentRepo := db.NewCommentRepo(gormDB)

	s := &server.Server{
		Config:          conf,
		AuthService:     services.NewAuthService(userRepo, conf),
		UserService:     services.NewUserService(userRepo),
		CategoryService: services.NewCategoryService(categoryRepo),
		AssetService:    services.NewAssetService(assetRepo),
		IncidentService: services.NewIncidentService(incidentRepo),
		RequestService:  services.NewRequestService(requestRepo),
		ArticleService:  services.NewArticleService(articleRepo),
		CommentService:  services.NewCommentService(commentRepo),
	}
	s.Start()
}
