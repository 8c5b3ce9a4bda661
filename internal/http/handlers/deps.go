package handlers

import (
	"github.com/jmoiron/sqlx"

	"pickl/internal/config"
	"pickl/internal/nav"
	"pickl/internal/repos"
	"pickl/internal/services"
	"pickl/internal/upload"
)

type Deps struct {
	AppHandler     *AppHandler
	NavHandler     *NavHandler
	ProductHandler *ProductHandler
	CartHandler    *CartHandler
	UploadHandler  *UploadHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	prodRepo := repos.NewProductRepo(db)
	cartRepo := repos.NewCartRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	cartSvc := services.NewCartService(cartRepo, prodRepo)

	ctrl := nav.NewController()
	pipeline := upload.NewPipeline(
		upload.DeviceCamera{Available: cfg.Camera, FrameURI: upload.Image(cfg.CameraFrame)},
		upload.StubClassifier{},
	)

	return &Deps{
		AppHandler:     &AppHandler{Nav: ctrl, Catalog: catalogSvc, Cart: cartSvc, Pipeline: pipeline},
		NavHandler:     &NavHandler{Nav: ctrl, Pipeline: pipeline},
		ProductHandler: &ProductHandler{Nav: ctrl, Catalog: catalogSvc},
		CartHandler:    &CartHandler{Nav: ctrl, Cart: cartSvc},
		UploadHandler:  &UploadHandler{Nav: ctrl, Catalog: catalogSvc, Pipeline: pipeline},
	}
}
