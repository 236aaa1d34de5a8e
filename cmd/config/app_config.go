package config

import (
	"os"
	"time"

	"cookops-backend/internal/api/handlers"
	"cookops-backend/internal/api/routes"
	"cookops-backend/internal/middleware"
	"cookops-backend/internal/utils"
	"cookops-backend/pkg/catalog"
	"cookops-backend/pkg/ingredients"
	"cookops-backend/pkg/menu"
	"cookops-backend/pkg/site"
	"cookops-backend/pkg/snapshot"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetConfig("APP_TIMEZONE"),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	siteRepository := site.NewSiteRepository(db)
	menuRepository := menu.NewMenuRepository(db)
	snapshotRepository := snapshot.NewSnapshotRepository(db)
	catalogRepository := catalog.NewCatalogRepository(db)

	// Service
	siteService := site.NewSiteService(siteRepository)
	menuService := menu.NewMenuService(menuRepository, siteRepository)
	snapshotService := snapshot.NewSnapshotService(snapshotRepository)
	catalogService := catalog.NewCatalogService(catalogRepository)
	ingredientService := ingredients.NewIngredientService(menuService, snapshotService, catalogRepository)

	// Handler
	siteHandler := handlers.NewSiteHandler(siteService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, siteService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, siteService)
	catalogHandler := handlers.NewCatalogHandler(catalogService, validator)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		SiteHandler:       siteHandler,
		MenuHandler:       menuHandler,
		IngredientHandler: ingredientHandler,
		CatalogHandler:    catalogHandler,
		SnapshotHandler:   snapshotHandler,
		Middleware:        middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
