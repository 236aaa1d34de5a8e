package routes

import (
	"cookops-backend/internal/api/handlers"
	"cookops-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	SiteHandler       handlers.SiteHandler
	MenuHandler       handlers.MenuHandler
	IngredientHandler handlers.IngredientHandler
	CatalogHandler    handlers.CatalogHandler
	SnapshotHandler   handlers.SnapshotHandler
	Middleware        middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Sites()
	c.MenuEntries()
	c.Ingredients()
	c.Catalog()
	c.Snapshots()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "cookops", "version": "v1"})
	})
}

func (c *Config) Sites() {
	sites := c.App.Group("/api/v1/sites")
	{
		sites.Get("", c.SiteHandler.GetSites)
		sites.Post("", c.SiteHandler.CreateSite)
		sites.Patch("/:id", c.SiteHandler.UpdateSite)
		sites.Delete("/:id", c.SiteHandler.DeleteSite)
	}
}

func (c *Config) MenuEntries() {
	menuEntries := c.App.Group("/api/v1/menu-entries")
	{
		menuEntries.Get("", c.MenuHandler.GetEffectiveEntries)
		menuEntries.Post("/sync", c.MenuHandler.SyncEntries)
	}
}

func (c *Config) Ingredients() {
	c.App.Get("/api/v1/ingredients", c.IngredientHandler.GetAggregation)
}

func (c *Config) Catalog() {
	c.App.Get("/api/v1/suppliers", c.CatalogHandler.GetSuppliers)
	c.App.Get("/api/v1/suppliers/:id/products", c.CatalogHandler.GetSupplierProducts)
	c.App.Post("/api/v1/catalog/import", c.CatalogHandler.ImportCatalog)
}

func (c *Config) Snapshots() {
	c.App.Post("/api/v1/snapshots/import", c.SnapshotHandler.ImportSnapshots)
}
