package main

import (
	"strings"

	"estates-backend/internal/auth"
	"estates-backend/internal/config"
	"estates-backend/internal/database"
	"estates-backend/internal/lead"
	"estates-backend/internal/lookup"
	"estates-backend/internal/notify"
	"estates-backend/internal/promotion"
	"estates-backend/internal/property"
	"estates-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	store, err := storage.NewLocalStorage(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		logrus.Fatalf("storage init failed: %v", err)
	}

	var notifier notify.Notifier = notify.NopNotifier{}
	if cfg.SendGridAPIKey != "" {
		notifier = notify.NewSendGridNotifier(cfg.SendGridAPIKey, cfg.NotifyFromEmail, cfg.NotifyFromName)
	}

	propertySvc := property.NewService(database.DB, notifier)
	promotionSvc := promotion.NewService(database.DB)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			logrus.WithError(err).Error("unexpected error")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Static(cfg.UploadBaseURL, cfg.UploadDir)

	// Public auth
	app.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	app.Post("/auth/login", auth.LoginHandler(cfg))

	// Public reads
	app.Get("/property/search", property.SearchPropertiesHandler(propertySvc))
	app.Get("/property/minimal", property.MinimalPropertiesHandler(propertySvc))
	app.Get("/property/ready-to-move", property.ReadyToMoveHandler(propertySvc))
	app.Get("/property/most-viewed", property.MostViewedHandler(propertySvc))
	app.Get("/property/locality/:locality", property.ByLocalityHandler(propertySvc))
	app.Get("/property/developer/:developer_id", property.ByDeveloperHandler(propertySvc))
	app.Get("/property/:id", property.GetPropertyHandler(propertySvc))
	app.Get("/property", property.ListPropertiesHandler(propertySvc))

	app.Get("/featuredids", promotion.FeaturedIDsHandler(promotionSvc))
	app.Get("/activefeatured", promotion.ActiveFeaturedHandler(promotionSvc))
	app.Get("/activegallary", promotion.ActiveGalleryHandler(promotionSvc))

	app.Get("/categories", lookup.ListCategoriesHandler())
	app.Get("/categories/:id/subcategories", lookup.ListSubcategoriesHandler())
	app.Get("/amenities", lookup.ListAmenitiesHandler())
	app.Get("/keyfeatures", lookup.ListKeyFeaturesHandler())
	app.Get("/nearestto", lookup.ListNearestToHandler())
	app.Get("/developers", lookup.ListDevelopersHandler())
	app.Get("/cities", lookup.ListCitiesHandler())

	app.Post("/leads", lead.CreateLeadHandler())

	// Protected writes
	protected := app.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Post("/property", property.CreatePropertyHandler(propertySvc, store))
	protected.Put("/property/:id", property.UpdatePropertyHandler(propertySvc))
	protected.Delete("/property/:id", property.DeletePropertyHandler(propertySvc))
	protected.Post("/property/:id/images", property.UploadImagesHandler(propertySvc, store))

	protected.Post("/addtofeatured", promotion.AddToFeaturedHandler(promotionSvc))
	protected.Delete("/featured/:property_id", promotion.RemoveFeaturedHandler(promotionSvc))
	protected.Post("/addgallary", promotion.AddGalleryHandler(promotionSvc))
	protected.Delete("/removegallary/:property_id", promotion.RemoveGalleryHandler(promotionSvc))

	protected.Post("/categories", lookup.CreateCategoryHandler())
	protected.Post("/categories/:id/subcategories", lookup.CreateSubcategoryHandler())
	protected.Post("/amenities", lookup.CreateAmenityHandler())
	protected.Put("/amenities/:id", lookup.UpdateAmenityHandler())
	protected.Delete("/amenities/:id", lookup.DeleteAmenityHandler())
	protected.Post("/keyfeatures", lookup.CreateKeyFeatureHandler())
	protected.Put("/keyfeatures/:id", lookup.UpdateKeyFeatureHandler())
	protected.Delete("/keyfeatures/:id", lookup.DeleteKeyFeatureHandler())
	protected.Post("/nearestto", lookup.CreateNearestToHandler())
	protected.Put("/nearestto/:id", lookup.UpdateNearestToHandler())
	protected.Delete("/nearestto/:id", lookup.DeleteNearestToHandler())
	protected.Post("/developers", lookup.CreateDeveloperHandler())
	protected.Put("/developers/:id", lookup.UpdateDeveloperHandler())
	protected.Delete("/developers/:id", lookup.DeleteDeveloperHandler())
	protected.Post("/cities", lookup.CreateCityHandler())
	protected.Put("/cities/:id", lookup.UpdateCityHandler())
	protected.Delete("/cities/:id", lookup.DeleteCityHandler())

	protected.Get("/leads", lead.ListLeadsHandler())

	logrus.Info("server listening on port ", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logrus.Fatal(err)
	}
}
