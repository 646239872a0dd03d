package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/leafload/leafload-api/internal/config"
	"github.com/leafload/leafload-api/internal/handlers"
	infraRepo "github.com/leafload/leafload-api/internal/infra/repository"
	"github.com/leafload/leafload-api/internal/middleware"
	"github.com/leafload/leafload-api/internal/notify"
	"github.com/leafload/leafload-api/internal/upload"
	ucOrder "github.com/leafload/leafload-api/internal/usecase/order"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	orderRepo := infraRepo.NewOrderGormRepository(db)

	mailer := notify.NewMailer(cfg)
	dispatcher := notify.NewDispatcher(mailer)

	var storage upload.Storage
	if cfg.S3Bucket != "" {
		storage = upload.NewS3Storage(cfg)
	} else {
		local, err := upload.NewLocalStorage(cfg.UploadDir)
		if err != nil {
			log.Fatalf("upload dir: %v", err)
		}
		storage = local
	}

	// ======================================================
	// USE CASES (ORDERS)
	// ======================================================
	createOrderUC := ucOrder.NewCreateOrder(
		orderRepo,
		dispatcher,
	)

	updateStatusUC := ucOrder.NewUpdateStatus(
		orderRepo,
	)

	listForRestaurantUC := ucOrder.NewListForRestaurant(
		orderRepo,
	)

	listForUserUC := ucOrder.NewListForUser(
		orderRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	regionHandler := handlers.NewRegionHandler(db)
	restaurantHandler := handlers.NewRestaurantHandler(db)
	categoryHandler := handlers.NewCategoryHandler(db)
	menuItemHandler := handlers.NewMenuItemHandler(db)
	uploadHandler := handlers.NewUploadHandler(storage)

	orderHandler := handlers.NewOrderHandler(
		createOrderUC,
		updateStatusUC,
		listForRestaurantUC,
		listForUserUC,
	)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/signup", authHandler.Signup)
	r.POST("/auth/signup/restaurant", authHandler.SignupRestaurant)

	r.GET("/regions", regionHandler.List)

	r.GET("/restaurants", restaurantHandler.List)
	r.GET("/restaurants/:id/details", restaurantHandler.Details)

	r.GET("/uploads/serve/:filename", uploadHandler.Serve)

	// ======================================================
	// PRIVATE
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/account/me", meHandler.GetMe)
		secured.PATCH("/account/me", meHandler.UpdateMe)
		secured.GET("/account/orders", orderHandler.ListMine)

		secured.GET("/restaurants/:id/edit", restaurantHandler.EditData)
		secured.PATCH("/restaurants/:id", restaurantHandler.Update)
		secured.POST("/restaurants/:id/rate", restaurantHandler.Rate)

		secured.POST("/restaurants/:id/categories", categoryHandler.Create)
		secured.PATCH("/restaurants/categories/:id", categoryHandler.Update)
		secured.DELETE("/restaurants/categories/:id", categoryHandler.Delete)

		secured.POST("/restaurants/menu-items", menuItemHandler.Create)
		secured.GET("/restaurants/menu-items/:id/edit", menuItemHandler.EditData)
		secured.PATCH("/restaurants/menu-items/:id", menuItemHandler.Update)
		secured.DELETE("/restaurants/menu-items/:id", menuItemHandler.Delete)

		secured.POST("/restaurants/orders", orderHandler.Create)
		secured.GET("/restaurants/:id/orders", orderHandler.ListForRestaurant)
		secured.PATCH("/restaurants/orders/:orderId/status", orderHandler.UpdateStatus)

		secured.POST("/uploads/image", uploadHandler.Image)
	}
}
