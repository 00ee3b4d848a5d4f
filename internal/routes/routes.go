package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"challan-management-backend/internal/config"
	handler "challan-management-backend/internal/handlers"
	"challan-management-backend/internal/middleware"
	"challan-management-backend/internal/repository"
	auth "challan-management-backend/internal/services/auth"
	challan "challan-management-backend/internal/services/challan"
	"challan-management-backend/internal/services/numbering"
	"challan-management-backend/internal/services/pdf"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	itemRepo := repository.NewItemRepository(db)
	challanRepo := repository.NewChallanRepository(db)

	allocator := numbering.NewAllocator(userRepo)
	authService := auth.NewService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	challanService := challan.NewService(allocator, clientRepo, branchRepo, challanRepo)
	renderer := pdf.NewRenderer(cfg.Company)

	authHandler := handler.NewAuthHandler(authService)
	masterHandler := handler.NewMasterHandler(clientRepo, branchRepo, itemRepo)
	challanHandler := handler.NewChallanHandler(challanService, renderer)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api.POST("/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.Authenticate(authService))

	authed.POST("/change-password", authHandler.ChangePassword)

	// Master data reads are open to any authenticated user
	authed.GET("/clients", masterHandler.ListClients)
	authed.GET("/clients/:clientId", masterHandler.GetClient)
	authed.GET("/branches/client/:clientId", masterHandler.ListBranchesByClient)
	authed.GET("/branches/:branchId", masterHandler.GetBranch)
	authed.GET("/items", masterHandler.ListItems)

	// Challan routes
	challans := authed.Group("/challans")
	challans.GET("", challanHandler.List)
	challans.POST("", challanHandler.Create)
	challans.GET("/:challanId/items", challanHandler.Items)
	challans.GET("/:challanId/pdf", challanHandler.DownloadPDF)

	// Admin-only: user accounts and master data writes
	admin := authed.Group("")
	admin.Use(middleware.RequireAdmin())
	admin.POST("/register", authHandler.Register)
	admin.POST("/set-password", authHandler.SetPassword)
	admin.GET("/users", authHandler.ListUsers)
	admin.POST("/clients", masterHandler.CreateClient)
	admin.POST("/branches", masterHandler.CreateBranches)
	admin.POST("/items", masterHandler.CreateItem)
}
