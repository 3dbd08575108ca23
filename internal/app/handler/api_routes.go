package handler

import (
	"solarbackend/internal/app/middleware"
	"solarbackend/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	// REST API маршруты
	api := router.Group("/api")

	// ============ Витрина: калькулятор, статистика, галерея, отзывы ============
	api.POST("/solar-calculator", h.CalculateSolarSystem)
	api.GET("/stats", h.GetSiteStats)
	api.GET("/gallery", h.GetGalleryProjects)
	api.GET("/feedback", h.GetApprovedFeedback)
	api.POST("/feedback", authMiddleware.WithAuthCheck(role.Client, role.Admin), h.CreateFeedback)

	// Публичная проверка статуса заявки по номеру
	api.GET("/application-status/:reference", h.GetApplicationStatus)

	// ============ Товары ============
	products := api.Group("/products")
	{
		// Публичные эндпоинты (без авторизации)
		products.GET("", h.GetProducts)
		products.GET("/featured", h.GetFeaturedProducts)
		products.GET("/:id", h.GetProduct)
	}

	// ============ Заявки на подключение ============
	applications := api.Group("/applications")
	applications.Use(authMiddleware.WithAuthCheck(role.Client, role.Admin))
	{
		applications.POST("", h.CreateMeteringApplication)
		applications.POST("/solar-setup", h.CreateSolarSetupApplication)
		applications.GET("/my", h.GetMyApplications)
		applications.GET("/:id", h.GetApplication)
		applications.GET("/:id/documents/:kind", h.GetApplicationDocumentURL)
	}

	// ============ Корзина и заказы ============
	cart := api.Group("/cart")
	cart.Use(authMiddleware.WithAuthCheck(role.Client, role.Admin))
	{
		cart.GET("", h.GetCart)
		cart.POST("/:id", h.AddToCart)
		cart.PUT("/:id", h.UpdateCartItem)
		cart.DELETE("/:id", h.RemoveCartItem)
	}
	api.POST("/checkout", authMiddleware.WithAuthCheck(role.Client, role.Admin), h.Checkout)

	orders := api.Group("/orders")
	orders.Use(authMiddleware.WithAuthCheck(role.Client, role.Admin))
	{
		orders.GET("/my", h.GetMyOrders)
		orders.GET("/:id", h.GetOrder)
	}

	// ============ Обслуживание ============
	maintenance := api.Group("/maintenance")
	maintenance.Use(authMiddleware.WithAuthCheck(role.Client, role.Admin))
	{
		maintenance.POST("", h.CreateMaintenanceRequest)
		maintenance.GET("/my", h.GetMyMaintenanceRequests)
	}

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		// Публичные эндпоинты
		auth.POST("/register", h.AuthHandler.RegisterUser)
		auth.POST("/login", h.AuthHandler.LoginUser)

		// Защищенные эндпоинты
		auth.GET("/profile", authMiddleware.WithAuthCheck(role.Client, role.Admin), h.AuthHandler.GetUserProfile)
		auth.PUT("/profile", authMiddleware.WithAuthCheck(role.Client, role.Admin), h.UpdateProfile)
		auth.POST("/logout", authMiddleware.WithAuthCheck(role.Client, role.Admin), h.AuthHandler.LogoutUser)
	}

	// ============ Админ-панель ============
	admin := api.Group("/admin")
	admin.Use(authMiddleware.WithAuthCheck(role.Admin))
	{
		admin.GET("/dashboard", h.GetDashboard)

		admin.GET("/applications", h.GetApplications)
		admin.PUT("/applications/:id", h.UpdateApplication)

		admin.POST("/products", h.CreateProduct)
		admin.PUT("/products/:id", h.UpdateProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)
		admin.POST("/products/:id/image", h.UploadProductImage)

		admin.GET("/orders", h.GetOrders)
		admin.PUT("/orders/:id", h.UpdateOrder)

		admin.GET("/maintenance", h.GetMaintenanceRequests)
		admin.PUT("/maintenance/:id", h.UpdateMaintenanceRequest)

		admin.GET("/feedback", h.GetAllFeedback)
		admin.PUT("/feedback/:id/approve", h.ApproveFeedback)

		admin.POST("/gallery", h.CreateGalleryProject)
		admin.PUT("/gallery/:id", h.UpdateGalleryProject)
		admin.DELETE("/gallery/:id", h.DeleteGalleryProject)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}
