package router

import (
	"dabbaMarket/internal/middleware"
	"dabbaMarket/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupCustomerRoutes(api *echo.Group, handler *rest.CustomerHandler, authRequired echo.MiddlewareFunc) {
	customers := api.Group("/customers")

	customers.POST("/register", handler.Register)
	customers.POST("/login", handler.Login)
	customers.POST("/forgot-password", handler.ForgotPassword)
	customers.POST("/reset-password", handler.ResetPassword)

	customers.GET("/me", handler.GetProfile, authRequired)
	customers.PUT("/me", handler.UpdateProfile, authRequired)
	customers.GET("/me/preferences", handler.GetPreferences, authRequired)
	customers.PUT("/me/preferences", handler.UpdatePreferences, authRequired)

	customers.GET("/:id", handler.GetCustomerByID, authRequired, middleware.SelfOrAdmin())
}

func SetupMenuRoutes(api *echo.Group, handler *rest.MenuHandler, authRequired echo.MiddlewareFunc) {
	menu := api.Group("/menu")

	menu.GET("", handler.GetAllItems)
	menu.GET("/:id", handler.GetItemByID)

	providerOnly := middleware.ProviderOnly()
	menu.GET("/mine", handler.GetMyItems, authRequired, providerOnly)
	menu.POST("", handler.CreateItem, authRequired, providerOnly)
	menu.PUT("/:id", handler.UpdateItem, authRequired, providerOnly)
	menu.PATCH("/:id/availability", handler.SetAvailability, authRequired, providerOnly)
	menu.DELETE("/:id", handler.DeleteItem, authRequired, providerOnly)
}

func SetupOrdersRoutes(api *echo.Group, handler *rest.OrdersHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	orders := api.Group("/orders", authRequired)

	orders.POST("", handler.CreateOrder)
	orders.GET("", handler.GetMyOrders)
	orders.GET("/:id", handler.GetOrderByID)
	orders.PUT("/:id/status", handler.UpdateOrderStatus, adminOnly)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler, authRequired echo.MiddlewareFunc) {
	reco := api.Group("/recommendations", authRequired)

	reco.GET("", handler.GetRecommendations)
	reco.GET("/explore", handler.ExploreRecommendations)
	reco.GET("/similar/:meal_id", handler.GetSimilarItems)
	reco.GET("/popular", handler.GetPopularItems)
	reco.GET("/trending", handler.GetTrendingItems)
	reco.POST("/feedback", handler.SubmitFeedback)
}

func SetupRecommendationAdminRoutes(api *echo.Group, handler *rest.RecommendationAdminHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	admin := api.Group("/admin/recommendations", authRequired, adminOnly)

	admin.GET("/arms", handler.GetArmStatistics)
	admin.GET("/config", handler.GetConfig)
	admin.GET("/catalog", handler.GetCatalogStatus)
}

func SetupComplaintRoutes(api *echo.Group, handler *rest.ComplaintHandler, authRequired echo.MiddlewareFunc) {
	complaints := api.Group("/complaints", authRequired)

	complaints.POST("", handler.CreateComplaint)
	complaints.GET("", handler.GetMyComplaints)
	complaints.GET("/:id", handler.GetComplaintByID)
	complaints.POST("/:id/messages", handler.AddMessage)
	complaints.POST("/:id/escalate", handler.Escalate)
	complaints.POST("/:id/resolve", handler.Resolve)
}

func SetupLocalizationRoutes(api *echo.Group, handler *rest.LocalizationHandler) {
	localization := api.Group("/localization")

	localization.GET("/languages", handler.GetLanguages)
	localization.GET("/cities", handler.GetCities)
	localization.GET("/cities/:city/areas", handler.GetCityAreas)
	localization.GET("/regions/:city", handler.GetRegionInfo)
	localization.GET("/local-recommendations", handler.GetLocalRecommendations)
}
