package routes

import (
	"farmconnect/controllers"
	"farmconnect/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	authCtrl := controllers.NewAuthController()
	profileCtrl := controllers.NewProfileController()
	productCtrl := controllers.NewProductController()
	postCtrl := controllers.NewPostController()
	eventCtrl := controllers.NewEventController()
	storyCtrl := controllers.NewStoryController()
	cartCtrl := controllers.NewCartController()
	orderCtrl := controllers.NewOrderController()
	aiCtrl := controllers.NewAIController()
	uploadCtrl := controllers.NewUploadController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	router.GET("/api/products", productCtrl.GetAllProducts)
	router.GET("/api/products/:id", productCtrl.GetProductByID)
	router.GET("/api/posts", postCtrl.GetPosts)
	router.POST("/api/posts/:postId/like", postCtrl.LikePost)
	router.GET("/api/events", eventCtrl.GetEvents)
	router.GET("/api/stories", storyCtrl.GetStories)

	auth := router.Group("/api")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/consumer/profile", profileCtrl.GetConsumerProfile)
		auth.PUT("/consumer/profile", profileCtrl.UpdateConsumerProfile)
		auth.GET("/farmer/profile", profileCtrl.GetFarmerProfile)
		auth.PUT("/farmer/profile", profileCtrl.UpdateFarmerProfile)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart", cartCtrl.AddToCart)
		auth.DELETE("/cart", cartCtrl.RemoveFromCart)
		auth.POST("/cart/health-check", cartCtrl.HealthCheck)

		auth.POST("/orders/checkout", orderCtrl.Checkout)
		auth.GET("/orders", orderCtrl.GetOrders)
		auth.GET("/orders/:id", orderCtrl.GetOrderByID)

		auth.POST("/ai/dietary-recommendation", aiCtrl.DietaryRecommendation)
		auth.POST("/upload", uploadCtrl.UploadImage)
	}

	farmer := router.Group("/api")
	farmer.Use(middleware.AuthMiddleware(), middleware.FarmerMiddleware())
	{
		farmer.GET("/farmer/products", productCtrl.GetMyProducts)
		farmer.POST("/products", productCtrl.CreateProduct)
		farmer.PUT("/products/:id", productCtrl.UpdateProduct)
		farmer.DELETE("/products/:id", productCtrl.DeleteProduct)

		farmer.POST("/posts", postCtrl.CreatePost)
		farmer.DELETE("/posts/:postId", postCtrl.DeletePost)
		farmer.POST("/events", eventCtrl.CreateEvent)
		farmer.DELETE("/events/:id", eventCtrl.DeleteEvent)
		farmer.POST("/stories", storyCtrl.CreateStory)

		farmer.POST("/ai/product-description", aiCtrl.ProductDescription)
		farmer.POST("/ai/crop-demand-summary", aiCtrl.CropDemandSummary)
		farmer.POST("/ai/assistant", aiCtrl.Assistant)
	}

	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
	}

	router.Static("/uploads", "./uploads")
}
