package routes

import (
	"foodie-backend/config"
	"foodie-backend/controllers"
	"foodie-backend/middlewares"
	"foodie-backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	fda := services.NewOpenFDAService()
	recallSvc := services.NewRecallService(config.DB, fda, hub)
	recipeSvc := services.NewRecipeService(config.DB)
	commentSvc := services.NewCommentService(config.DB)
	nhanesSvc := services.NewNhanesService(config.DB)

	recipeCtl := controllers.NewRecipeController(recipeSvc)
	commentCtl := controllers.NewCommentController(commentSvc)
	recallCtl := controllers.NewRecallController(recallSvc)
	alertCtl := controllers.NewRecallAlertController(recipeSvc, fda)
	nhanesCtl := controllers.NewNhanesController(nhanesSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.GET("/me", middlewares.AuthMiddleware(), controllers.Me)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	recipes := r.Group("/recipes")
	{
		recipes.GET("", recipeCtl.List)
		recipes.GET("/:id", recipeCtl.Get)

		protected := recipes.Group("")
		protected.Use(middlewares.AuthMiddleware())
		{
			protected.POST("", recipeCtl.Create)
			protected.PUT("/:id", recipeCtl.Update)
			protected.DELETE("/:id", recipeCtl.Delete)
			protected.POST("/:id/like", recipeCtl.Like)
		}
	}

	comments := r.Group("/comments")
	{
		comments.GET("/recipe/:recipeId", commentCtl.ListByRecipe)

		protected := comments.Group("")
		protected.Use(middlewares.AuthMiddleware())
		{
			protected.POST("", commentCtl.Add)
			protected.DELETE("/:id", commentCtl.Delete)
			protected.POST("/:id/like", commentCtl.Like)
		}
	}

	r.GET("/recalls", recallCtl.List)
	r.GET("/recall-alerts/recipe/:recipeId", alertCtl.RecipeAlerts)
	r.GET("/recall-alerts/recipes", alertCtl.AllRecipesWithAlerts)

	calculator := r.Group("/nutrition-calculator")
	{
		calculator.POST("/calories", controllers.CalculateDailyCalories)
		calculator.POST("/recipe", controllers.CalculateRecipeNutrition)
	}

	r.GET("/nhanes/benchmarks", nhanesCtl.Benchmarks)
	r.POST("/dev/nhanes/seed", middlewares.AuthMiddleware(), nhanesCtl.Seed)

	r.POST("/upload/recipe-image", middlewares.AuthMiddleware(), controllers.UploadRecipeImage)

	r.GET("/ws/recalls", realtimeCtl.RecallsWS)

	return r
}
