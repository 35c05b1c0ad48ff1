package routes

import (
	"net/http"
	"time"

	"amora/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRegistrationRoutes registers the wizard endpoints.
func RegisterRegistrationRoutes(r *gin.Engine) {
	api := r.Group("/api/registration")
	{
		api.POST("/start", handlers.StartRegistrationHandler)
		api.GET("/:sessionID", handlers.GetRegistrationHandler)
		api.PUT("/:sessionID/fields", handlers.UpdateFieldsHandler)
		api.POST("/:sessionID/next", handlers.NextStepHandler)
		api.POST("/:sessionID/prev", handlers.PrevStepHandler)
		api.POST("/:sessionID/jump", handlers.JumpToStepHandler)
		api.POST("/:sessionID/photos", handlers.AttachPhotoHandler)
		api.DELETE("/:sessionID/photos/:index", handlers.RemovePhotoHandler)
		api.POST("/:sessionID/submit", handlers.SubmitRegistrationHandler)
	}
}

// RegisterQuestionRoutes registers the catalog read endpoints.
func RegisterQuestionRoutes(r *gin.Engine) {
	api := r.Group("/api/questions")
	{
		api.GET("", handlers.GetEnabledQuestionsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Amora"})
	})
}

// CORSMiddleware returns the CORS policy for browser clients.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}

// RegisterRoutes wires every route group onto the router.
func RegisterRoutes(r *gin.Engine) {
	RegisterHealthRoute(r)
	RegisterQuestionRoutes(r)
	RegisterRegistrationRoutes(r)
}
