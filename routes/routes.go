package routes

import (
	"net/http"
	"time"

	"ainfakroun/handlers"
	"ainfakroun/middleware"
	"ainfakroun/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/logout", hb.Auth.LogoutHandler)

		api.GET("/me", middleware.JWTAuth(), hb.Auth.MeHandler)
	}
}

// registerContentRoutes wires the shared read/write shape every content
// collection follows: public reads, editor-gated writes.
type contentHandlers interface {
	ListHandler(c *gin.Context)
	GetHandler(c *gin.Context)
	CreateHandler(c *gin.Context)
	UpdateHandler(c *gin.Context)
	DeleteHandler(c *gin.Context)
}

func registerContentRoutes(r *gin.Engine, path string, h contentHandlers) {
	api := r.Group(path)
	{
		api.GET("", h.ListHandler)
		api.GET("/:id", h.GetHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(), middleware.RequireRole(models.RoleEditor))
		protected.POST("", h.CreateHandler)
		protected.PUT("/:id", h.UpdateHandler)
		protected.DELETE("/:id", h.DeleteHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for user administration.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuth(), middleware.RequireRole(models.RoleAdmin))
		adminGroup.GET("/users", hb.Admin.ListUsersHandler)
		adminGroup.PUT("/users/:id", hb.Admin.UpdateUserHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Ain Fakroun portal API"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	registerContentRoutes(r, "/api/businesses", hb.Business)
	registerContentRoutes(r, "/api/events", hb.Event)
	registerContentRoutes(r, "/api/mosques", hb.Mosque)
	registerContentRoutes(r, "/api/medical", hb.Medical)
	registerContentRoutes(r, "/api/emergency", hb.Emergency)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
