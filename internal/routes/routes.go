package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soocci/soocci-backend/internal/handlers"
	"github.com/soocci/soocci-backend/internal/middleware"
)

// CORSMiddleware allows the site frontend to talk to this API, including the
// Authorization header the admin console sends with every request.
func CORSMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		// Preflight OPTIONS gets an empty 204
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers, corsOrigin string) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware(corsOrigin))

	v1 := router.Group("/v1")
	{
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Public Catalog Routes ---
		v1.GET("/categories", h.GetCategories)
		v1.GET("/categories/:slug/products", h.GetCategoryProducts)
		v1.GET("/products/:slug", h.GetProductDetail)

		// --- Email Relay Routes ---
		v1.POST("/contact", h.Contact)
		v1.POST("/newsletter", h.Newsletter)
	}

	// --- Admin Console Routes ---
	admin := router.Group("/admin")
	admin.POST("/login", h.Login)

	guarded := admin.Group("/")
	guarded.Use(middleware.AuthMiddleware())
	{
		guarded.GET("/me", h.Me)

		guarded.GET("/dashboard/stats", h.GetDashboardStats)

		guarded.GET("/categories", h.GetAdminCategories)
		guarded.POST("/categories", h.CreateCategory)
		guarded.PUT("/categories/:id", h.UpdateCategory)
		guarded.DELETE("/categories/:id", h.DeleteCategory)

		guarded.GET("/products", h.GetAdminProducts)
		guarded.POST("/products", h.CreateProduct)
		guarded.PUT("/products/:id", h.UpdateProduct)
		guarded.DELETE("/products/:id", h.DeleteProduct)
	}

	return router
}
