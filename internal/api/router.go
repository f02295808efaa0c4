package api

import (
	"shop_admin/internal/config"     // Application configuration
	"shop_admin/internal/middleware" // JWT middleware
	"shop_admin/internal/storage"    // File storage collaborator

	"github.com/gin-contrib/cors" // CORS middleware
	"github.com/gin-gonic/gin"    // Gin web framework
	"gorm.io/gorm"                // GORM ORM library
)

// NewRouter builds the gin engine with all route groups mounted under /api/v1
func NewRouter(db *gorm.DB, cfg *config.Config, store storage.Store) *gin.Engine {
	r := gin.Default()       // Gin router with logger and recovery middleware
	r.Use(cors.Default())    // Allow cross-origin requests
	auth := middleware.JWTAuthMiddleware(cfg.JWTSecret) // Bearer-token guard for protected routes

	v1 := r.Group("/api/v1") // Versioned path prefix

	// Admin routes (registration, login, user listing)
	admin := v1.Group("/admin")
	admin.POST("/register", RegisterHandler(db))      // Registration endpoint
	admin.POST("/login", LoginHandler(db, cfg))       // Login endpoint
	admin.GET("/users", auth, ListUsersHandler(db))   // List users endpoint (protected)
	admin.GET("/users/:id", auth, GetUserHandler(db)) // User detail endpoint (protected)

	// Review routes (unauthenticated read access to form submissions)
	review := v1.Group("/review")
	review.GET("", ListFormsHandler(db))    // List submissions endpoint
	review.GET("/:id", GetFormHandler(db))  // Submission detail endpoint

	// Form routes (unauthenticated create and edit)
	form := v1.Group("/form")
	form.POST("", CreateFormHandler(db))   // Create submission endpoint
	form.POST("/:id", EditFormHandler(db)) // Edit submission endpoint

	// Category routes (protected)
	category := v1.Group("/category", auth)
	category.POST("", CreateCategoryHandler(db))    // Create category endpoint
	category.PUT("/:id", UpdateCategoryHandler(db)) // Update category endpoint

	// Product routes (reads public, writes protected)
	product := v1.Group("/product")
	product.GET("", ListProductsHandler(db))                      // List products endpoint
	product.GET("/:id", GetProductHandler(db))                    // Product detail endpoint
	product.POST("", auth, CreateProductHandler(db))              // Create product endpoint
	product.PUT("/:id", auth, UpdateProductHandler(db))           // Update product endpoint
	product.POST("/:id/images", auth, AddProductImageHandler(db)) // Attach image endpoint

	// Image upload endpoint backed by the storage collaborator
	v1.POST("/upload", UploadHandler(store))

	return r
}
