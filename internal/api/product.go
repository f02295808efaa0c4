package api

import (
	"errors"                     // Sentinel errors and gorm.ErrRecordNotFound checks
	"net/http"                   // HTTP status codes
	"shop_admin/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for product creation
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`        // Name must be provided
	Description string  `json:"description" binding:"required"` // Description must be provided
	Price       float64 `json:"price" binding:"required,gt=0"`  // Price must be provided and positive
	CategoryID  uint    `json:"categoryId" binding:"required"`  // Category must be provided
	Stock       int     `json:"stock"`                          // Optional, defaults to 0
}

// Request struct for product update. Pointer fields distinguish "absent
// from the request" from "provided as zero".
type UpdateProductRequest struct {
	Name        *string  `json:"name"`        // New name, if provided
	Description *string  `json:"description"` // New description, if provided
	Price       *float64 `json:"price"`       // New price, if provided
	Stock       *int     `json:"stock"`       // New stock count, if provided
	CategoryID  *uint    `json:"categoryId"`  // New category, if provided
}

// Request struct for attaching an image to a product
type AddProductImageRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"` // Image URL must be provided
}

// errCategoryNotFound marks a create attempt against a missing category
var errCategoryNotFound = errors.New("category not found")

// CreateProductHandler creates a product after verifying its category exists.
// The existence check and the insert share one transaction so a dangling
// categoryId never leaves a row behind.
func CreateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name, description, price, and categoryId are required"})
			return
		}
		product := domain.Product{
			Name:        req.Name,        // Product name
			Description: req.Description, // Product description
			Price:       req.Price,       // Product price
			Stock:       req.Stock,       // Units in stock, zero when omitted
			CategoryID:  req.CategoryID,  // Owning category
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			var category domain.Category // Verify the category exists
			if err := tx.First(&category, "id = ?", req.CategoryID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errCategoryNotFound
				}
				return err
			}
			return tx.Create(&product).Error // Insert the new product
		})
		// Map the transaction outcome to a status code
		switch {
		case errors.Is(err, errCategoryNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
			return
		case err != nil:
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"name":        req.Name,       // Product name
				"category_id": req.CategoryID, // Owning category
				"error":       err.Error(),    // Error message
			}).Error("Failed to create product") // Log creation failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// Return success response with the created product
		c.JSON(http.StatusCreated, gin.H{"message": "Product added successfully", "product": product})
	}
}

// UpdateProductHandler applies a partial update to an existing product
func UpdateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateProductRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var product domain.Product // Fetch the existing product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// If product not found, return not found
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// Collect only the fields present in the request
		updates := map[string]any{}
		if req.Name != nil {
			updates["name"] = *req.Name // New name
		}
		if req.Description != nil {
			updates["description"] = *req.Description // New description
		}
		if req.Price != nil {
			updates["price"] = *req.Price // New price
		}
		if req.Stock != nil {
			updates["stock"] = *req.Stock // New stock count
		}
		if req.CategoryID != nil {
			updates["category_id"] = *req.CategoryID // New category
		}
		// Apply the update only when at least one field was supplied
		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				// Log the error with context
				logrus.WithFields(logrus.Fields{
					"product_id": product.ID,  // Product ID
					"error":      err.Error(), // Error message
				}).Error("Failed to update product") // Log update failure
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
		}
		// Return success response with the updated product
		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
	}
}

// ListProductsHandler returns all products with their category and images
func ListProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []domain.Product // Slice to hold products
		// Preload Category and Images so related rows ride along
		if err := db.Preload("Category").Preload("Images").Find(&products).Error; err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// Products without images serialize an empty array, not null
		for i := range products {
			if products[i].Images == nil {
				products[i].Images = []domain.ProductImage{}
			}
		}
		c.JSON(http.StatusOK, products) // Return the product list
	}
}

// GetProductHandler returns a single product with its category and images
func GetProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product domain.Product // Product struct to hold data
		// Preload Category and Images so related rows ride along
		if err := db.Preload("Category").Preload("Images").First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// If product not found, return not found
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// A product without images serializes an empty array, not null
		if product.Images == nil {
			product.Images = []domain.ProductImage{}
		}
		c.JSON(http.StatusOK, product) // Return the product
	}
}

// AddProductImageHandler attaches an image URL to an existing product
func AddProductImageHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddProductImageRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image URL is required"})
			return
		}
		var product domain.Product // Verify the product exists
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// If product not found, return not found
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		image := domain.ProductImage{
			ProductID: product.ID,   // Owning product
			ImageURL:  req.ImageURL, // Image URL
		}
		if err := db.Create(&image).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"product_id": product.ID,  // Product ID
				"error":      err.Error(), // Error message
			}).Error("Failed to add product image") // Log creation failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "Image added successfully", "image": image})
	}
}
