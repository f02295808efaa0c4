package api

import (
	"errors"                     // For gorm.ErrRecordNotFound checks
	"net/http"                   // HTTP status codes
	"shop_admin/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for category creation
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"` // Name must be provided
	Description string `json:"description"`             // Optional description
}

// Request struct for category update. Pointer fields distinguish "absent
// from the request" from "provided as empty", so an empty string is a real
// update rather than a no-op.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`        // New name, if provided
	Description *string `json:"description"` // New description, if provided
}

// CreateCategoryHandler creates a new product category
func CreateCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCategoryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}
		category := domain.Category{
			Name:        req.Name,        // Category name
			Description: req.Description, // Optional description
		}
		if err := db.Create(&category).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"name":  req.Name,    // Category name
				"error": err.Error(), // Error message
			}).Error("Failed to create category") // Log creation failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// Return success response with the created category
		c.JSON(http.StatusCreated, gin.H{"message": "Category added successfully", "category": category})
	}
}

// UpdateCategoryHandler applies a partial update to an existing category
func UpdateCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateCategoryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var category domain.Category // Fetch the existing category
		if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// If category not found, return not found
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
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
		// Apply the update only when at least one field was supplied
		if len(updates) > 0 {
			if err := db.Model(&category).Updates(updates).Error; err != nil {
				// Log the error with context
				logrus.WithFields(logrus.Fields{
					"category_id": category.ID, // Category ID
					"error":       err.Error(), // Error message
				}).Error("Failed to update category") // Log update failure
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
		}
		// Return success response with the updated category
		c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully", "category": category})
	}
}
