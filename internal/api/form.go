package api

import (
	"errors"                     // For gorm.ErrRecordNotFound checks
	"net/http"                   // HTTP status codes
	"shop_admin/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/datatypes"          // JSON column support for GORM
	"gorm.io/gorm"               // GORM ORM library
)

// CreateFormHandler persists an arbitrary key-value submission as a new form row
func CreateFormHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var fields map[string]any // Arbitrary submitted key-value pairs
		if err := c.ShouldBindJSON(&fields); err != nil {
			// If the body is not a JSON object, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must be a JSON object"})
			return
		}
		form := domain.Form{Fields: datatypes.JSONMap(fields)} // Wrap fields in the JSON column type
		if err := db.Create(&form).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"error": err.Error(), // Error message
			}).Error("Failed to create form") // Log creation failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": form.ID}) // Return the new form id
	}
}

// ListFormsHandler returns all stored form submissions
func ListFormsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var forms []domain.Form // Slice to hold forms
		if err := db.Find(&forms).Error; err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, forms) // Return all submissions
	}
}

// GetFormHandler returns a single form submission by id
func GetFormHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form domain.Form // Form struct to hold data
		if err := db.First(&form, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// If form not found, return not found
				c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, form) // Return the submission
	}
}

// EditFormHandler merges submitted keys into an existing form row.
// Keys present in the request overwrite stored values; absent keys keep
// their previous values.
func EditFormHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var fields map[string]any // Keys to merge into the stored submission
		if err := c.ShouldBindJSON(&fields); err != nil {
			// If the body is not a JSON object, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must be a JSON object"})
			return
		}
		var form domain.Form // Fetch the existing row
		if err := db.First(&form, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// If form not found, return not found
				c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// Merge the incoming keys over the stored map
		if form.Fields == nil {
			form.Fields = datatypes.JSONMap{}
		}
		for k, v := range fields {
			form.Fields[k] = v // Overwrite or add the key
		}
		if err := db.Model(&form).Update("fields", form.Fields).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"form_id": form.ID,     // Form ID
				"error":   err.Error(), // Error message
			}).Error("Failed to update form") // Log update failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Form updated successfully"}) // Return success response
	}
}
