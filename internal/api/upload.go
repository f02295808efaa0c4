package api

import (
	"io"                          // Reading the uploaded file
	"net/http"                    // HTTP status codes
	"shop_admin/internal/storage" // File storage collaborator

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// UploadHandler accepts a multipart image upload, hands the bytes to the
// storage collaborator, and returns the resulting public URL
func UploadHandler(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("image") // Multipart field named "image"
		if err != nil {
			// If no file was uploaded, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}
		f, err := fileHeader.Open() // Open the uploaded file
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
			return
		}
		defer f.Close()
		data, err := io.ReadAll(f) // Read the full buffer
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
			return
		}
		// Hand the buffer to the store and get a public URL back
		url, err := store.Save(c.Request.Context(), fileHeader.Filename, data)
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"filename": fileHeader.Filename, // Client-supplied filename
				"error":    err.Error(),         // Error message
			}).Error("Failed to store upload") // Log storage failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url}) // Return the public URL
	}
}
