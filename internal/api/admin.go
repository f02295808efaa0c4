package api

import (
	"errors"                     // Sentinel errors for conflict reporting
	"net/http"                   // HTTP status codes
	"shop_admin/internal/config" // Application configuration
	"shop_admin/internal/domain" // Importing domain models
	"shop_admin/internal/utils"  // Utility functions
	"time"                       // Timestamps

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
	Email    string `json:"email" binding:"required"`    // Email must be provided
}

// Request struct for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Response struct for login
type LoginResponse struct {
	Token   string `json:"token"`   // JWT token
	Message string `json:"message"` // Success message
}

// Sentinel errors used to pick the conflict message after the transaction
var (
	errUsernameTaken = errors.New("username already exists")
	errEmailTaken    = errors.New("email already exists")
)

// RegisterHandler creates a new administrative user
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username, password, and email are required"})
			return
		}
		// Hash the password before touching the database
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user := domain.User{
			Username:     req.Username, // Requested username
			PasswordHash: string(hash), // Bcrypt hash
			Email:        req.Email,    // Requested email
		}
		// Uniqueness checks and the insert run in one transaction so a
		// concurrent register cannot slip between check and create.
		err = db.Transaction(func(tx *gorm.DB) error {
			var count int64
			// Check username uniqueness
			if err := tx.Model(&domain.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return errUsernameTaken
			}
			// Check email uniqueness
			if err := tx.Model(&domain.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return errEmailTaken
			}
			return tx.Create(&user).Error // Insert the new user
		})
		// Map the transaction outcome to a status code
		switch {
		case errors.Is(err, errUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
			return
		case errors.Is(err, errEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		case err != nil:
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"username": req.Username, // Requested username
				"error":    err.Error(),  // Error message
			}).Error("Registration failed") // Log registration failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// Return success response without sensitive data
		c.JSON(http.StatusCreated, gin.H{"message": "Registration successful"})
	}
}

// LoginHandler authenticates a user, updates the last-login timestamp and
// returns a JWT token
func LoginHandler(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
			return
		}
		var user domain.User // Fetch user from database
		// The unknown-user and wrong-password branches report the same
		// message so usernames cannot be enumerated.
		if err := db.Where("username = ?", req.Username).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(user.ID, user.Username, cfg.JWTSecret, cfg.JWTExpiresIn)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Record the successful login
		now := time.Now()
		if err := db.Model(&user).Update("last_login", &now).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,     // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to update last login") // Log update failure, login still succeeds
		}
		// Return the token in the response
		c.JSON(http.StatusOK, LoginResponse{Token: token, Message: "Login successful"})
	}
}

// ListUsersHandler returns all users without their password hashes
func ListUsersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []domain.User // Slice to hold users
		if err := db.Find(&users).Error; err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// PasswordHash carries json:"-" so the hash never leaves the server
		c.JSON(http.StatusOK, users)
	}
}

// GetUserHandler returns a single user by id without the password hash
func GetUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user domain.User // User struct to hold data
		if err := db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// If user not found, return not found
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, user) // Return user info
	}
}
