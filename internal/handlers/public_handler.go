package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "Server is running",
	})
}

// Welcome documents the API surface at the root path.
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the naai marketplace API",
		"endpoints": gin.H{
			"POST /api/auth/signup":        "Create a new user account",
			"POST /api/auth/login":         "Login and get JWT token",
			"GET /api/auth/me":             "Get current user info (requires authentication)",
			"GET /api/shops":               "List active shops (?city, ?search)",
			"GET /api/shops/:id":           "Get a single shop",
			"POST /api/shops":              "Create your shop (barber only)",
			"PUT /api/shops/:id":           "Update your shop (owner only)",
			"GET /api/barber/shop":         "Get your own shop (barber only)",
			"POST /api/shops/:id/services": "Add a service to your shop (owner only)",
			"POST /api/shops/:id/photo":    "Upload a shop photo (owner only)",
			"GET /api/health":              "Health check endpoint",
		},
		"example": gin.H{
			"signup": gin.H{
				"method": "POST",
				"url":    "/api/auth/signup",
				"body": gin.H{
					"email":    "user@example.com",
					"password": "password123",
					"name":     "John Doe",
				},
			},
			"login": gin.H{
				"method": "POST",
				"url":    "/api/auth/login",
				"body": gin.H{
					"email":    "user@example.com",
					"password": "password123",
				},
			},
		},
	})
}
