package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Customer accounts were turned off when the shop went admin-only. The
// routes stay registered so old clients get a clear answer instead of a 404.

func RegisterDisabled(c *gin.Context) {
	gone(c, "User registration is disabled. This app only supports admin login.")
}

func LoginDisabled(c *gin.Context) {
	gone(c, "User login is disabled. Please use admin login at /admin/login.")
}

func VerifyMFADisabled(c *gin.Context) {
	gone(c, "User MFA is disabled. Please use admin login at /admin/login.")
}

func gone(c *gin.Context, message string) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusGone, gin.H{"success": false, "message": message})
}
