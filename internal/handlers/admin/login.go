package admin

import (
	"errors"
	"log"
	"net/http"

	"sifted_back_end/internal/repository"
	"sifted_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	admins repository.AdminRepository
	orders repository.OrderRepository
}

func NewHandler(admins repository.AdminRepository, orders repository.OrderRepository) *Handler {
	return &Handler{admins: admins, orders: orders}
}

// Login verifies the admin credentials and issues the JWT the dashboard uses
// for every protected call. Wrong username and wrong password answer
// identically.
//
// POST /api/admin/login {username, password} → {admin, token}
func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Data tidak valid"})
		return
	}

	admin, err := h.admins.GetByUsername(c.Request.Context(), input.Username)
	if errors.Is(err, repository.ErrAdminNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Username atau password salah"})
		return
	}
	if err != nil {
		log.Printf("❌ Admin lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login gagal. Coba lagi."})
		return
	}

	ok, err := utils.VerifyPassword(input.Password, admin.PasswordHash)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Username atau password salah"})
		return
	}

	token, err := utils.GenerateAdminJWT(admin)
	if err != nil {
		log.Printf("❌ JWT generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login gagal. Coba lagi."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"admin":   gin.H{"username": admin.Username, "name": admin.Name},
		"token":   token,
	})
}
