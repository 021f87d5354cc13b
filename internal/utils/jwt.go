package utils

import (
	"os"
	"time"

	"sifted_back_end/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}
	return []byte(secret)
}

// GenerateAdminJWT issues the token the dashboard sends back as its session
// marker. Only admins get tokens; there are no customer accounts.
func GenerateAdminJWT(admin models.Admin) (string, error) {
	claims := jwt.MapClaims{
		"username": admin.Username,
		"name":     admin.Name,
		"role":     "admin",
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}
