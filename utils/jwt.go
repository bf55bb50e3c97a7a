package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bkiskm0705-stack/nutrition-app/config"
)

// GenerateJWT issues a participant session token. Identity is just the
// athlete's name; there is no password for participants.
func GenerateJWT(name string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"name": name,
		"exp":  time.Now().Add(time.Hour * 72).Unix(),
	})
	return token.SignedString([]byte(config.C.Auth.JWTSecret))
}

// GenerateAdminJWT issues an admin session token after the shared-password
// gate. Shorter lived than participant tokens.
func GenerateAdminJWT() (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(time.Hour * 12).Unix(),
	})
	return token.SignedString([]byte(config.C.Auth.JWTSecret))
}
