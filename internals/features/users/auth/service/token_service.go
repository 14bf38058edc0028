// file: internals/features/users/auth/service/token_service.go
package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"sekolahku_backend/internals/configs"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// buildClaims menyusun klaim yang dibaca AuthMiddleware: user_id, role,
// school_id, user_name, child_ids.
func buildClaims(u *userModel.UserModel, ttl time.Duration) jwt.MapClaims {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   u.UserID.String(),
		"role":      u.UserRole,
		"user_name": u.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
	if u.UserSchoolID != nil {
		claims["school_id"] = u.UserSchoolID.String()
	}
	if len(u.UserChildIDs) > 0 {
		claims["child_ids"] = []string(u.UserChildIDs)
	}
	return claims
}

func signToken(claims jwt.MapClaims, secret string) (string, error) {
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// IssueTokenPair menerbitkan access + refresh token untuk satu user.
func IssueTokenPair(u *userModel.UserModel) (access string, refresh string, err error) {
	access, err = signToken(buildClaims(u, accessTokenTTL), configs.JWTSecret)
	if err != nil {
		return "", "", err
	}
	refresh, err = signToken(buildClaims(u, refreshTokenTTL), configs.JWTRefreshSecret)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// ParseRefreshToken memvalidasi refresh token dan mengembalikan user_id.
func ParseRefreshToken(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak valid")
	}
	uid, ok := claims["user_id"].(string)
	if !ok || uid == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak valid")
	}
	return uid, nil
}
