// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"sekolahku_backend/internals/configs"
)

// AuthMiddleware: parse bearer JWT (HS256), validasi exp, lalu simpan
// klaim (user_id, role, school_id, child_ids) ke Locals untuk handler.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		storeClaimsToLocals(c, claims)

		if c.Locals("user_id") == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	header := strings.TrimSpace(c.Get("Authorization"))
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && strings.TrimSpace(parts[1]) != "" {
			return strings.TrimSpace(parts[1]), nil
		}
		return "", errors.New("format Authorization header tidak valid")
	}
	// fallback cookie (web client)
	if cookie := c.Cookies("access_token"); cookie != "" {
		return cookie, nil
	}
	return "", errors.New("Authorization header tidak ditemukan")
}

// validateTokenExpiry: exp wajib ada; leeway kecil untuk clock skew.
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("exp claim tidak ada")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("exp claim tidak valid")
	}
	expAt := time.Unix(int64(expFloat), 0)
	if time.Now().After(expAt.Add(leeway)) {
		return errors.New("token kadaluarsa")
	}
	return nil
}

func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if v, ok := claims["user_id"].(string); ok && v != "" {
		c.Locals("user_id", v)
	}
	if v, ok := claims["role"].(string); ok && v != "" {
		c.Locals("userRole", v)
	}
	if v, ok := claims["school_id"].(string); ok && v != "" {
		c.Locals("school_id", v)
	}
	if v, ok := claims["user_name"].(string); ok && v != "" {
		c.Locals("user_name", v)
	}
	// child_ids: klaim parent → anak yang tertaut
	if raw, ok := claims["child_ids"].([]interface{}); ok {
		ids := make([]string, 0, len(raw))
		for _, item := range raw {
			if s, ok := item.(string); ok && s != "" {
				ids = append(ids, s)
			}
		}
		c.Locals("child_ids", ids)
	}
}
