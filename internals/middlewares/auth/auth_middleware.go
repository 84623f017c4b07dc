package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"gerejaku_backend/internals/configs"
	authModel "gerejaku_backend/internals/features/users/auth/model"
)

// AuthMiddleware validates the bearer token: signature, expiry (the 24h
// session window lives in the exp claim) and the logout blacklist, then
// stores the claims in locals for role checks downstream.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// logout = blacklist; one DB hit per request
		var existing authModel.TokenBlacklist
		if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		storeClaimsToLocals(c, claims)
		c.Locals("token_string", tokenString)
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if h == "" {
		return "", errors.New("Unauthorized - missing Authorization header")
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("Unauthorized - malformed Authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}

// validateTokenExpiry tolerates a small clock skew.
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	exp := time.Unix(int64(expFloat), 0)
	if time.Now().After(exp.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if v, ok := claims["sub"].(string); ok {
		c.Locals("user_id", v)
	}
	if v, ok := claims["email"].(string); ok {
		c.Locals("userEmail", v)
	}
	if v, ok := claims["role"].(string); ok {
		c.Locals("userRole", v)
	}
}
