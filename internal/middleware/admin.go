package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"altoque/internal/domain"
	"altoque/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	AdminSubjectKey     = "adminSubject" // Key for storing the token subject in fiber.Ctx locals

	adminRole = "admin"
)

var errUnexpectedSigningMethod = errors.New("unexpected signing method")

// AdminClaims are the claims of an operator token.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminOnly protects operator routes with an HS256 token signed with secret.
// With an empty secret every request is rejected.
func AdminOnly(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return domain.NewUnauthorizedError("Admin access is disabled")
		}

		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return domain.NewUnauthorizedError("Authorization header is missing")
		}
		if !strings.HasPrefix(authHeader, BearerSchema) {
			return domain.NewUnauthorizedError("Authorization scheme is not Bearer")
		}
		tokenString := strings.TrimPrefix(authHeader, BearerSchema)
		if tokenString == "" {
			return domain.NewUnauthorizedError("Token is empty")
		}

		claims := &AdminClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("%w: %v", errUnexpectedSigningMethod, token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			logger.Get().Warn("Admin token rejected", zap.String("path", c.Path()), zap.Error(err))
			return domain.NewUnauthorizedError("Invalid token")
		}
		if claims.Role != adminRole {
			return domain.NewUnauthorizedError("Token is not an admin token")
		}

		c.Locals(AdminSubjectKey, claims.Subject)
		return c.Next()
	}
}

// SignAdminToken issues an admin token for subject valid for ttl.
func SignAdminToken(secret, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AdminClaims{
		Role: adminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
