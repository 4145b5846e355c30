package middleware

import (
	"errors"
	"fmt"
	"lms/config"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Token verification failure classes
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token signature invalid")
	ErrTokenMalformed = errors.New("token malformed")
)

// GenerateJWT generates a signed session token for the user
func GenerateJWT(userID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"role":   role,
		"iat":    time.Now().Unix(),                     // issued at
		"exp":    time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// VerifyJWT parses and validates a session token. Expired tokens are reported
// as ErrTokenExpired so callers can distinguish them from bad signatures.
func VerifyJWT(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, ErrTokenInvalid
		}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid || claims["userId"] == nil || claims["role"] == nil {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// ExtractToken returns the raw session token from the cookie, falling back to
// a Bearer Authorization header for non-browser clients.
func ExtractToken(c *fiber.Ctx) string {
	if token := ReadSessionCookie(c); token != "" {
		return token
	}

	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[len("Bearer "):]
	}

	return ""
}

// JWTMiddleware checks for a valid session token and stores the caller's
// identity and role in the request context
func JWTMiddleware(c *fiber.Ctx) error {
	tokenString := ExtractToken(c)
	if tokenString == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
	}

	claims, err := VerifyJWT(tokenString)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Session expired, please login again!", nil)
		}
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token!", nil)
	}

	// JWT numeric claims decode as float64
	userID := claims["userId"].(float64)
	role, _ := claims["role"].(string)

	c.Locals("userId", uint(userID))
	c.Locals("role", role)

	return c.Next()
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errors)
}
