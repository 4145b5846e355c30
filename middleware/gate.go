package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Paths reachable without a session token. Auth endpoints must stay open or
// nobody could ever log in.
var publicPaths = map[string]bool{
	"/":                  true,
	"/auth":              true,
	"/unauthorized":      true,
	"/api/auth/login":    true,
	"/api/auth/register": true,
	"/api/auth/logout":   true,
}

// isPublic reports whether the request needs no token at all. Course, quiz
// and note reads are public; everything else under /api is protected.
func isPublic(method, path string) bool {
	if publicPaths[path] {
		return true
	}

	// static assets served from ./public
	if !strings.HasPrefix(path, "/api/") && strings.Contains(path, ".") {
		return true
	}

	if method == fiber.MethodGet {
		for _, prefix := range []string{"/api/courses", "/api/quizzes", "/api/notes"} {
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				return true
			}
		}
	}

	return false
}

// isAdminPath reports whether the path requires the admin role
func isAdminPath(path string) bool {
	return strings.HasPrefix(path, "/api/admin/") || path == "/api/admin" ||
		strings.HasPrefix(path, "/admin/") || path == "/admin" ||
		path == "/api/auth/admin"
}

// AccessGate is the coarse, path-shape based authentication and authorization
// check run on every request. It is not a substitute for the per-handler role
// checks: handlers re-verify role against the specific resource they mutate.
func AccessGate(c *fiber.Ctx) error {
	path := c.Path()
	method := c.Method()
	isAPI := strings.HasPrefix(path, "/api/")
	token := ExtractToken(c)

	if isPublic(method, path) {
		// A logged-in user has no business on the login page
		if path == "/auth" && token != "" {
			if _, err := VerifyJWT(token); err == nil {
				return c.Redirect("/", fiber.StatusFound)
			}
		}
		return c.Next()
	}

	if token == "" {
		return denyUnauthenticated(c, isAPI, "Authentication required!")
	}

	claims, err := VerifyJWT(token)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return denyUnauthenticated(c, isAPI, "Session expired, please login again!")
		}
		return denyUnauthenticated(c, isAPI, "Invalid token!")
	}

	role, _ := claims["role"].(string)
	if isAdminPath(path) && role != "ADMIN" {
		if isAPI {
			return JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
		}
		return c.Redirect("/unauthorized", fiber.StatusFound)
	}

	return c.Next()
}

func denyUnauthenticated(c *fiber.Ctx, isAPI bool, message string) error {
	if isAPI {
		return JsonResponse(c, fiber.StatusUnauthorized, false, message, nil)
	}
	return c.Redirect("/auth", fiber.StatusFound)
}
