package middleware

import (
	"lms/config"
	"time"

	"github.com/gofiber/fiber/v2"
)

// SessionCookieName is the cookie carrying the session token
const SessionCookieName = "token"

const sessionMaxAge = 24 * 60 * 60 // seconds, matches token expiry

// SetSessionCookie attaches the session token to the response. The cookie is
// HTTP-only and same-site strict; the secure flag is only set in production.
func SetSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		Expires:  time.Now().Add(sessionMaxAge * time.Second),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
		Secure:   config.AppConfig.Env == "production",
	})
}

// ClearSessionCookie overwrites the cookie with an empty, already-expired
// value so clients drop it regardless of its prior expiry.
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
		Secure:   config.AppConfig.Env == "production",
	})
}

// ReadSessionCookie extracts the raw cookie value, or "" if not present
func ReadSessionCookie(c *fiber.Ctx) string {
	return c.Cookies(SessionCookieName)
}
