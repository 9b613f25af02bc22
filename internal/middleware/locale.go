package middleware

import (
	"altoque/internal/i18n"

	"github.com/gofiber/fiber/v2"
)

// LocaleKey stores the negotiated locale in fiber.Ctx locals.
const LocaleKey = "locale"

// Locale negotiates the response language from ?lang= or Accept-Language.
func Locale() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocaleKey, i18n.Detect(c.Query("lang"), c.Get(fiber.HeaderAcceptLanguage)))
		return c.Next()
	}
}

// LocaleFrom returns the negotiated locale, or the default when Locale did not run.
func LocaleFrom(c *fiber.Ctx) string {
	if locale, ok := c.Locals(LocaleKey).(string); ok && locale != "" {
		return locale
	}
	return i18n.DefaultLocale
}
