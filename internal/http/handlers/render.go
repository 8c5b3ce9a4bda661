package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Pick up the token the CSRF middleware put into Locals. Always
	// set, so hidden form fields render even when the middleware is off.
	tok, _ := c.Locals("CSRFToken").(string)
	data["CSRFToken"] = tok
	return c.Render(tmpl, data)
}

// ensureSID gives every visitor an anonymous session cookie. The sid
// keys the navigation state, the upload flow, and the bag.
func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return sid
}
