package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "pickl/internal/log"
	"pickl/internal/nav"
	"pickl/internal/upload"
)

type NavHandler struct {
	Nav      *nav.Controller
	Pipeline *upload.Pipeline
}

// Start leaves onboarding for the feed ("Start Thrifting" / skip).
func (h *NavHandler) Start(c *fiber.Ctx) error {
	sid := ensureSID(c)
	h.Nav.Start(sid)
	return c.Redirect("/")
}

var navTargets = map[string]nav.View{
	"feed":    nav.Feed,
	"upload":  nav.Upload,
	"profile": nav.Profile,
	"cart":    nav.Cart,
}

// Go handles the bottom-nav and FAB transitions between hub screens.
// Moving onto the upload screen begins a capture flow; moving off it by
// any route releases whatever the flow acquired.
func (h *NavHandler) Go(c *fiber.Ctx) error {
	sid := ensureSID(c)
	target, ok := navTargets[c.Params("view")]
	if !ok {
		applog.Security(c, "nav.bad_target", map[string]any{"view": c.Params("view")})
		return c.Redirect("/")
	}

	from, _ := h.Nav.Current(sid)
	if err := h.Nav.Go(sid, target); err != nil {
		// Not a legal move from this screen (e.g. still onboarding).
		return c.Redirect("/")
	}
	if from == nav.Upload && target != nav.Upload {
		h.Pipeline.Abandon(sid)
	}
	if target == nav.Upload && from != nav.Upload {
		h.Pipeline.Begin(c.UserContext(), sid)
	}
	return c.Redirect("/")
}

// Back returns to the feed from any spoke screen.
func (h *NavHandler) Back(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if from, _ := h.Nav.Current(sid); from == nav.Upload {
		h.Pipeline.Abandon(sid)
	}
	h.Nav.Back(sid)
	return c.Redirect("/")
}
