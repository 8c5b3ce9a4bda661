package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "pickl/internal/log"
	"pickl/internal/nav"
	"pickl/internal/services"
	"pickl/internal/validate"
)

type CartHandler struct {
	Nav  *nav.Controller
	Cart *services.CartService
}

// Add puts the product in the bag. A second add of the same product is
// a no-op, so mashing the button is harmless.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Redirect("/")
	}
	if err := h.Cart.Add(sid, id); err != nil {
		applog.Error(c, "cart.add.fail", err, map[string]any{"product": id})
		return c.Redirect("/")
	}
	applog.Audit(c, "cart.add", map[string]any{"product": id})
	return c.Redirect(backTo(c))
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Redirect("/")
	}
	if err := h.Cart.Remove(sid, id); err != nil {
		applog.Error(c, "cart.remove.fail", err, map[string]any{"product": id})
	}
	return c.Redirect("/")
}

// Checkout simulates a purchase: the bag is emptied, the session goes
// back to the feed, and the feed shows a one-shot confirmation banner.
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if err := h.Cart.Checkout(sid); err != nil {
		applog.Error(c, "checkout.fail", err, nil)
		return err
	}
	applog.Audit(c, "checkout", nil)
	h.Nav.Back(sid)
	return c.Redirect("/?checked_out=1")
}
