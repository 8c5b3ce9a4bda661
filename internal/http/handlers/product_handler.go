package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "pickl/internal/log"
	"pickl/internal/nav"
	"pickl/internal/services"
	"pickl/internal/validate"
)

type ProductHandler struct {
	Nav     *nav.Controller
	Catalog *services.CatalogService
}

// Open selects a product and switches to the detail view. The product
// is resolved here, before the transition, so the detail screen can
// never be entered without one.
func (h *ProductHandler) Open(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Redirect("/")
	}
	p, err := h.Catalog.Get(id)
	if err != nil || p.ID == "" {
		applog.Info(c, "product.open.miss", map[string]any{"product": id})
		return c.Redirect("/")
	}
	if err := h.Nav.OpenDetail(sid, p.ID); err != nil {
		return err
	}
	return c.Redirect("/")
}

// Like toggles the heart on a product. Unknown ids are a quiet no-op.
func (h *ProductHandler) Like(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Redirect("/")
	}
	found, err := h.Catalog.ToggleLiked(id)
	if err != nil {
		applog.Error(c, "product.like.fail", err, map[string]any{"product": id})
		return err
	}
	if !found {
		applog.Info(c, "product.like.miss", map[string]any{"product": id})
	}
	// Stay on whatever screen the like came from.
	return c.Redirect(backTo(c))
}

// backTo redirects to the referring page so likes keep feed search and
// filter state; anything off-site falls back to the root.
func backTo(c *fiber.Ctx) string {
	if ref := c.Get("Referer"); ref != "" && len(ref) < 512 {
		return ref
	}
	return "/"
}
