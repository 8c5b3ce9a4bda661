package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "pickl/internal/log"
	"pickl/internal/nav"
	"pickl/internal/services"
	"pickl/internal/upload"
	"pickl/internal/validate"
)

// Feed chrome shared with the templates.
var (
	feedCategories = []string{"All", "Sneakers", "Outerwear", "Rare Finds", "Accessories"}
	trendingTags   = []string{"Dunks", "Vintage Nike", "Stussy", "Supreme", "Bape"}
)

type AppHandler struct {
	Nav      *nav.Controller
	Catalog  *services.CatalogService
	Cart     *services.CartService
	Pipeline *upload.Pipeline
}

// Home renders whichever screen the session is on. The switch covers
// every View variant; falling out the bottom is a programming error and
// surfaces through the app-level error handler.
func (h *AppHandler) Home(c *fiber.Ctx) error {
	sid := ensureSID(c)
	view, selected := h.Nav.Current(sid)

	switch view {
	case nav.Onboarding:
		return render(c, "onboarding", nil)
	case nav.Feed:
		return h.feed(c, sid)
	case nav.ProductDetail:
		return h.detail(c, sid, selected)
	case nav.Upload:
		return h.upload(c, sid)
	case nav.Profile:
		return h.profile(c, sid)
	case nav.Cart:
		return h.cart(c, sid)
	}
	return fiber.NewError(fiber.StatusInternalServerError, "unknown view "+view.String())
}

func (h *AppHandler) feed(c *fiber.Ctx, sid string) error {
	query := ""
	if raw := c.Query("q"); raw != "" {
		if q, ok := validate.Q(raw); ok {
			query = q
		} else {
			applog.Security(c, "validation.fail", map[string]any{"field": "q"})
		}
	}
	category := validate.Category(c.Query("cat"))

	products, err := h.Catalog.Feed(query, category)
	if err != nil {
		return err
	}
	count, err := h.Cart.Count(sid)
	if err != nil {
		return err
	}
	return render(c, "feed", fiber.Map{
		"Products":   products,
		"Query":      query,
		"Category":   category,
		"Categories": feedCategories,
		"Trending":   trendingTags,
		"CartCount":  count,
		"View":       "feed",
		"CheckedOut": c.Query("checked_out") == "1",
	})
}

func (h *AppHandler) detail(c *fiber.Ctx, sid, selected string) error {
	// OpenDetail guarantees a non-empty id and products are never
	// deleted, so the lookup is re-read from the store every render;
	// the detail copy can never diverge from the catalog.
	p, err := h.Catalog.Get(selected)
	if err != nil {
		applog.Error(c, "detail.load", err, map[string]any{"product": selected})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	return render(c, "product", fiber.Map{"P": p})
}

func (h *AppHandler) upload(c *fiber.Ctx, sid string) error {
	flow, ok := h.Pipeline.State(sid)
	if !ok {
		// Navigating here always begins a flow; a missing one means
		// the session restarted mid-flow. Start over.
		flow = *h.Pipeline.Begin(c.UserContext(), sid)
	}
	return render(c, "upload", fiber.Map{
		"Step":       int(flow.Step),
		"CameraOK":   flow.CameraOK,
		"Image":      string(flow.Image),
		"Title":      flow.Recognition.Title,
		"Tags":       flow.Recognition.Tags,
		"Slider":     flow.Slider,
		"Suggested":  upload.SuggestedPrice,
		"PriceFloor": upload.PriceFloor,
		"PriceCeil":  upload.PriceCeil,
	})
}

func (h *AppHandler) profile(c *fiber.Ctx, sid string) error {
	liked, err := h.Catalog.Liked()
	if err != nil {
		return err
	}
	count, err := h.Cart.Count(sid)
	if err != nil {
		return err
	}
	return render(c, "profile", fiber.Map{
		"Liked":     liked,
		"Closet":    closetItems,
		"Tab":       c.Query("tab", "closet"),
		"CartCount": count,
		"View":      "profile",
	})
}

func (h *AppHandler) cart(c *fiber.Ctx, sid string) error {
	cv, err := h.Cart.View(sid)
	if err != nil {
		return err
	}
	return render(c, "cart", fiber.Map{
		"Items":     cv.Items,
		"Total":     cv.Total,
		"CartCount": len(cv.Items),
		"View":      "cart",
	})
}
