package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "pickl/internal/log"
	"pickl/internal/nav"
	"pickl/internal/services"
	"pickl/internal/upload"
	"pickl/internal/validate"
)

type UploadHandler struct {
	Nav      *nav.Controller
	Catalog  *services.CatalogService
	Pipeline *upload.Pipeline
}

// Capture snapshots the camera frame (or the placeholder when no
// camera was granted) and advances to recognition.
func (h *UploadHandler) Capture(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if err := h.Pipeline.Capture(sid); err != nil {
		applog.Info(c, "upload.capture.stale", map[string]any{"err": err.Error()})
	}
	return c.Redirect("/")
}

// Confirm accepts the recognition result ("That's Right").
func (h *UploadHandler) Confirm(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if err := h.Pipeline.Confirm(sid); err != nil {
		applog.Info(c, "upload.confirm.stale", map[string]any{"err": err.Error()})
	}
	return c.Redirect("/")
}

// Back steps the flow backwards. Backing out of the capture step exits
// the flow entirely and returns to the feed.
func (h *UploadHandler) Back(c *fiber.Ctx) error {
	sid := ensureSID(c)
	flow, ok := h.Pipeline.State(sid)
	if !ok || flow.Step == upload.StepCapture {
		h.Pipeline.Abandon(sid)
		h.Nav.Back(sid)
		return c.Redirect("/")
	}
	if err := h.Pipeline.Back(c.UserContext(), sid); err != nil {
		applog.Info(c, "upload.back.stale", map[string]any{"err": err.Error()})
	}
	return c.Redirect("/")
}

// List commits the new listing ("List It"). The slider value is
// validated and recorded, but the listing always carries the suggested
// price.
func (h *UploadHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)

	slider := validate.Price(c.FormValue("price"), upload.PriceFloor, upload.PriceCeil)
	h.Pipeline.SetSlider(sid, slider)

	p, err := h.Pipeline.Complete(sid)
	if err != nil {
		applog.Info(c, "upload.list.stale", map[string]any{"err": err.Error()})
		return c.Redirect("/")
	}
	if err := h.Catalog.AddListing(p); err != nil {
		applog.Error(c, "upload.list.fail", err, map[string]any{"product": p.ID})
		return err
	}
	applog.Audit(c, "upload.list", map[string]any{"product": p.ID, "slider": slider})
	h.Nav.Back(sid)
	return c.Redirect("/")
}
