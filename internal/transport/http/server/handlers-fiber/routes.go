package handlers_fiber

import "github.com/gofiber/fiber/v2"

// Register mounts the matching routes behind the given middlewares. Literal
// paths go first so the :id route cannot shadow them.
func (h *Handler) Register(app *fiber.App, mw ...fiber.Handler) {
	group := app.Group("/matches", mw...)

	group.Get("/find", h.FindMatches)
	group.Get("/stats", h.GetMatchStats)
	group.Get("/", h.GetMatches)
	group.Post("/", h.CreateMatch)
	group.Put("/:id/status", h.UpdateMatchStatus)
}
