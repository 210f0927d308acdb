package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/TsikyLalaina/miharina-hub-development/internal/api"
	"github.com/TsikyLalaina/miharina-hub-development/internal/entities"
)

func (h *Handler) writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "Internal server error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, entities.ErrUserNotFound):
		status = http.StatusNotFound
		msg = "User not found"
	case errors.Is(err, entities.ErrProfileNotFound):
		status = http.StatusNotFound
		msg = "Business profile not found"
	case errors.Is(err, entities.ErrOpportunityNotFound):
		status = http.StatusNotFound
		msg = "Opportunity not found"
	case errors.Is(err, entities.ErrMatchNotFound):
		status = http.StatusNotFound
		msg = "Match not found"
	case errors.Is(err, entities.ErrMatchExists):
		status = http.StatusConflict
		msg = "Match already exists"
	case errors.Is(err, entities.ErrMatchDecided):
		status = http.StatusConflict
		msg = "Match already decided"
	default:
		// Driver and infrastructure errors stay in the logs.
		h.log.Errorw("request failed", "error", err)
	}

	return c.Status(status).JSON(api.ErrorResponse{Error: msg})
}

// callerUID reads the external uid the auth middleware stored in locals.
func callerUID(c *fiber.Ctx) (string, bool) {
	uid, ok := c.Locals("external_uid").(string)
	return uid, ok && uid != ""
}
