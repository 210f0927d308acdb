package handlers_fiber

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/TsikyLalaina/miharina-hub-development/internal/api"
	"github.com/TsikyLalaina/miharina-hub-development/internal/entities"
	"github.com/TsikyLalaina/miharina-hub-development/internal/mapper"
)

const defaultFindLimit = 10

// FindMatches handles GET /matches/find.
func (h *Handler) FindMatches(c *fiber.Ctx) error {
	uid, ok := callerUID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(api.ErrorResponse{Error: "Unauthorized"})
	}

	kind := entities.CandidateKind(c.Query("type", string(entities.KindBusinesses)))

	limit := defaultFindLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return h.writeError(c, fmt.Errorf("%w: limit must be an integer", entities.ErrInvalidArgument))
		}
		limit = n
	}

	// Absent sectors means "use the caller's own"; present-but-empty is an
	// explicit empty filter.
	var sectors []string
	if c.Context().QueryArgs().Has("sectors") {
		sectors = splitCSV(c.Query("sectors"))
	}

	candidates, err := h.uc.FindCandidates(c.UserContext(), uid, kind, sectors, limit)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(api.FindMatchesResponse{
		Success: true,
		Matches: mapper.ToAPICandidateList(candidates),
	})
}

// CreateMatch handles POST /matches.
func (h *Handler) CreateMatch(c *fiber.Ctx) error {
	uid, ok := callerUID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(api.ErrorResponse{Error: "Unauthorized"})
	}

	var req api.CreateMatchRequest
	if err := c.BodyParser(&req); err != nil {
		return h.writeError(c, fmt.Errorf("%w: invalid request body", entities.ErrInvalidArgument))
	}

	match, err := h.uc.CreateMatch(c.UserContext(), uid, req.TargetUserID, req.OpportunityID, req.MatchScore, req.MatchReasons)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(api.CreateMatchResponse{
		Success: true,
		Match:   mapper.ToAPIMatch(*match),
	})
}

// GetMatches handles GET /matches.
func (h *Handler) GetMatches(c *fiber.Ctx) error {
	uid, ok := callerUID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(api.ErrorResponse{Error: "Unauthorized"})
	}

	direction := entities.MatchDirection(c.Query("type"))
	status := c.Query("status")

	matches, err := h.uc.ListMatches(c.UserContext(), uid, direction, status)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(api.ListMatchesResponse{
		Success: true,
		Matches: mapper.ToAPIMatchList(matches),
	})
}

// UpdateMatchStatus handles PUT /matches/:id/status.
func (h *Handler) UpdateMatchStatus(c *fiber.Ctx) error {
	uid, ok := callerUID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(api.ErrorResponse{Error: "Unauthorized"})
	}

	var req api.UpdateMatchStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return h.writeError(c, fmt.Errorf("%w: invalid request body", entities.ErrInvalidArgument))
	}

	match, err := h.uc.UpdateMatchStatus(c.UserContext(), uid, c.Params("id"), req.Status)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(api.UpdateMatchStatusResponse{
		Success: true,
		Match: api.MatchStatusUpdate{
			ID:        match.ID,
			Status:    string(match.Status),
			UpdatedAt: match.UpdatedAt,
		},
	})
}

// GetMatchStats handles GET /matches/stats.
func (h *Handler) GetMatchStats(c *fiber.Ctx) error {
	uid, ok := callerUID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(api.ErrorResponse{Error: "Unauthorized"})
	}

	stats, err := h.uc.MatchStats(c.UserContext(), uid)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(api.StatsResponse{
		Success: true,
		Stats:   mapper.ToAPIStats(stats),
	})
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			res = append(res, s)
		}
	}
	return res
}
