package handlers_fiber

import (
	"net/http"

	"github.com/lazygod321/rustplusplus/internal/entities"
	"github.com/lazygod321/rustplusplus/internal/mapper"
	api "github.com/lazygod321/rustplusplus/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// PutSession stores a session snapshot pushed by the connection layer.
func (h *Handler) PutSession(c *fiber.Ctx, serverId, playerId string) error {
	var body api.PutSessionJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	if err := h.uc.ApplySession(c.UserContext(), mapper.FromOAPISession(serverId, playerId, body)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// DeleteSession drops a disconnected session.
func (h *Handler) DeleteSession(c *fiber.Ctx, serverId, playerId string) error {
	if err := h.uc.RemoveSession(c.UserContext(), serverId, entities.MemberID(playerId)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// GetTeam returns the team observed on a server.
func (h *Handler) GetTeam(c *fiber.Ctx, serverId string) error {
	team, err := h.uc.Team(c.UserContext(), serverId)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPITeam(*team))
}
