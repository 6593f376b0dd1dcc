package handlers_fiber

import (
	"net/http"

	"github.com/lazygod321/rustplusplus/internal/mapper"
	api "github.com/lazygod321/rustplusplus/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// PostLeader runs the leader command against the server's operational session.
func (h *Handler) PostLeader(c *fiber.Ctx, serverId string) error {
	var body api.PostLeaderJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	out, err := h.uc.TransferLeadership(c.UserContext(), serverId, body.Member)
	if err != nil {
		return writeError(c, err)
	}

	var title string
	if team, err := h.uc.Team(c.UserContext(), serverId); err == nil {
		title = team.Title
	}

	reply := h.reporter.Render(c.Get(fiber.HeaderAcceptLanguage), out, title)
	return c.Status(outcomeStatus(out)).JSON(mapper.ToOAPILeaderResult(reply))
}
