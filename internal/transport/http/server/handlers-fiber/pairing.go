package handlers_fiber

import (
	"net/http"

	"github.com/lazygod321/rustplusplus/internal/entities"
	"github.com/lazygod321/rustplusplus/internal/mapper"
	api "github.com/lazygod321/rustplusplus/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetPairedMembers lists the paired index of a server.
func (h *Handler) GetPairedMembers(c *fiber.Ctx, serverId string) error {
	list, err := h.uc.PairedMembers(c.UserContext(), serverId)
	if err != nil {
		h.log.Errorw("failed to list paired members", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		ServerID string             `json:"server_id"`
		Members  []api.PairedMember `json:"members"`
	}{
		ServerID: serverId,
		Members:  mapper.ToOAPIPairedMemberList(list),
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// PutPairedMember pairs a member with a server.
func (h *Handler) PutPairedMember(c *fiber.Ctx, serverId, memberId string) error {
	var body api.PutPairedMemberJSONRequestBody
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			h.log.Errorw("failed to parse body", "error", err.Error())
			return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
		}
	}

	pm, err := h.uc.PairMember(c.UserContext(), entities.PairedMember{
		ServerID: serverId,
		MemberID: entities.MemberID(memberId),
		Name:     body.Name,
	})
	if err != nil {
		h.log.Errorw("failed to pair member", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToOAPIPairedMember(*pm))
}

// DeletePairedMember removes a member from the paired index of a server.
func (h *Handler) DeletePairedMember(c *fiber.Ctx, serverId, memberId string) error {
	if err := h.uc.UnpairMember(c.UserContext(), serverId, entities.MemberID(memberId)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
