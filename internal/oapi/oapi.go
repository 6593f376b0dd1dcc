// Package oapi holds the HTTP API models and route registration.
package oapi

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponseErrorCode is a machine-readable API error code.
type ErrorResponseErrorCode string

const (
	INVALIDARGUMENT ErrorResponseErrorCode = "INVALID_ARGUMENT"
	NOTFOUND        ErrorResponseErrorCode = "NOT_FOUND"
	ALREADYPAIRED   ErrorResponseErrorCode = "ALREADY_PAIRED"
	NOTPAIRED       ErrorResponseErrorCode = "NOT_PAIRED"
	INTERNAL        ErrorResponseErrorCode = "INTERNAL"
)

// ErrorResponse is the body of every non-leader error reply.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// TeamMember is a roster entry.
type TeamMember struct {
	MemberId string `json:"member_id"`
	Name     string `json:"name"`
	IsLeader bool   `json:"is_leader"`
}

// Team is the team observed on a server.
type Team struct {
	ServerId string       `json:"server_id"`
	Title    string       `json:"title,omitempty"`
	LeaderId string       `json:"leader_id,omitempty"`
	Members  []TeamMember `json:"members"`
}

// PairedMember is an entry of the paired index.
type PairedMember struct {
	MemberId string     `json:"member_id"`
	Name     string     `json:"name"`
	PairedAt *time.Time `json:"paired_at,omitempty"`
}

// PutPairedMemberJSONRequestBody pairs a member with a server.
type PutPairedMemberJSONRequestBody struct {
	Name string `json:"name"`
}

// PutSessionJSONRequestBody is a full session snapshot.
type PutSessionJSONRequestBody struct {
	Title       string          `json:"title"`
	Operational bool            `json:"operational"`
	Flags       map[string]bool `json:"flags"`
	LeaderId    string          `json:"leader_id"`
	Members     []TeamMember    `json:"members"`
}

// PostLeaderJSONRequestBody names the member to promote.
type PostLeaderJSONRequestBody struct {
	Member string `json:"member"`
}

// LeaderResult is the reply of the leader command.
type LeaderResult struct {
	Ok      bool        `json:"ok"`
	Code    string      `json:"code,omitempty"`
	Title   string      `json:"title,omitempty"`
	Message string      `json:"message"`
	Member  *TeamMember `json:"member,omitempty"`
}

// ServerInterface is implemented by the HTTP handlers.
type ServerInterface interface {
	PostLeader(c *fiber.Ctx, serverId string) error
	GetTeam(c *fiber.Ctx, serverId string) error
	PutSession(c *fiber.Ctx, serverId, playerId string) error
	DeleteSession(c *fiber.Ctx, serverId, playerId string) error
	GetPairedMembers(c *fiber.Ctx, serverId string) error
	PutPairedMember(c *fiber.Ctx, serverId, memberId string) error
	DeletePairedMember(c *fiber.Ctx, serverId, memberId string) error
}

// RegisterHandlers mounts the API routes on router.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	v1 := router.Group("/v1/servers/:serverId")

	v1.Post("/leader", func(c *fiber.Ctx) error {
		return si.PostLeader(c, param(c, "serverId"))
	})
	v1.Get("/team", func(c *fiber.Ctx) error {
		return si.GetTeam(c, param(c, "serverId"))
	})
	v1.Put("/sessions/:playerId", func(c *fiber.Ctx) error {
		return si.PutSession(c, param(c, "serverId"), param(c, "playerId"))
	})
	v1.Delete("/sessions/:playerId", func(c *fiber.Ctx) error {
		return si.DeleteSession(c, param(c, "serverId"), param(c, "playerId"))
	})
	v1.Get("/paired", func(c *fiber.Ctx) error {
		return si.GetPairedMembers(c, param(c, "serverId"))
	})
	v1.Put("/paired/:memberId", func(c *fiber.Ctx) error {
		return si.PutPairedMember(c, param(c, "serverId"), param(c, "memberId"))
	})
	v1.Delete("/paired/:memberId", func(c *fiber.Ctx) error {
		return si.DeletePairedMember(c, param(c, "serverId"), param(c, "memberId"))
	})
}

// param copies a route parameter out of the request buffer.
func param(c *fiber.Ctx, name string) string {
	return strings.Clone(c.Params(name))
}
