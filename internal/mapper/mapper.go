// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/lazygod321/rustplusplus/internal/entities"
	"github.com/lazygod321/rustplusplus/internal/oapi"
	"github.com/lazygod321/rustplusplus/internal/report"
)

// FromOAPISession builds a session snapshot from transport DTO.
func FromOAPISession(serverID, playerID string, src oapi.PutSessionJSONRequestBody) entities.SessionSnapshot {
	members := make([]entities.Member, 0, len(src.Members))
	for _, m := range src.Members {
		members = append(members, entities.Member{ID: entities.MemberID(m.MemberId), Name: m.Name})
	}

	return entities.SessionSnapshot{
		ServerID:           serverID,
		Title:              src.Title,
		ControlledPlayerID: entities.MemberID(playerID),
		Operational:        src.Operational,
		Flags:              src.Flags,
		Team: entities.Team{
			Members:  members,
			LeaderID: entities.MemberID(src.LeaderId),
		},
	}
}

// ToOAPITeam maps entities.ServerTeam to transport model.
func ToOAPITeam(src entities.ServerTeam) oapi.Team {
	members := make([]oapi.TeamMember, 0, len(src.Team.Members))
	for _, m := range src.Team.Members {
		members = append(members, oapi.TeamMember{
			MemberId: string(m.ID),
			Name:     m.Name,
			IsLeader: m.ID == src.Team.LeaderID,
		})
	}

	return oapi.Team{
		ServerId: src.ServerID,
		Title:    src.Title,
		LeaderId: string(src.Team.LeaderID),
		Members:  members,
	}
}

// ToOAPIPairedMember maps entities.PairedMember to transport model.
func ToOAPIPairedMember(pm entities.PairedMember) oapi.PairedMember {
	res := oapi.PairedMember{MemberId: string(pm.MemberID), Name: pm.Name}
	if !pm.PairedAt.IsZero() {
		at := pm.PairedAt
		res.PairedAt = &at
	}
	return res
}

// ToOAPIPairedMemberList maps a slice of entities.PairedMember to transport slice.
func ToOAPIPairedMemberList(list []entities.PairedMember) []oapi.PairedMember {
	res := make([]oapi.PairedMember, 0, len(list))
	for _, pm := range list {
		res = append(res, ToOAPIPairedMember(pm))
	}
	return res
}

// ToOAPILeaderResult maps a rendered leader reply to transport model.
func ToOAPILeaderResult(src report.Reply) oapi.LeaderResult {
	res := oapi.LeaderResult{
		Ok:      src.OK,
		Code:    string(src.Code),
		Title:   src.Title,
		Message: src.Message,
	}
	if src.Member != nil {
		res.Member = &oapi.TeamMember{MemberId: string(src.Member.ID), Name: src.Member.Name}
	}
	return res
}
