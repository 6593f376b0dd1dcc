// Package domain contains application services orchestrating domain logic by session.
package domain

import (
	"context"

	"github.com/lazygod321/rustplusplus/internal/entities"
)

// ApplySession stores a session snapshot pushed by the connection layer.
func (u *Usecase) ApplySession(_ context.Context, snap entities.SessionSnapshot) error {
	if err := u.sessions.Apply(snap); err != nil {
		u.log.Errorw("failed to apply session", "server_id", snap.ServerID, "error", err)
		return err
	}
	return nil
}

// RemoveSession drops a disconnected session.
func (u *Usecase) RemoveSession(_ context.Context, serverID string, playerID entities.MemberID) error {
	return u.sessions.Remove(serverID, playerID)
}

// Team returns the team observed on a server.
func (u *Usecase) Team(_ context.Context, serverID string) (*entities.ServerTeam, error) {
	team, title, err := u.sessions.Team(serverID)
	if err != nil {
		return nil, err
	}
	return &entities.ServerTeam{ServerID: serverID, Title: title, Team: team}, nil
}
