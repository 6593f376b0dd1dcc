// Package entities contains core business entities.
package entities

const (
	// FlagLeaderCommandEnabled toggles the leader command for a session.
	FlagLeaderCommandEnabled = "leader_command_enabled"
	// FlagLeaderOnlyForPaired restricts leadership to paired members.
	FlagLeaderOnlyForPaired = "leader_command_only_for_paired"
)

// SessionSnapshot is the full state of one session as pushed by the connection layer.
type SessionSnapshot struct {
	ServerID           string
	Title              string
	ControlledPlayerID MemberID
	Operational        bool
	Flags              map[string]bool
	Team               Team
}
