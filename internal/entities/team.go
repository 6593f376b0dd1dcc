// Package entities contains core business entities.
package entities

// Team is the roster grouped with the controlled player.
type Team struct {
	Members  []Member
	LeaderID MemberID
}

// Member returns the member with the given id.
func (t Team) Member(id MemberID) (Member, bool) {
	for _, m := range t.Members {
		if m.ID == id {
			return m, true
		}
	}
	return Member{}, false
}

// Validate checks that a non-empty leader references a team member.
func (t Team) Validate() error {
	if t.LeaderID == "" {
		return nil
	}
	if _, ok := t.Member(t.LeaderID); !ok {
		return ErrMemberNotInTeam
	}
	return nil
}

// ServerTeam is the team observed on one server binding.
type ServerTeam struct {
	ServerID string
	Title    string
	Team     Team
}
