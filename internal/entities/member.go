// Package entities contains core business entities.
package entities

import "time"

// MemberID identifies a player across sessions.
type MemberID string

// Member is one team participant.
type Member struct {
	ID   MemberID
	Name string
}

// PairedMember is an entry of the per-server paired-members index.
type PairedMember struct {
	ServerID string
	MemberID MemberID
	Name     string
	PairedAt time.Time
}

// PairedSet indexes paired member ids for membership checks.
type PairedSet map[MemberID]struct{}

// NewPairedSet builds a set from paired entries.
func NewPairedSet(list []PairedMember) PairedSet {
	set := make(PairedSet, len(list))
	for _, pm := range list {
		set[pm.MemberID] = struct{}{}
	}
	return set
}

// Has reports whether id is paired.
func (s PairedSet) Has(id MemberID) bool {
	_, ok := s[id]
	return ok
}
