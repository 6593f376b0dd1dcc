// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrSessionNotFound is returned when no session is bound to a server.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionUnavailable signals a session that is not operational.
	ErrSessionUnavailable = errors.New("session unavailable")
	// ErrMemberNotInTeam signals a member id that is not part of the team.
	ErrMemberNotInTeam = errors.New("member not in team")
	// ErrNoDelegate signals that no session holds leadership authority.
	ErrNoDelegate = errors.New("no delegate session")
	// ErrNotPaired signals missing paired-member entry.
	ErrNotPaired = errors.New("member not paired")
	// ErrAlreadyPaired signals duplicate paired-member entry.
	ErrAlreadyPaired = errors.New("member already paired")
)
