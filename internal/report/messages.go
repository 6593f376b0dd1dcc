package report

import (
	"github.com/lazygod321/rustplusplus/internal/entities"

	"golang.org/x/text/language"
)

const (
	keyTransferred    = "leader.transferred"
	keyUnavailable    = "leader.session_unavailable"
	keyDisabled       = "leader.disabled"
	keyNotEligible    = "leader.not_eligible"
	keyNobodyPaired   = "leader.not_eligible.nobody"
	keyNotFound       = "leader.member_not_found"
	keyAlreadyLeader  = "leader.already_leader"
	keyNotPaired      = "leader.member_not_paired"
	keyTransferFailed = "leader.transfer_failed"
)

var reasonKeys = map[entities.ReasonCode]string{
	entities.ReasonSessionUnavailable:   keyUnavailable,
	entities.ReasonFeatureDisabled:      keyDisabled,
	entities.ReasonLeaderNotEligible:    keyNotEligible,
	entities.ReasonMemberNotFound:       keyNotFound,
	entities.ReasonAlreadyLeader:        keyAlreadyLeader,
	entities.ReasonMemberNotPaired:      keyNotPaired,
	entities.ReasonRemoteTransferFailed: keyTransferFailed,
}

var messages = map[language.Tag]map[string]string{
	language.English: {
		keyTransferred:    "Team leadership transferred to %s.",
		keyUnavailable:    "Not currently connected to a rust server.",
		keyDisabled:       "The leader command is disabled in the settings.",
		keyNotEligible:    "The leader command only works when the current team leader is paired with the server. Paired members: %s.",
		keyNobodyPaired:   "The leader command only works when the current team leader is paired with the server, and no team member is paired.",
		keyNotFound:       "Could not identify team member: %s.",
		keyAlreadyLeader:  "%s is already team leader.",
		keyNotPaired:      "%s is not paired with the server.",
		keyTransferFailed: "Could not transfer team leadership to %s.",
	},
	language.Swedish: {
		keyTransferred:    "Lagledarskapet överfördes till %s.",
		keyUnavailable:    "Inte ansluten till någon rust-server just nu.",
		keyDisabled:       "Ledarkommandot är avaktiverat i inställningarna.",
		keyNotEligible:    "Ledarkommandot fungerar bara när nuvarande lagledare är parkopplad med servern. Parkopplade medlemmar: %s.",
		keyNobodyPaired:   "Ledarkommandot fungerar bara när nuvarande lagledare är parkopplad med servern, och ingen lagmedlem är parkopplad.",
		keyNotFound:       "Kunde inte identifiera lagmedlem: %s.",
		keyAlreadyLeader:  "%s är redan lagledare.",
		keyNotPaired:      "%s är inte parkopplad med servern.",
		keyTransferFailed: "Kunde inte överföra lagledarskapet till %s.",
	},
}
