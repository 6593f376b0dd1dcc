package leader

import (
	"strings"

	"github.com/lazygod321/rustplusplus/internal/entities"
)

// check runs the input-independent guards in order and returns the paired
// index they loaded. It returns false together with the failure when a guard
// rejects the request.
func check(req Request) (entities.PairedSet, entities.Outcome, bool) {
	if req.Session == nil || !req.Session.IsOperational() {
		return nil, entities.Failure(entities.StageValidating, entities.ReasonSessionUnavailable, ""), false
	}

	if !req.Session.FeatureFlag(entities.FlagLeaderCommandEnabled) {
		return nil, entities.Failure(entities.StageValidating, entities.ReasonFeatureDisabled, ""), false
	}

	paired := req.Roster.PairedMemberIDs(req.ServerID)
	if !paired.Has(req.Session.CurrentLeaderID()) {
		return paired, entities.Failure(entities.StageValidating, entities.ReasonLeaderNotEligible, pairedNames(req.Roster.Members(), paired)), false
	}

	return paired, entities.Outcome{}, true
}

// postCheck runs the guards that depend on the resolved member.
func postCheck(req Request, paired entities.PairedSet, m entities.Member) (entities.Outcome, bool) {
	if m.ID == req.Session.CurrentLeaderID() {
		return entities.Failure(entities.StagePostValidating, entities.ReasonAlreadyLeader, m.Name), false
	}

	if req.Session.FeatureFlag(entities.FlagLeaderOnlyForPaired) && !paired.Has(m.ID) {
		return entities.Failure(entities.StagePostValidating, entities.ReasonMemberNotPaired, m.Name), false
	}

	return entities.Outcome{}, true
}

func pairedNames(members []entities.Member, paired entities.PairedSet) string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		if paired.Has(m.ID) {
			names = append(names, m.Name)
		}
	}
	return strings.Join(names, ", ")
}
