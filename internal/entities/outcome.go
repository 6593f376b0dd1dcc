// Package entities contains core business entities.
package entities

// ReasonCode is a machine-readable leader command failure code.
type ReasonCode string

const (
	ReasonSessionUnavailable   ReasonCode = "SESSION_UNAVAILABLE"
	ReasonFeatureDisabled      ReasonCode = "FEATURE_DISABLED"
	ReasonLeaderNotEligible    ReasonCode = "LEADER_NOT_ELIGIBLE"
	ReasonMemberNotFound       ReasonCode = "MEMBER_NOT_FOUND"
	ReasonAlreadyLeader        ReasonCode = "ALREADY_LEADER"
	ReasonMemberNotPaired      ReasonCode = "MEMBER_NOT_PAIRED"
	ReasonRemoteTransferFailed ReasonCode = "REMOTE_TRANSFER_FAILED"
)

// Stage enumerates the steps of a leader command invocation.
type Stage string

const (
	StageIdle           Stage = "IDLE"
	StageValidating     Stage = "VALIDATING"
	StageResolving      Stage = "RESOLVING"
	StagePostValidating Stage = "POST_VALIDATING"
	StageExecuting      Stage = "EXECUTING"
	StageDone           Stage = "DONE"
)

// TransferPath tells which authority performed a leadership change.
type TransferPath string

const (
	// PathLocal marks a change applied by the session that holds leadership.
	PathLocal TransferPath = "LOCAL"
	// PathRemote marks a change delegated to the leader's session.
	PathRemote TransferPath = "REMOTE"
)

// Outcome is the result of one leader command invocation.
// Exactly one of Member and Reason is set.
type Outcome struct {
	Member *Member
	Path   TransferPath
	Reason ReasonCode
	Detail string
	Stage  Stage
	Err    error
}

// Success builds a successful outcome.
func Success(m Member, path TransferPath) Outcome {
	return Outcome{Member: &m, Path: path, Stage: StageDone}
}

// Failure builds a failed outcome raised at stage.
func Failure(stage Stage, reason ReasonCode, detail string) Outcome {
	return Outcome{Reason: reason, Detail: detail, Stage: stage}
}

// OK reports whether the outcome is a success.
func (o Outcome) OK() bool {
	return o.Reason == "" && o.Member != nil
}
