package rules

// Reason classifies why an action was rejected. Every rejection carries
// a specific reason; there is no generic failure value.
type Reason string

const (
	ReasonGameAlreadyOver    Reason = "GameAlreadyOver"
	ReasonNotCurrentPlayer   Reason = "NotCurrentPlayer"
	ReasonUnknownOrDeadUnit  Reason = "UnknownOrDeadUnit"
	ReasonOutOfRange         Reason = "OutOfRange"
	ReasonPathBlocked        Reason = "PathBlocked"
	ReasonInvalidTarget      Reason = "InvalidTarget"
	ReasonSkillNotReady      Reason = "SkillNotReady"
	ReasonMalformedAction    Reason = "MalformedAction"
	ReasonDeathChoicePending Reason = "DeathChoicePending"
)

// Result is the validator's verdict on a proposed action.
type Result struct {
	Accepted bool   `json:"accepted"`
	Reason   Reason `json:"reason,omitempty"`
}

// Accepted is the verdict for a legal action.
func Accepted() Result {
	return Result{Accepted: true}
}

// Rejected is the verdict for an illegal action with its reason.
func Rejected(r Reason) Result {
	return Result{Reason: r}
}
