// Package v1 defines the transport-neutral request/reply contracts of the
// Starfall game service. Every numeric money field travels as an exact
// decimal string, never binary floating point.
package v1

import "starfall/internal/game/starfall"

// Error reason codes carried in the kratos error payload.
const (
	ReasonInvalidArgument = "INVALID_ARGUMENT"
	ReasonSpinInProgress  = "SPIN_IN_PROGRESS"
	ReasonConfigBroken    = "CONFIG_BROKEN"
	ReasonInvariantBroken = "INVARIANT_BROKEN"
	ReasonInternal        = "INTERNAL"
)

// SpinRequest is the bet request of one spin.
type SpinRequest struct {
	MemberID int64  `json:"member_id"`
	Bet      string `json:"bet"`            // decimal string, e.g. "1.30"
	Profile  string `json:"profile"`        // "real" | "demo"
	Seed     string `json:"seed,omitempty"` // optional; server generates one when empty
}

// SpinReply carries the fully resolved outcome plus the post-spin session.
type SpinReply struct {
	OrderSN string                     `json:"order_sn"`
	Outcome *starfall.SpinOutcome      `json:"outcome"`
	Session *starfall.FreeSpinsSession `json:"session,omitempty"`
}

// ReplayRequest re-resolves a historical spin from its full input set so an
// external verifier can compare outcomes bit for bit.
type ReplayRequest struct {
	Bet     string                     `json:"bet"`
	Seed    string                     `json:"seed"`
	Mode    string                     `json:"mode"`    // "base" | "free_spins"
	Profile string                     `json:"profile"` // "real" | "demo"
	Session *starfall.FreeSpinsSession `json:"session,omitempty"`
}

// ReplayReply is the deterministic re-resolution of a ReplayRequest.
type ReplayReply struct {
	Outcome *starfall.SpinOutcome      `json:"outcome"`
	Session *starfall.FreeSpinsSession `json:"session,omitempty"`
}

// ProfileInfo is the public (non-sensitive) description of one math profile.
type ProfileInfo struct {
	Profile           string `json:"profile"`
	GameID            int64  `json:"game_id"`
	Rows              int64  `json:"rows"`
	Cols              int64  `json:"cols"`
	FreeSpinsAward    int64  `json:"free_spins_award"`
	RetriggerAward    int64  `json:"retrigger_award"`
	TriggerScatterMin int64  `json:"trigger_scatter_min"`
}

// ProfilesReply lists the profiles this server exposes.
type ProfilesReply struct {
	Profiles []ProfileInfo `json:"profiles"`
}
