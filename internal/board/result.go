package board

import "github.com/10thony/campaignion-engine/internal/grid"

// Code identifies why an intent was rejected. Every code is a
// rejection, not a crash: domain-legal-but-disallowed inputs always
// produce a Result, never an error.
type Code string

const (
	CodeOutOfBounds         Code = "OutOfBounds"
	CodeConditionRestricted Code = "ConditionRestricted"
	CodeDestinationOccupied Code = "DestinationOccupied"
	CodeDestinationBlocked  Code = "DestinationBlocked"
	CodeNoTarget            Code = "NoTarget"
	CodeSelfTargetInvalid   Code = "SelfTargetInvalid"
	CodeNoLineOfSight       Code = "NoLineOfSight"
	CodeRangeExceeded       Code = "RangeExceeded"
	// CodeResourceExhausted and CodeNotYourTurn are produced by the
	// resolve layer, which shares this taxonomy.
	CodeResourceExhausted Code = "ResourceExhausted"
	CodeNotYourTurn       Code = "NotYourTurn"
)

// Result is the synchronous outcome of a validation call. It is never
// partially filled in a way that contradicts OK: a rejection always
// carries a Code and a display-ready Reason, and RangeExceeded still
// reports the computed cost so the caller can show "costs N, you have
// M".
type Result struct {
	OK     bool   `json:"is_valid"`
	Code   Code   `json:"code,omitempty"`
	Reason string `json:"reason,omitempty"`
	// Cost is the terrain-weighted movement cost in feet.
	Cost float64 `json:"cost,omitempty"`
	// Range is the plain grid distance in feet (attack checks).
	Range       float64         `json:"range,omitempty"`
	Path        []grid.Position `json:"path,omitempty"`
	LineOfSight bool            `json:"has_line_of_sight,omitempty"`
}

func reject(code Code, reason string) Result {
	return Result{Code: code, Reason: reason}
}
