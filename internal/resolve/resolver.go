// Package resolve turns player intents (move, attack) into validated
// deltas. It composes the turn gate, the board validators, and the
// combat math into single entry points, and returns the delta the
// caller should apply to its store.
//
// Validation and commit are two separate steps and only the commit is
// authoritative: a preview computed against one snapshot may be stale
// by the time the player commits, so the store must call the resolver
// again with a fresh snapshot immediately before applying the change.
package resolve

import (
	"github.com/sirupsen/logrus"

	"github.com/10thony/campaignion-engine/internal/board"
	"github.com/10thony/campaignion-engine/internal/combat"
	"github.com/10thony/campaignion-engine/internal/dice"
	"github.com/10thony/campaignion-engine/internal/encounter"
	"github.com/10thony/campaignion-engine/internal/entity"
	"github.com/10thony/campaignion-engine/internal/grid"
	"github.com/10thony/campaignion-engine/internal/rules"
)

// Resolver holds the per-table configuration shared by every intent.
type Resolver struct {
	layout grid.Layout
	rules  *rules.Registry
	log    *logrus.Logger
}

// New builds a resolver for one table. A nil logger falls back to the
// standard logrus logger; a nil registry disables formula gates.
func New(layout grid.Layout, reg *rules.Registry, log *logrus.Logger) *Resolver {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Resolver{layout: layout, rules: reg, log: log}
}

// PositionChange is the delta a successful move produces.
type PositionChange struct {
	TokenID string        `json:"token_id"`
	From    grid.Position `json:"from"`
	To      grid.Position `json:"to"`
	Cost    float64       `json:"cost"`
}

// MoveOutcome couples the validation result with the delta to apply.
// Change is nil whenever Result.OK is false.
type MoveOutcome struct {
	Result board.Result    `json:"result"`
	Change *PositionChange `json:"change,omitempty"`
}

// Move gates the intent on the turn order, validates it against the
// snapshot, and returns the position delta on success. The gate runs
// before the validator so "not your turn" wins over any geometric
// rejection.
func (r *Resolver) Move(p entity.Participant, to grid.Position, snap board.Snapshot, turns encounter.State) MoveOutcome {
	if !turns.CanAct(p.ID()) {
		r.log.WithFields(logrus.Fields{"token": p.ID(), "intent": "move"}).Debug("rejected: not your turn")
		return MoveOutcome{Result: board.Result{
			Code:   board.CodeNotYourTurn,
			Reason: "It is not this participant's turn",
		}}
	}

	res := board.ValidateMovement(p.Position(), to, snap, p, float64(p.SpeedFeet()), r.layout)
	if !res.OK {
		r.log.WithFields(logrus.Fields{
			"token":  p.ID(),
			"intent": "move",
			"code":   res.Code,
		}).Debug("rejected")
		return MoveOutcome{Result: res}
	}

	r.log.WithFields(logrus.Fields{
		"token": p.ID(),
		"to":    to.Key(),
		"cost":  res.Cost,
	}).Info("move validated")
	return MoveOutcome{
		Result: res,
		Change: &PositionChange{TokenID: p.ID(), From: p.Position(), To: to, Cost: res.Cost},
	}
}

// HPChange is the delta a successful hit produces. After never drops
// below zero.
type HPChange struct {
	TokenID string `json:"token_id"`
	Before  int    `json:"before"`
	After   int    `json:"after"`
	Delta   int    `json:"delta"`
}

// AttackOutcome is the full record of one attack resolution: the
// validation result, the attack roll against the target's armor class,
// and the damage delta when the attack lands. Change is nil on any
// rejection or miss.
type AttackOutcome struct {
	Result      board.Result        `json:"result"`
	Hit         bool                `json:"hit"`
	AttackRoll  dice.D20Roll        `json:"attack_roll"`
	AttackBonus int                 `json:"attack_bonus"`
	AttackTotal int                 `json:"attack_total"`
	TargetAC    int                 `json:"target_ac"`
	Damage      combat.DamageResult `json:"damage"`
	Change      *HPChange           `json:"change,omitempty"`
}

// Attack resolves one attack intent end to end: turn gate, action
// usability (spell slots, formula gates), range and line-of-sight
// validation, then the attack roll against the target's armor class
// and damage on a hit. A natural 20 always hits and a natural 1 always
// misses, regardless of the totals.
func (r *Resolver) Attack(actor, target entity.Participant, action entity.ActionDefinition, snap board.Snapshot, turns encounter.State, advantage, disadvantage bool) AttackOutcome {
	if !turns.CanAct(actor.ID()) {
		return AttackOutcome{Result: board.Result{
			Code:   board.CodeNotYourTurn,
			Reason: "It is not this participant's turn",
		}}
	}

	if !combat.CanUseAction(actor, action, r.rules) {
		r.log.WithFields(logrus.Fields{"token": actor.ID(), "action": action.Name}).Debug("rejected: action unavailable")
		return AttackOutcome{Result: board.Result{
			Code:   board.CodeResourceExhausted,
			Reason: "The action is not available (slots or requirements exhausted)",
		}}
	}

	feet, ok := combat.ActionRangeFeet(action)
	if !ok {
		// Unrecognized range text never crashes the turn.
		return AttackOutcome{Result: board.Result{
			Code:   board.CodeRangeExceeded,
			Reason: "The action's range could not be determined",
		}}
	}

	res := board.ValidateAttack(actor.Position(), target.Position(), snap, actor, feet, r.layout)
	if !res.OK {
		return AttackOutcome{Result: res}
	}

	roll := dice.D20(advantage, disadvantage)
	bonus := combat.AttackBonus(actor, action)
	outcome := AttackOutcome{
		Result:      res,
		AttackRoll:  roll,
		AttackBonus: bonus,
		AttackTotal: roll.Roll + bonus,
		TargetAC:    target.ArmorClass(),
	}
	switch {
	case roll.Roll == 1:
		outcome.Hit = false
	case roll.Roll == 20:
		outcome.Hit = true
	default:
		outcome.Hit = outcome.AttackTotal >= outcome.TargetAC
	}

	fields := logrus.Fields{
		"token":  actor.ID(),
		"target": target.ID(),
		"action": action.Name,
		"total":  outcome.AttackTotal,
		"ac":     outcome.TargetAC,
		"hit":    outcome.Hit,
	}
	if !outcome.Hit {
		r.log.WithFields(fields).Info("attack missed")
		return outcome
	}

	outcome.Damage = combat.ResolveDamage(action)
	before, _ := target.HitPoints()
	after := before - outcome.Damage.Total
	if after < 0 {
		after = 0
	}
	outcome.Change = &HPChange{
		TokenID: target.ID(),
		Before:  before,
		After:   after,
		Delta:   after - before,
	}
	fields["damage"] = outcome.Damage.Total
	r.log.WithFields(fields).Info("attack hit")
	return outcome
}
