// Package journal records resolved combat deltas as an append-only
// JSONL log, one event per line. The log is a session artifact for
// review and replay; it is not the authoritative store.
package journal

import (
	"github.com/10thony/campaignion-engine/internal/encounter"
	"github.com/10thony/campaignion-engine/internal/grid"
)

// EventType discriminates journal entries on disk.
type EventType string

const (
	EventInitiativeRolled EventType = "initiative_rolled"
	EventCombatStarted    EventType = "combat_started"
	EventTurnChanged      EventType = "turn_changed"
	EventMoveCommitted    EventType = "move_committed"
	EventAttackResolved   EventType = "attack_resolved"
	EventCombatEnded      EventType = "combat_ended"
)

// Event is anything the journal can persist.
type Event interface {
	Type() EventType
}

// InitiativeRolledEvent captures a full (re)roll of the order.
type InitiativeRolledEvent struct {
	Order []encounter.Entry `json:"order"`
	Round int               `json:"round"`
}

func (e *InitiativeRolledEvent) Type() EventType { return EventInitiativeRolled }

// CombatStartedEvent marks the transition into active combat.
type CombatStartedEvent struct {
	Active string `json:"active"`
	Round  int    `json:"round"`
}

func (e *CombatStartedEvent) Type() EventType { return EventCombatStarted }

// TurnChangedEvent records an advance or retreat of the turn.
type TurnChangedEvent struct {
	Active string `json:"active"`
	Round  int    `json:"round"`
}

func (e *TurnChangedEvent) Type() EventType { return EventTurnChanged }

// MoveCommittedEvent records a validated position change.
type MoveCommittedEvent struct {
	TokenID string        `json:"token_id"`
	From    grid.Position `json:"from"`
	To      grid.Position `json:"to"`
	Cost    float64       `json:"cost"`
}

func (e *MoveCommittedEvent) Type() EventType { return EventMoveCommitted }

// AttackResolvedEvent records the outcome of an attack intent.
type AttackResolvedEvent struct {
	Attacker string `json:"attacker"`
	Target   string `json:"target"`
	Total    int    `json:"total"`
	TargetAC int    `json:"target_ac"`
	Hit      bool   `json:"hit"`
	Damage   int    `json:"damage"`
}

func (e *AttackResolvedEvent) Type() EventType { return EventAttackResolved }

// CombatEndedEvent closes the encounter.
type CombatEndedEvent struct {
	Rounds int `json:"rounds"`
}

func (e *CombatEndedEvent) Type() EventType { return EventCombatEnded }
