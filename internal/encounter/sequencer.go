package encounter

import (
	"sort"

	"github.com/10thony/campaignion-engine/internal/dice"
	"github.com/10thony/campaignion-engine/internal/entity"
)

// Combatant is the input to an initiative roll: identity plus the
// declared modifiers that feed the d20.
type Combatant struct {
	TokenID        string
	Label          string
	DexterityScore int
	// Bonus is the flat feat/class/equipment bonus.
	Bonus        int
	Advantage    bool
	Disadvantage bool
	// ExtraDice is an optional dice-notation bonus ("1d4" for Bardic
	// Inspiration and similar). Empty means none.
	ExtraDice string
	Faction   string
}

// CombatantFrom derives an initiative input from a participant
// snapshot: identity, Dexterity score, and disadvantage when any of
// the participant's conditions impairs initiative. Flat bonuses,
// extra dice, and labels stay with the caller.
func CombatantFrom(p entity.Participant) Combatant {
	c := Combatant{
		TokenID:        p.ID(),
		DexterityScore: p.AbilityScore(entity.Dexterity),
	}
	for _, cond := range p.Conditions() {
		if cond.InitiativeDisadvantage() {
			c.Disadvantage = true
			break
		}
	}
	return c
}

// RollInitiative rolls a d20 per combatant under the advantage rules,
// adds the Dexterity modifier, flat bonus, and any extra dice, and
// returns a state holding the sorted order. Entries sort descending by
// total, then by raw Dexterity score, then keep insertion order.
//
// Rolling while combat is active replaces the order in place: the
// round number is preserved and the turn stays with the previously
// active token if it is still present, otherwise it falls back to the
// top of the new order.
func RollInitiative(s State, combatants []Combatant) (State, error) {
	entries := make([]Entry, 0, len(combatants))
	for _, c := range combatants {
		mod := entity.Modifier(c.DexterityScore) + c.Bonus
		if c.ExtraDice != "" {
			extra, err := dice.RollNotation(c.ExtraDice)
			if err != nil {
				return s, err
			}
			mod += extra.Total
		}
		d20 := dice.D20(c.Advantage, c.Disadvantage)
		entries = append(entries, Entry{
			TokenID:  c.TokenID,
			Label:    c.Label,
			Roll:     d20.Roll,
			Modifier: mod,
			Total:    d20.Roll + mod,
			Tiebreak: c.DexterityScore,
			Faction:  c.Faction,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Total != entries[j].Total {
			return entries[i].Total > entries[j].Total
		}
		return entries[i].Tiebreak > entries[j].Tiebreak
	})

	next := s
	next.Order = entries
	if !s.InCombat {
		next.Current = -1
		return next, nil
	}

	// Re-roll mid-combat: keep the active token's turn if possible.
	next.Current = 0
	if active, ok := s.ActiveEntry(); ok {
		for i, e := range entries {
			if e.TokenID == active.TokenID {
				next.Current = i
				break
			}
		}
	}
	return next, nil
}

// StartCombat moves a rolled state into active combat at the top of
// the order. Starting with no order, or while already active, is a
// no-op.
func StartCombat(s State) State {
	if s.InCombat || len(s.Order) == 0 {
		return s
	}
	s.InCombat = true
	s.Current = 0
	s.Round = 1
	return s
}

// NextTurn advances the turn cyclically. Wrapping past the last entry
// increments the round. A no-op outside active combat.
func NextTurn(s State) State {
	if !s.InCombat || len(s.Order) == 0 {
		return s
	}
	s.Current = (s.Current + 1) % len(s.Order)
	if s.Current == 0 {
		s.Round++
	}
	return s
}

// PreviousTurn retreats the turn cyclically. Wrapping past the first
// entry decrements the round, floored at 1. A no-op outside active
// combat.
func PreviousTurn(s State) State {
	if !s.InCombat || len(s.Order) == 0 {
		return s
	}
	s.Current--
	if s.Current < 0 {
		s.Current = len(s.Order) - 1
		if s.Round > 1 {
			s.Round--
		}
	}
	return s
}

// EndCombat returns to idle but preserves the last-rolled order for
// review until the next roll.
func EndCombat(s State) State {
	s.InCombat = false
	s.Current = -1
	s.Round = 1
	return s
}

// Reset discards everything, as when the active map changes.
func Reset(State) State {
	return NewState()
}
