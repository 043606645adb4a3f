// Package combat aggregates attack and damage math over participant
// snapshots: attack-bonus computation, damage resolution through the
// dice engine, action usability, and action-range checks.
package combat

import (
	"strings"
	"unicode"

	"github.com/10thony/campaignion-engine/internal/dice"
	"github.com/10thony/campaignion-engine/internal/entity"
	"github.com/10thony/campaignion-engine/internal/grid"
	"github.com/10thony/campaignion-engine/internal/rules"
)

// AttackBonus returns the governing ability modifier plus the
// participant's proficiency bonus when the action is marked proficient.
func AttackBonus(p entity.Participant, action entity.ActionDefinition) int {
	bonus := p.AbilityModifier(action.Ability)
	if action.Proficient {
		bonus += p.ProficiencyBonus()
	}
	return bonus
}

// DamageComponent is one resolved damage roll with its type.
type DamageComponent struct {
	Rolls    []int  `json:"rolls"`
	Total    int    `json:"total"`
	Type     string `json:"damage_type"`
	Modifier int    `json:"modifier"`
}

// DamageResult aggregates every damage component of a resolved action.
type DamageResult struct {
	Components []DamageComponent `json:"components"`
	Total      int               `json:"total"`
}

// ResolveDamage rolls every configured damage component of the action
// and sums the totals. An action with no damage components resolves to
// a zero total.
func ResolveDamage(action entity.ActionDefinition) DamageResult {
	var res DamageResult
	for _, dr := range action.Damage {
		n := dice.Notation{Count: dr.Count, Faces: dr.Faces, Modifier: dr.Modifier}
		roll := n.Roll()
		res.Components = append(res.Components, DamageComponent{
			Rolls:    roll.Rolls,
			Total:    roll.Total,
			Type:     dr.Type,
			Modifier: dr.Modifier,
		})
		res.Total += roll.Total
	}
	return res
}

// CanUseAction reports whether the participant may use the action.
// A leveled spell is unusable once its slot level is exhausted. An
// optional content-authored usable_if formula is evaluated through the
// registry; a formula that fails to evaluate disables the action rather
// than crashing the turn. Further resource tracking (uses per rest,
// charges) is assumed available.
func CanUseAction(p entity.Participant, action entity.ActionDefinition, reg *rules.Registry) bool {
	if action.Type == entity.ActionSpell && action.SpellLevel > 0 {
		used, total, tracked := p.SpellSlot(action.SpellLevel)
		if tracked && used >= total {
			return false
		}
	}
	if action.UsableIf != "" && reg != nil {
		ok, err := reg.EvalBool(action.UsableIf, rules.BuildContext(p, nil, action))
		if err != nil || !ok {
			return false
		}
	}
	return true
}

// Type-based range defaults in feet, used when an action declares no
// range text of its own.
const (
	defaultMeleeRange  = 5.0
	defaultRangedRange = 150.0
	defaultSpellRange  = 60.0
)

// ActionRangeFeet resolves an action's reach in feet. Declared range
// text wins: an explicit number followed by "feet"/"ft." (the first
// number of a "150/600" pair), or the literal words "touch"/"self"
// meaning 5 ft. An action without range text falls back to its type
// default. Range text with no parseable number reports ok=false; the
// caller treats that as out of range instead of failing the turn.
func ActionRangeFeet(action entity.ActionDefinition) (feet float64, ok bool) {
	text := strings.ToLower(strings.TrimSpace(action.Range))
	if text == "" {
		switch action.Type {
		case entity.ActionRanged:
			return defaultRangedRange, true
		case entity.ActionSpell:
			return defaultSpellRange, true
		default:
			return defaultMeleeRange, true
		}
	}
	if strings.Contains(text, "touch") || strings.Contains(text, "self") {
		return defaultMeleeRange, true
	}
	if n, found := firstNumber(text); found {
		return float64(n), true
	}
	return 0, false
}

// firstNumber extracts the first unsigned integer embedded in free
// text ("150/600 ft." yields 150).
func firstNumber(text string) (int, bool) {
	value := 0
	inNumber := false
	for _, r := range text {
		if unicode.IsDigit(r) {
			value = value*10 + int(r-'0')
			inNumber = true
			continue
		}
		if inNumber {
			return value, true
		}
	}
	if inNumber {
		return value, true
	}
	return 0, false
}

// IsWithinActionRange reports whether the target sits within the
// action's reach of the attacker under the given layout. Unrecognized
// range text yields false rather than an error.
func IsWithinActionRange(attacker, target entity.Participant, action entity.ActionDefinition, layout grid.Layout) bool {
	feet, ok := ActionRangeFeet(action)
	if !ok {
		return false
	}
	return grid.Distance(attacker.Position(), target.Position(), layout) <= feet+1e-9
}
