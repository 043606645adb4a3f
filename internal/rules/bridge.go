package rules

import "github.com/10thony/campaignion-engine/internal/entity"

// ContextFromParticipant converts a participant snapshot into a map
// suitable for CEL evaluation.
func ContextFromParticipant(p entity.Participant) map[string]any {
	if p == nil {
		return map[string]any{}
	}
	current, maxHP := p.HitPoints()

	conditions := make([]string, 0, len(p.Conditions()))
	for _, c := range p.Conditions() {
		conditions = append(conditions, string(c))
	}

	scores := make(map[string]int, 6)
	modifiers := make(map[string]int, 6)
	for _, a := range []entity.Ability{
		entity.Strength, entity.Dexterity, entity.Constitution,
		entity.Intelligence, entity.Wisdom, entity.Charisma,
	} {
		scores[string(a)] = p.AbilityScore(a)
		modifiers[string(a)] = p.AbilityModifier(a)
	}

	return map[string]any{
		"id":         p.ID(),
		"kind":       string(p.Kind()),
		"speed":      p.SpeedFeet(),
		"hp":         current,
		"max_hp":     maxHP,
		"ac":         p.ArmorClass(),
		"prof_bonus": p.ProficiencyBonus(),
		"stats":      scores,
		"modifiers":  modifiers,
		"conditions": conditions,
	}
}

// ContextFromAction exposes an action definition to CEL formulas.
func ContextFromAction(a entity.ActionDefinition) map[string]any {
	return map[string]any{
		"name":        a.Name,
		"type":        string(a.Type),
		"cost":        string(a.Cost),
		"ability":     string(a.Ability),
		"proficient":  a.Proficient,
		"range":       a.Range,
		"spell_level": a.SpellLevel,
	}
}

// BuildContext assembles the standard actor/target/action evaluation
// context. A nil target yields an empty target map so formulas never
// hit a missing variable.
func BuildContext(actor, target entity.Participant, action entity.ActionDefinition) map[string]any {
	return map[string]any{
		"actor":  ContextFromParticipant(actor),
		"target": ContextFromParticipant(target),
		"action": ContextFromAction(action),
	}
}
