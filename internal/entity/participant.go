// Package entity defines the read-only combatant projections the
// engine computes over. Views are constructed fresh by the caller from
// live character/monster/token data for each validation call and are
// never cached inside the engine.
package entity

import "github.com/10thony/campaignion-engine/internal/grid"

// Kind tags the variant of a participant snapshot.
type Kind string

const (
	KindPlayer  Kind = "player"
	KindNPC     Kind = "npc"
	KindMonster Kind = "monster"
)

// Participant is the capability-oriented view of one combatant for a
// single computation. The two concrete variants are PlayerView and
// MonsterView; duck-typed presence checks are deliberately absent.
type Participant interface {
	ID() string
	Kind() Kind
	Position() grid.Position
	SpeedFeet() int
	HitPoints() (current, max int)
	ArmorClass() int
	AbilityScore(a Ability) int
	AbilityModifier(a Ability) int
	ProficiencyBonus() int
	Conditions() []Condition
	Actions() []ActionDefinition
	// SpellSlot reports slot usage for a spell level; tracked is false
	// when the participant does not track slots of that level at all.
	SpellSlot(level int) (used, total int, tracked bool)
}

// PlayerView is the leveled-character variant of Participant.
type PlayerView struct {
	TokenID   string             `json:"token_id"`
	Label     string             `json:"label"`
	PlayerNPC bool               `json:"npc"` // true for DM-run characters
	Pos       grid.Position      `json:"position"`
	Speed     int                `json:"speed"`
	CurrentHP int                `json:"current_hp"`
	MaxHP     int                `json:"max_hp"`
	AC        int                `json:"armor_class"`
	Level     int                `json:"level"`
	Scores    map[Ability]int    `json:"ability_scores"`
	Status    []Condition        `json:"conditions"`
	Acts      []ActionDefinition `json:"actions"`
	Slots     map[int]SlotUsage  `json:"spell_slots"`
	Equipped  map[string]string  `json:"equipped_items"` // slot → item identifier
}

func (v PlayerView) ID() string { return v.TokenID }

func (v PlayerView) Kind() Kind {
	if v.PlayerNPC {
		return KindNPC
	}
	return KindPlayer
}

func (v PlayerView) Position() grid.Position { return v.Pos }
func (v PlayerView) SpeedFeet() int          { return v.Speed }

func (v PlayerView) HitPoints() (int, int) { return v.CurrentHP, v.MaxHP }

func (v PlayerView) ArmorClass() int {
	if v.AC == 0 {
		return 10
	}
	return v.AC
}

func (v PlayerView) AbilityScore(a Ability) int {
	if score, ok := v.Scores[a]; ok {
		return score
	}
	return 10
}

func (v PlayerView) AbilityModifier(a Ability) int { return Modifier(v.AbilityScore(a)) }

// ProficiencyBonus scales with character level: level/4 + 1.
func (v PlayerView) ProficiencyBonus() int {
	if v.Level <= 0 {
		return 1
	}
	return v.Level/4 + 1
}

func (v PlayerView) Conditions() []Condition     { return v.Status }
func (v PlayerView) Actions() []ActionDefinition { return v.Acts }

func (v PlayerView) SpellSlot(level int) (int, int, bool) {
	slot, ok := v.Slots[level]
	if !ok {
		return 0, 0, false
	}
	return slot.Used, slot.Total, true
}

// MonsterView is the stat-block variant of Participant. Monsters carry
// a flat declared proficiency bonus instead of a level.
type MonsterView struct {
	TokenID   string             `json:"token_id"`
	Label     string             `json:"label"`
	Pos       grid.Position      `json:"position"`
	Speed     int                `json:"speed"`
	CurrentHP int                `json:"current_hp"`
	MaxHP     int                `json:"max_hp"`
	AC        int                `json:"armor_class"`
	ProfBonus int                `json:"proficiency_bonus"`
	Scores    map[Ability]int    `json:"ability_scores"`
	Status    []Condition        `json:"conditions"`
	Acts      []ActionDefinition `json:"actions"`
	Slots     map[int]SlotUsage  `json:"spell_slots"`
}

func (v MonsterView) ID() string              { return v.TokenID }
func (v MonsterView) Kind() Kind              { return KindMonster }
func (v MonsterView) Position() grid.Position { return v.Pos }
func (v MonsterView) SpeedFeet() int          { return v.Speed }

func (v MonsterView) HitPoints() (int, int) { return v.CurrentHP, v.MaxHP }

func (v MonsterView) ArmorClass() int {
	if v.AC == 0 {
		return 10
	}
	return v.AC
}

func (v MonsterView) AbilityScore(a Ability) int {
	if score, ok := v.Scores[a]; ok {
		return score
	}
	return 10
}

func (v MonsterView) AbilityModifier(a Ability) int { return Modifier(v.AbilityScore(a)) }

// ProficiencyBonus is the stat block's declared value, defaulting to
// the SRD floor of 2 when unset.
func (v MonsterView) ProficiencyBonus() int {
	if v.ProfBonus <= 0 {
		return 2
	}
	return v.ProfBonus
}

func (v MonsterView) Conditions() []Condition     { return v.Status }
func (v MonsterView) Actions() []ActionDefinition { return v.Acts }

func (v MonsterView) SpellSlot(level int) (int, int, bool) {
	slot, ok := v.Slots[level]
	if !ok {
		return 0, 0, false
	}
	return slot.Used, slot.Total, true
}
