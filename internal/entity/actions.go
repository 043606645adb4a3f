package entity

// Ability names one of the six core ability scores.
type Ability string

const (
	Strength     Ability = "str"
	Dexterity    Ability = "dex"
	Constitution Ability = "con"
	Intelligence Ability = "int"
	Wisdom       Ability = "wis"
	Charisma     Ability = "cha"
)

// Modifier returns the ability modifier for a raw score, rounding down
// (score 8 is -1, score 7 is -2).
func Modifier(score int) int {
	delta := score - 10
	if delta < 0 {
		// Go integer division truncates toward zero; modifiers round down.
		return -((-delta + 1) / 2)
	}
	return delta / 2
}

// ActionType classifies a combat action.
type ActionType string

const (
	ActionMelee    ActionType = "melee"
	ActionRanged   ActionType = "ranged"
	ActionSpell    ActionType = "spell"
	ActionBonus    ActionType = "bonus"
	ActionReaction ActionType = "reaction"
	ActionOther    ActionType = "other"
)

// ActionCost is the action-economy category an action consumes.
type ActionCost string

const (
	CostAction      ActionCost = "action"
	CostBonusAction ActionCost = "bonus_action"
	CostReaction    ActionCost = "reaction"
	CostFree        ActionCost = "free"
)

// DamageRoll is one damage component of an action: dice plus a flat
// modifier of a given damage type.
type DamageRoll struct {
	Count    int    `json:"count" yaml:"count"`
	Faces    int    `json:"faces" yaml:"faces"`
	Modifier int    `json:"modifier" yaml:"modifier"`
	Type     string `json:"damage_type" yaml:"damage_type"`
}

// ActionDefinition describes one usable combat action, resolved by the
// content subsystem before it reaches the engine.
type ActionDefinition struct {
	Name       string       `json:"name" yaml:"name"`
	Type       ActionType   `json:"type" yaml:"type"`
	Cost       ActionCost   `json:"cost" yaml:"cost"`
	Ability    Ability      `json:"ability" yaml:"ability"`
	Proficient bool         `json:"proficient" yaml:"proficient"`
	Range      string       `json:"range" yaml:"range"` // free text: "60 feet", "touch", "self"
	Damage     []DamageRoll `json:"damage" yaml:"damage"`
	SpellLevel int          `json:"spell_level" yaml:"spell_level"`
	// UsableIf is an optional CEL formula gating the action beyond the
	// built-in spell-slot check, evaluated with actor/action context.
	UsableIf string `json:"usable_if" yaml:"usable_if"`
}

// SlotUsage tracks expenditure of one spell-slot level.
type SlotUsage struct {
	Used  int `json:"used" yaml:"used"`
	Total int `json:"total" yaml:"total"`
}
