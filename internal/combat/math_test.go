package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10thony/campaignion-engine/internal/dice"
	"github.com/10thony/campaignion-engine/internal/entity"
	"github.com/10thony/campaignion-engine/internal/grid"
	"github.com/10thony/campaignion-engine/internal/rules"
)

func levelFiveFighter() entity.PlayerView {
	return entity.PlayerView{
		TokenID: "thorne",
		Level:   5,
		Scores:  map[entity.Ability]int{entity.Strength: 16, entity.Dexterity: 12},
	}
}

func longsword() entity.ActionDefinition {
	return entity.ActionDefinition{
		Name:       "Longsword",
		Type:       entity.ActionMelee,
		Cost:       entity.CostAction,
		Ability:    entity.Strength,
		Proficient: true,
		Damage:     []entity.DamageRoll{{Count: 1, Faces: 8, Modifier: 3, Type: "slashing"}},
	}
}

func TestAttackBonusAggregation(t *testing.T) {
	// Level 5, proficient, Strength modifier +3: 3 + 2 = 5.
	assert.Equal(t, 5, AttackBonus(levelFiveFighter(), longsword()))

	unproficient := longsword()
	unproficient.Proficient = false
	assert.Equal(t, 3, AttackBonus(levelFiveFighter(), unproficient))

	goblin := entity.MonsterView{Scores: map[entity.Ability]int{entity.Dexterity: 14}}
	stab := entity.ActionDefinition{Ability: entity.Dexterity, Proficient: true}
	assert.Equal(t, 4, AttackBonus(goblin, stab), "monster flat proficiency default is 2")
}

func TestResolveDamage(t *testing.T) {
	defer dice.ResetMock()
	dice.Mock([]int{6})

	res := ResolveDamage(longsword())
	require.Len(t, res.Components, 1)
	assert.Equal(t, []int{6}, res.Components[0].Rolls)
	assert.Equal(t, 9, res.Components[0].Total)
	assert.Equal(t, "slashing", res.Components[0].Type)
	assert.Equal(t, 9, res.Total)

	empty := ResolveDamage(entity.ActionDefinition{Name: "Shove"})
	assert.Zero(t, empty.Total)
	assert.Empty(t, empty.Components)
}

func TestResolveDamageMultipleComponents(t *testing.T) {
	defer dice.ResetMock()
	dice.Mock([]int{4, 1, 6})

	flameBlade := entity.ActionDefinition{
		Damage: []entity.DamageRoll{
			{Count: 1, Faces: 8, Modifier: 2, Type: "slashing"},
			{Count: 2, Faces: 6, Type: "fire"},
		},
	}
	res := ResolveDamage(flameBlade)
	require.Len(t, res.Components, 2)
	assert.Equal(t, 6, res.Components[0].Total)
	assert.Equal(t, 7, res.Components[1].Total)
	assert.Equal(t, 13, res.Total)
}

func TestCanUseActionSpellSlots(t *testing.T) {
	fireball := entity.ActionDefinition{
		Name: "Fireball", Type: entity.ActionSpell, SpellLevel: 3,
	}

	fresh := entity.PlayerView{Slots: map[int]entity.SlotUsage{3: {Used: 1, Total: 2}}}
	assert.True(t, CanUseAction(fresh, fireball, nil))

	spent := entity.PlayerView{Slots: map[int]entity.SlotUsage{3: {Used: 2, Total: 2}}}
	assert.False(t, CanUseAction(spent, fireball, nil))

	// Untracked levels are assumed available (innate casters).
	assert.True(t, CanUseAction(entity.MonsterView{}, fireball, nil))

	// Cantrips never consume slots.
	cantrip := entity.ActionDefinition{Name: "Fire Bolt", Type: entity.ActionSpell, SpellLevel: 0}
	assert.True(t, CanUseAction(spent, cantrip, nil))
}

func TestCanUseActionFormulaGate(t *testing.T) {
	reg, err := rules.NewRegistry()
	require.NoError(t, err)

	secondWind := entity.ActionDefinition{
		Name:     "Second Wind",
		Type:     entity.ActionBonus,
		UsableIf: "actor.hp < actor.max_hp",
	}

	hurt := entity.PlayerView{CurrentHP: 5, MaxHP: 20}
	assert.True(t, CanUseAction(hurt, secondWind, reg))

	full := entity.PlayerView{CurrentHP: 20, MaxHP: 20}
	assert.False(t, CanUseAction(full, secondWind, reg))

	// A broken formula disables the action instead of crashing.
	broken := secondWind
	broken.UsableIf = "actor.hp <"
	assert.False(t, CanUseAction(hurt, broken, reg))
}

func TestActionRangeFeet(t *testing.T) {
	cases := []struct {
		rangeText string
		kind      entity.ActionType
		wantFeet  float64
		wantOK    bool
	}{
		{"60 feet", entity.ActionSpell, 60, true},
		{"150/600 ft.", entity.ActionRanged, 150, true},
		{"Touch", entity.ActionSpell, 5, true},
		{"Self", entity.ActionSpell, 5, true},
		{"", entity.ActionMelee, 5, true},
		{"", entity.ActionRanged, 150, true},
		{"", entity.ActionSpell, 60, true},
		{"", entity.ActionBonus, 5, true},
		{"a stone's throw", entity.ActionRanged, 0, false},
	}
	for _, tc := range cases {
		feet, ok := ActionRangeFeet(entity.ActionDefinition{Range: tc.rangeText, Type: tc.kind})
		assert.Equal(t, tc.wantOK, ok, "range %q", tc.rangeText)
		assert.Equal(t, tc.wantFeet, feet, "range %q", tc.rangeText)
	}
}

func TestIsWithinActionRange(t *testing.T) {
	attacker := entity.PlayerView{Pos: grid.Position{X: 0, Y: 0}}
	near := entity.MonsterView{Pos: grid.Position{X: 1, Y: 0}}
	far := entity.MonsterView{Pos: grid.Position{X: 9, Y: 0}}

	melee := entity.ActionDefinition{Type: entity.ActionMelee}
	assert.True(t, IsWithinActionRange(attacker, near, melee, grid.Square))
	assert.False(t, IsWithinActionRange(attacker, far, melee, grid.Square))

	bow := entity.ActionDefinition{Type: entity.ActionRanged, Range: "150/600 ft."}
	assert.True(t, IsWithinActionRange(attacker, far, bow, grid.Square))

	// Malformed range text means "not in range", never a panic.
	odd := entity.ActionDefinition{Type: entity.ActionMelee, Range: "somewhere close"}
	assert.False(t, IsWithinActionRange(attacker, near, odd, grid.Square))
}
