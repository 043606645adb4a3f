package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10thony/campaignion-engine/internal/dice"
	"github.com/10thony/campaignion-engine/internal/entity"
)

func TestEvalBoolAgainstParticipant(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	actor := entity.PlayerView{
		TokenID:   "elara",
		Level:     5,
		CurrentHP: 12,
		MaxHP:     20,
		Scores:    map[entity.Ability]int{entity.Wisdom: 16},
	}
	action := entity.ActionDefinition{Name: "Healing Word", Type: entity.ActionSpell, SpellLevel: 1}
	ctx := BuildContext(actor, nil, action)

	ok, err := reg.EvalBool("actor.hp < actor.max_hp", ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = reg.EvalBool("action.spell_level > 2", ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = reg.EvalBool("action.name", ctx)
	assert.Error(t, err, "non-boolean results are rejected")
}

func TestRollFunctionInFormulas(t *testing.T) {
	defer dice.ResetMock()
	dice.Mock([]int{3, 4})

	reg, err := NewRegistry()
	require.NoError(t, err)

	out, err := reg.Eval("roll('2d6+1')", map[string]any{
		"actor": map[string]any{}, "target": map[string]any{}, "action": map[string]any{},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 8, out)
}
