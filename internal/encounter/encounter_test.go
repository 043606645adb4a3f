package encounter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10thony/campaignion-engine/internal/dice"
	"github.com/10thony/campaignion-engine/internal/entity"
)

func party() []Combatant {
	return []Combatant{
		{TokenID: "hero", Label: "Hero", DexterityScore: 14},
		{TokenID: "rogue", Label: "Rogue", DexterityScore: 18},
		{TokenID: "goblin-1", Label: "Goblin", DexterityScore: 10},
	}
}

func TestRollInitiativeSortsByTotalThenDexterity(t *testing.T) {
	dice.Mock([]int{16, 14, 15})
	defer dice.ResetMock()

	state, err := RollInitiative(NewState(), party())
	require.NoError(t, err)

	// Hero 16+2=18, Rogue 14+4=18, Goblin 15+0=15. The tie goes to the
	// higher raw Dexterity score.
	require.Len(t, state.Order, 3)
	assert.Equal(t, "rogue", state.Order[0].TokenID)
	assert.Equal(t, "hero", state.Order[1].TokenID)
	assert.Equal(t, "goblin-1", state.Order[2].TokenID)
	assert.Equal(t, 18, state.Order[0].Total)

	assert.Equal(t, PhaseRolled, state.Phase())
	assert.Equal(t, -1, state.Current)
	assert.False(t, state.InCombat)
}

func TestRollInitiativeExtraDiceAndBonus(t *testing.T) {
	dice.Mock([]int{3, 10})
	defer dice.ResetMock()

	state, err := RollInitiative(NewState(), []Combatant{
		{TokenID: "bard", DexterityScore: 12, Bonus: 1, ExtraDice: "1d4"},
	})
	require.NoError(t, err)
	// d20 10 + dex 1 + bonus 1 + inspiration 3.
	assert.Equal(t, 15, state.Order[0].Total)
	assert.Equal(t, 10, state.Order[0].Roll)
	assert.Equal(t, 5, state.Order[0].Modifier)
}

func TestCombatantFromConditions(t *testing.T) {
	sickened := entity.PlayerView{
		TokenID: "hero",
		Scores:  map[entity.Ability]int{entity.Dexterity: 14},
		Status:  []entity.Condition{entity.Poisoned},
	}
	c := CombatantFrom(sickened)
	assert.Equal(t, "hero", c.TokenID)
	assert.Equal(t, 14, c.DexterityScore)
	assert.True(t, c.Disadvantage, "poison impairs initiative")

	steady := entity.PlayerView{TokenID: "rogue", Status: []entity.Condition{entity.Prone}}
	assert.False(t, CombatantFrom(steady).Disadvantage)

	// The derived disadvantage reaches the roll: two dice, lower kept.
	dice.Mock([]int{17, 4})
	defer dice.ResetMock()
	state, err := RollInitiative(NewState(), []Combatant{c})
	require.NoError(t, err)
	assert.Equal(t, 4, state.Order[0].Roll)
	assert.Equal(t, 6, state.Order[0].Total)
}

func TestRollInitiativeAdvantage(t *testing.T) {
	dice.Mock([]int{5, 17})
	defer dice.ResetMock()

	state, err := RollInitiative(NewState(), []Combatant{
		{TokenID: "hero", DexterityScore: 10, Advantage: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 17, state.Order[0].Roll)
}

func TestRollInitiativeRejectsBadExtraDice(t *testing.T) {
	start := NewState()
	state, err := RollInitiative(start, []Combatant{
		{TokenID: "hero", ExtraDice: "not-dice"},
	})
	assert.ErrorIs(t, err, dice.ErrInvalidNotation)
	assert.Equal(t, start, state, "a failed roll leaves the state untouched")
}

func TestStartCombat(t *testing.T) {
	assert.Equal(t, NewState(), StartCombat(NewState()), "starting with no order is a no-op")

	dice.Mock([]int{16, 14, 15})
	defer dice.ResetMock()
	rolled, err := RollInitiative(NewState(), party())
	require.NoError(t, err)

	active := StartCombat(rolled)
	assert.Equal(t, PhaseActive, active.Phase())
	assert.Equal(t, 0, active.Current)
	assert.Equal(t, 1, active.Round)

	entry, ok := active.ActiveEntry()
	require.True(t, ok)
	assert.Equal(t, "rogue", entry.TokenID)
}

func TestTurnCyclingAndRounds(t *testing.T) {
	dice.Mock([]int{16, 14, 15})
	defer dice.ResetMock()
	rolled, err := RollInitiative(NewState(), party())
	require.NoError(t, err)
	state := StartCombat(rolled)

	state = NextTurn(state)
	assert.Equal(t, 1, state.Current)
	assert.Equal(t, 1, state.Round)

	state = NextTurn(NextTurn(state))
	assert.Equal(t, 0, state.Current, "wraps back to the top")
	assert.Equal(t, 2, state.Round, "wrapping increments the round")

	state = PreviousTurn(state)
	assert.Equal(t, 2, state.Current)
	assert.Equal(t, 1, state.Round, "retreating past the top decrements the round")

	state = PreviousTurn(PreviousTurn(PreviousTurn(state)))
	assert.Equal(t, 2, state.Current)
	assert.Equal(t, 1, state.Round, "the round never drops below 1")
}

func TestNextTurnOutsideCombatIsNoop(t *testing.T) {
	s := NewState()
	assert.Equal(t, s, NextTurn(s))
	assert.Equal(t, s, PreviousTurn(s))
}

func TestEndCombatPreservesOrder(t *testing.T) {
	dice.Mock([]int{16, 14, 15})
	defer dice.ResetMock()
	rolled, err := RollInitiative(NewState(), party())
	require.NoError(t, err)
	state := NextTurn(StartCombat(rolled))

	ended := EndCombat(state)
	assert.False(t, ended.InCombat)
	assert.Equal(t, -1, ended.Current)
	assert.Equal(t, 1, ended.Round)
	assert.Equal(t, state.Order, ended.Order, "order stays for review")
	assert.Equal(t, PhaseRolled, ended.Phase())
}

func TestRerollDuringCombatKeepsRoundAndActiveToken(t *testing.T) {
	dice.Mock([]int{16, 14, 15})
	rolled, err := RollInitiative(NewState(), party())
	require.NoError(t, err)
	state := StartCombat(rolled)
	state.Round = 3
	state = NextTurn(state) // hero's turn

	// New rolls reshuffle: Hero 3+2=5, Rogue 1+4=5, Goblin 20+0=20.
	dice.Mock([]int{3, 1, 20})
	defer dice.ResetMock()
	state, err = RollInitiative(state, party())
	require.NoError(t, err)

	assert.Equal(t, 3, state.Round, "re-roll does not reset the round")
	assert.True(t, state.InCombat)
	entry, ok := state.ActiveEntry()
	require.True(t, ok)
	assert.Equal(t, "hero", entry.TokenID, "the active token keeps its turn")
	assert.Equal(t, "goblin-1", state.Order[0].TokenID)
}

func TestCanAct(t *testing.T) {
	idle := NewState()
	assert.True(t, idle.CanAct("anyone"), "no turn gate outside combat")

	dice.Mock([]int{16, 14, 15})
	defer dice.ResetMock()
	rolled, err := RollInitiative(NewState(), party())
	require.NoError(t, err)
	state := StartCombat(rolled)

	assert.True(t, state.CanAct("rogue"))
	assert.False(t, state.CanAct("hero"))
	assert.False(t, state.CanAct("goblin-1"))
}

func TestResetReturnsToIdle(t *testing.T) {
	dice.Mock([]int{16, 14, 15})
	defer dice.ResetMock()
	rolled, err := RollInitiative(NewState(), party())
	require.NoError(t, err)

	assert.Equal(t, NewState(), Reset(StartCombat(rolled)))
}
