package dice

import (
	"crypto/rand"
	"math/big"
)

var mockQueue []int

// Mock prepares a sequence of deterministic results for the next calls
// to Die. Intended for tests.
func Mock(results []int) {
	mockQueue = results
}

// ResetMock clears the deterministic queue.
func ResetMock() {
	mockQueue = nil
}

// Die rolls a single die uniformly in [1, faces] via crypto/rand.
// A non-positive face count yields 0.
func Die(faces int) int {
	if faces <= 0 {
		return 0
	}
	if len(mockQueue) > 0 {
		v := mockQueue[0]
		mockQueue = mockQueue[1:]
		return v
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(faces)))
	return int(n.Int64()) + 1
}

// Roll holds the outcome of rolling a Notation: the individual die
// results, the flat modifier, and their sum.
type Roll struct {
	Rolls    []int `json:"rolls"`
	Modifier int   `json:"modifier"`
	Total    int   `json:"total"`
}

// Roll generates one independent result per die and applies the flat
// modifier.
func (n Notation) Roll() Roll {
	res := Roll{
		Rolls:    make([]int, 0, n.Count),
		Modifier: n.Modifier,
		Total:    n.Modifier,
	}
	for i := 0; i < n.Count; i++ {
		v := Die(n.Faces)
		res.Rolls = append(res.Rolls, v)
		res.Total += v
	}
	return res
}

// RollNotation parses raw and rolls it in one step.
func RollNotation(raw string) (Roll, error) {
	n, err := ParseNotation(raw)
	if err != nil {
		return Roll{}, err
	}
	return n.Roll(), nil
}

// D20Roll is the outcome of a d20 roll under the advantage rules,
// recording which state was actually applied.
type D20Roll struct {
	Roll             int  `json:"roll"`
	UsedAdvantage    bool `json:"used_advantage"`
	UsedDisadvantage bool `json:"used_disadvantage"`
}

// D20 rolls a twenty-sided die honoring advantage state: two dice are
// rolled when exactly one flag is set, keeping the higher under
// advantage and the lower under disadvantage. Both flags together
// cancel into a straight roll.
func D20(advantage, disadvantage bool) D20Roll {
	if advantage == disadvantage {
		return D20Roll{Roll: Die(20)}
	}
	first, second := Die(20), Die(20)
	if advantage {
		return D20Roll{Roll: max(first, second), UsedAdvantage: true}
	}
	return D20Roll{Roll: min(first, second), UsedDisadvantage: true}
}
