// Package encounter tracks initiative order and turn sequencing. State
// is a plain value: every transition takes a State and returns the
// next one without mutating the input, so callers can diff, persist,
// or discard transitions freely. Turn-order writes are expected to
// come from a single authoritative party (the table host); conflict
// resolution between concurrent writers belongs to the surrounding
// store.
package encounter

// Phase is the coarse lifecycle of an encounter.
type Phase string

const (
	// PhaseIdle has no initiative order and no combat.
	PhaseIdle Phase = "idle"
	// PhaseRolled has an order but combat has not started.
	PhaseRolled Phase = "rolled"
	// PhaseActive is in combat with a valid current turn.
	PhaseActive Phase = "active"
)

// Entry is one participant's place in the initiative order.
type Entry struct {
	TokenID  string `json:"token_id"`
	Label    string `json:"label"`
	Roll     int    `json:"roll"`
	Modifier int    `json:"modifier"`
	Total    int    `json:"total"`
	// Tiebreak is the raw Dexterity score, compared when totals match.
	Tiebreak int    `json:"tiebreak"`
	Faction  string `json:"faction,omitempty"`
}

// State is the full sequencer state. Current is -1 whenever combat is
// inactive and otherwise always a valid index into Order.
type State struct {
	Order    []Entry `json:"order"`
	Current  int     `json:"current_turn"`
	InCombat bool    `json:"in_combat"`
	Round    int     `json:"round"`
}

// NewState returns the idle state.
func NewState() State {
	return State{Current: -1, Round: 1}
}

// Phase derives the lifecycle phase from the state fields.
func (s State) Phase() Phase {
	switch {
	case s.InCombat:
		return PhaseActive
	case len(s.Order) > 0:
		return PhaseRolled
	default:
		return PhaseIdle
	}
}

// ActiveEntry returns the entry whose turn it is, if combat is active.
func (s State) ActiveEntry() (Entry, bool) {
	if !s.InCombat || s.Current < 0 || s.Current >= len(s.Order) {
		return Entry{}, false
	}
	return s.Order[s.Current], true
}

// CanAct reports whether the given token may take turn-restricted
// actions. Outside combat everyone may act; in combat only the active
// entry may.
func (s State) CanAct(tokenID string) bool {
	if !s.InCombat {
		return true
	}
	active, ok := s.ActiveEntry()
	return ok && active.TokenID == tokenID
}
