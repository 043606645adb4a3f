package entity

import "strings"

// Condition is one of the recognized status effects. The set is a
// closed enumeration with an explicit mapping to the behavioral
// restrictions each condition imposes; free-text condition names that
// are not in the enumeration are cosmetic-only and never matched by
// substring.
type Condition string

const (
	Blinded       Condition = "blinded"
	Charmed       Condition = "charmed"
	Deafened      Condition = "deafened"
	Exhausted     Condition = "exhausted"
	Frightened    Condition = "frightened"
	Grappled      Condition = "grappled"
	Incapacitated Condition = "incapacitated"
	Invisible     Condition = "invisible"
	Paralyzed     Condition = "paralyzed"
	Petrified     Condition = "petrified"
	Poisoned      Condition = "poisoned"
	Prone         Condition = "prone"
	Restrained    Condition = "restrained"
	Stunned       Condition = "stunned"
	Unconscious   Condition = "unconscious"
)

var knownConditions = map[string]Condition{}

func init() {
	for _, c := range []Condition{
		Blinded, Charmed, Deafened, Exhausted, Frightened, Grappled,
		Incapacitated, Invisible, Paralyzed, Petrified, Poisoned,
		Prone, Restrained, Stunned, Unconscious,
	} {
		knownConditions[string(c)] = c
	}
}

// KnownCondition resolves a free-text condition name to its enumerated
// kind. Matching is an exact case-insensitive comparison; anything else
// is treated as cosmetic and reported as unknown.
func KnownCondition(name string) (Condition, bool) {
	c, ok := knownConditions[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// BlocksMovement reports whether the condition prevents voluntary
// movement entirely.
func (c Condition) BlocksMovement() bool {
	switch c {
	case Grappled, Paralyzed, Petrified, Restrained, Stunned, Unconscious:
		return true
	}
	return false
}

// BlocksAttack reports whether the condition prevents taking attack
// actions.
func (c Condition) BlocksAttack() bool {
	switch c {
	case Incapacitated, Paralyzed, Petrified, Stunned, Unconscious:
		return true
	}
	return false
}

// InitiativeDisadvantage reports whether the condition imposes
// disadvantage on initiative (a Dexterity check).
func (c Condition) InitiativeDisadvantage() bool {
	switch c {
	case Exhausted, Frightened, Poisoned:
		return true
	}
	return false
}

// DisplayName renders the condition for user-facing rejection reasons.
func (c Condition) DisplayName() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c)[:1]) + string(c)[1:]
}
