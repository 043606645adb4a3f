package data

import (
	"fmt"
	"strings"

	"github.com/10thony/campaignion-engine/internal/board"
	"github.com/10thony/campaignion-engine/internal/dice"
	"github.com/10thony/campaignion-engine/internal/entity"
	"github.com/10thony/campaignion-engine/internal/grid"
)

// DamageFile is one damage component as authored in content: a dice
// string plus a damage type.
type DamageFile struct {
	DamageDice string `yaml:"damage_dice"`
	DamageType string `yaml:"damage_type"`
}

// ActionFile is a combat action as authored in content files.
type ActionFile struct {
	Name       string       `yaml:"name"`
	Type       string       `yaml:"type"`
	Cost       string       `yaml:"cost"`
	Ability    string       `yaml:"ability"`
	Proficient bool         `yaml:"proficient"`
	Range      string       `yaml:"range"`
	Damage     []DamageFile `yaml:"damage"`
	SpellLevel int          `yaml:"spell_level"`
	UsableIf   string       `yaml:"usable_if"`
}

// SlotFile tracks expenditure of one spell-slot level.
type SlotFile struct {
	Used  int `yaml:"used"`
	Total int `yaml:"total"`
}

// CharacterFile is a player character record loaded via YAML.
type CharacterFile struct {
	Index        string            `yaml:"index"`
	Name         string            `yaml:"name"`
	NPC          bool              `yaml:"npc"`
	Level        int               `yaml:"level"`
	Speed        int               `yaml:"speed"`
	HitPoints    int               `yaml:"hit_points"`
	MaxHitPoints int               `yaml:"max_hit_points"`
	ArmorClass   int               `yaml:"armor_class"`
	Strength     int               `yaml:"strength"`
	Dexterity    int               `yaml:"dexterity"`
	Constitution int               `yaml:"constitution"`
	Intelligence int               `yaml:"intelligence"`
	Wisdom       int               `yaml:"wisdom"`
	Charisma     int               `yaml:"charisma"`
	Actions      []ActionFile      `yaml:"actions"`
	SpellSlots   map[int]SlotFile  `yaml:"spell_slots"`
	Conditions   []string          `yaml:"conditions"`
	Equipped     map[string]string `yaml:"equipped"`
}

// MonsterFile is a stat-block record loaded via YAML. Monsters declare
// a flat proficiency bonus instead of a level.
type MonsterFile struct {
	Index            string           `yaml:"index"`
	Name             string           `yaml:"name"`
	Speed            int              `yaml:"speed"`
	HitPoints        int              `yaml:"hit_points"`
	MaxHitPoints     int              `yaml:"max_hit_points"`
	ArmorClass       int              `yaml:"armor_class"`
	ProficiencyBonus int              `yaml:"proficiency_bonus"`
	Strength         int              `yaml:"strength"`
	Dexterity        int              `yaml:"dexterity"`
	Constitution     int              `yaml:"constitution"`
	Intelligence     int              `yaml:"intelligence"`
	Wisdom           int              `yaml:"wisdom"`
	Charisma         int              `yaml:"charisma"`
	Actions          []ActionFile     `yaml:"actions"`
	SpellSlots       map[int]SlotFile `yaml:"spell_slots"`
	Conditions       []string         `yaml:"conditions"`
}

// TerrainFile annotates one map cell.
type TerrainFile struct {
	Position   grid.Position     `yaml:"position"`
	Type       string            `yaml:"terrain_type"`
	Properties map[string]string `yaml:"properties"`
}

// MapFile is a battle-map record loaded via YAML.
type MapFile struct {
	Index     string          `yaml:"index"`
	Name      string          `yaml:"name"`
	Layout    string          `yaml:"layout"`
	Width     int             `yaml:"width"`
	Height    int             `yaml:"height"`
	Obstacles []grid.Position `yaml:"obstacles"`
	Terrain   []TerrainFile   `yaml:"terrain"`
}

// View projects the character record onto an engine participant view
// placed at the given cell. Dice strings are validated here so that a
// broken damage roll fails at load, not mid-turn.
func (c *CharacterFile) View(tokenID string, pos grid.Position) (entity.PlayerView, error) {
	acts, err := buildActions(c.Actions)
	if err != nil {
		return entity.PlayerView{}, fmt.Errorf("character %s: %w", c.Name, err)
	}
	maxHP := c.MaxHitPoints
	if maxHP == 0 {
		maxHP = c.HitPoints
	}
	return entity.PlayerView{
		TokenID:   tokenID,
		Label:     c.Name,
		PlayerNPC: c.NPC,
		Pos:       pos,
		Speed:     c.Speed,
		CurrentHP: c.HitPoints,
		MaxHP:     maxHP,
		AC:        c.ArmorClass,
		Level:     c.Level,
		Scores:    scores(c.Strength, c.Dexterity, c.Constitution, c.Intelligence, c.Wisdom, c.Charisma),
		Status:    conditions(c.Conditions),
		Acts:      acts,
		Slots:     slots(c.SpellSlots),
		Equipped:  c.Equipped,
	}, nil
}

// View projects the monster record onto an engine participant view.
func (m *MonsterFile) View(tokenID string, pos grid.Position) (entity.MonsterView, error) {
	acts, err := buildActions(m.Actions)
	if err != nil {
		return entity.MonsterView{}, fmt.Errorf("monster %s: %w", m.Name, err)
	}
	maxHP := m.MaxHitPoints
	if maxHP == 0 {
		maxHP = m.HitPoints
	}
	return entity.MonsterView{
		TokenID:   tokenID,
		Label:     m.Name,
		Pos:       pos,
		Speed:     m.Speed,
		CurrentHP: m.HitPoints,
		MaxHP:     maxHP,
		AC:        m.ArmorClass,
		ProfBonus: m.ProficiencyBonus,
		Scores:    scores(m.Strength, m.Dexterity, m.Constitution, m.Intelligence, m.Wisdom, m.Charisma),
		Status:    conditions(m.Conditions),
		Acts:      acts,
		Slots:     slots(m.SpellSlots),
	}, nil
}

// GridLayout resolves the map's declared layout, defaulting to square.
func (m *MapFile) GridLayout() (grid.Layout, error) {
	switch strings.ToLower(m.Layout) {
	case "", string(grid.Square):
		return grid.Square, nil
	case string(grid.Hex):
		return grid.Hex, nil
	}
	return "", fmt.Errorf("map %s: unknown layout %q", m.Name, m.Layout)
}

// Snapshot assembles the static board view: bounds, obstacles, and
// terrain. Occupants come from live token positions and are filled in
// by the caller.
func (m *MapFile) Snapshot() board.Snapshot {
	snap := board.NewSnapshot(m.Width, m.Height)
	for _, p := range m.Obstacles {
		snap.Obstacles[p] = struct{}{}
	}
	for _, tf := range m.Terrain {
		snap.Terrain[tf.Position] = board.TerrainEntry{
			Position:   tf.Position,
			Class:      board.TerrainClass(strings.ToLower(tf.Type)),
			Properties: tf.Properties,
		}
	}
	return snap
}

func buildActions(files []ActionFile) ([]entity.ActionDefinition, error) {
	if len(files) == 0 {
		return nil, nil
	}
	acts := make([]entity.ActionDefinition, 0, len(files))
	for _, af := range files {
		var damage []entity.DamageRoll
		for _, df := range af.Damage {
			n, err := dice.ParseNotation(df.DamageDice)
			if err != nil {
				return nil, fmt.Errorf("action %s: damage dice %q: %w", af.Name, df.DamageDice, err)
			}
			damage = append(damage, entity.DamageRoll{
				Count:    n.Count,
				Faces:    n.Faces,
				Modifier: n.Modifier,
				Type:     df.DamageType,
			})
		}
		acts = append(acts, entity.ActionDefinition{
			Name:       af.Name,
			Type:       actionType(af.Type),
			Cost:       actionCost(af.Cost),
			Ability:    ability(af.Ability),
			Proficient: af.Proficient,
			Range:      af.Range,
			Damage:     damage,
			SpellLevel: af.SpellLevel,
			UsableIf:   af.UsableIf,
		})
	}
	return acts, nil
}

func actionType(s string) entity.ActionType {
	switch strings.ToLower(s) {
	case string(entity.ActionMelee):
		return entity.ActionMelee
	case string(entity.ActionRanged):
		return entity.ActionRanged
	case string(entity.ActionSpell):
		return entity.ActionSpell
	case string(entity.ActionBonus):
		return entity.ActionBonus
	case string(entity.ActionReaction):
		return entity.ActionReaction
	}
	return entity.ActionOther
}

func actionCost(s string) entity.ActionCost {
	switch strings.ToLower(s) {
	case string(entity.CostBonusAction):
		return entity.CostBonusAction
	case string(entity.CostReaction):
		return entity.CostReaction
	case string(entity.CostFree):
		return entity.CostFree
	}
	return entity.CostAction
}

// ability accepts both abbreviated ("str") and full ("strength")
// content spellings.
func ability(s string) entity.Ability {
	switch strings.ToLower(s) {
	case "str", "strength":
		return entity.Strength
	case "dex", "dexterity":
		return entity.Dexterity
	case "con", "constitution":
		return entity.Constitution
	case "int", "intelligence":
		return entity.Intelligence
	case "wis", "wisdom":
		return entity.Wisdom
	case "cha", "charisma":
		return entity.Charisma
	}
	return entity.Strength
}

func scores(str, dex, con, intel, wis, cha int) map[entity.Ability]int {
	return map[entity.Ability]int{
		entity.Strength:     str,
		entity.Dexterity:    dex,
		entity.Constitution: con,
		entity.Intelligence: intel,
		entity.Wisdom:       wis,
		entity.Charisma:     cha,
	}
}

// conditions keeps unknown names as cosmetic entries; only enumerated
// conditions ever restrict behavior.
func conditions(names []string) []entity.Condition {
	if len(names) == 0 {
		return nil
	}
	conds := make([]entity.Condition, 0, len(names))
	for _, name := range names {
		if c, ok := entity.KnownCondition(name); ok {
			conds = append(conds, c)
			continue
		}
		conds = append(conds, entity.Condition(strings.ToLower(strings.TrimSpace(name))))
	}
	return conds
}

func slots(files map[int]SlotFile) map[int]entity.SlotUsage {
	if len(files) == 0 {
		return nil
	}
	out := make(map[int]entity.SlotUsage, len(files))
	for level, sf := range files {
		out[level] = entity.SlotUsage{Used: sf.Used, Total: sf.Total}
	}
	return out
}
