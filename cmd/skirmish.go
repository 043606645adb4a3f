/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/10thony/campaignion-engine/internal/board"
	"github.com/10thony/campaignion-engine/internal/data"
	"github.com/10thony/campaignion-engine/internal/encounter"
	"github.com/10thony/campaignion-engine/internal/entity"
	"github.com/10thony/campaignion-engine/internal/grid"
	"github.com/10thony/campaignion-engine/internal/journal"
	"github.com/10thony/campaignion-engine/internal/resolve"
	"github.com/10thony/campaignion-engine/internal/rules"
)

var skirmishJournal string

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	activeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575"))

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))
)

// skirmishCmd represents the skirmish command
var skirmishCmd = &cobra.Command{
	Use:   "skirmish [map] [character] [monster]",
	Short: "Roll initiative and preview a validated encounter",
	Long: `Loads a map, a character, and a monster from the content
directories, rolls initiative, and renders the board with each
side's reachable cells so content can be sanity-checked offline.`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSkirmish(args[0], args[1], args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(skirmishCmd)

	skirmishCmd.Flags().StringVar(&skirmishJournal, "journal", "", "append resolved events to this jsonl file")
}

func runSkirmish(mapName, charName, monsterName string) error {
	loader := data.NewLoader(dataDirs())

	mapFile, err := loader.LoadMap(mapName)
	if err != nil {
		return err
	}
	layout, err := mapFile.GridLayout()
	if err != nil {
		return err
	}
	charFile, err := loader.LoadCharacter(charName)
	if err != nil {
		return err
	}
	monsterFile, err := loader.LoadMonster(monsterName)
	if err != nil {
		return err
	}

	hero, err := charFile.View("pc-1", grid.Position{X: 0, Y: 0})
	if err != nil {
		return err
	}
	foe, err := monsterFile.View("foe-1", grid.Position{X: mapFile.Width - 1, Y: mapFile.Height - 1})
	if err != nil {
		return err
	}

	snap := mapFile.Snapshot()
	snap.Occupants[hero.Position()] = hero.ID()
	snap.Occupants[foe.Position()] = foe.ID()

	heroSide := encounter.CombatantFrom(hero)
	heroSide.Label = hero.Label
	foeSide := encounter.CombatantFrom(foe)
	foeSide.Label = foe.Label
	state, err := encounter.RollInitiative(encounter.NewState(), []encounter.Combatant{heroSide, foeSide})
	if err != nil {
		return err
	}
	state = encounter.StartCombat(state)

	var log *journal.Store
	if skirmishJournal != "" {
		log, err = journal.NewStore(skirmishJournal)
		if err != nil {
			return err
		}
		defer log.Close()
		if err := log.Append(&journal.InitiativeRolledEvent{Order: state.Order, Round: state.Round}); err != nil {
			return err
		}
		if active, ok := state.ActiveEntry(); ok {
			if err := log.Append(&journal.CombatStartedEvent{Active: active.TokenID, Round: state.Round}); err != nil {
				return err
			}
		}
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Skirmish: %s", mapFile.Name)))
	fmt.Println(renderInitiative(state))
	fmt.Println(boardStyle.Render(renderBoard(snap, hero, foe)))

	for _, p := range []entity.Participant{hero, foe} {
		reachable := board.ValidMovementPositions(p, snap, float64(p.SpeedFeet()), layout)
		fmt.Println(dimStyle.Render(fmt.Sprintf("%s can reach %d cells", p.ID(), len(reachable))))
	}

	reg, err := rules.NewRegistry()
	if err != nil {
		return err
	}
	resolver := resolve.New(layout, reg, logrus.StandardLogger())

	actor, bystander := entity.Participant(hero), entity.Participant(foe)
	if active, ok := state.ActiveEntry(); ok && active.TokenID == foe.ID() {
		actor, bystander = foe, hero
	}

	step := actor.Position().Shift(0, 1)
	if !snap.Bounds.Contains(step) {
		step = actor.Position().Shift(0, -1)
	}
	if out := resolver.Move(actor, step, snap, state); out.Result.OK {
		fmt.Printf("%s steps to %s (%.1f ft)\n", actor.ID(), step.Key(), out.Change.Cost)
		if log != nil {
			if err := log.Append(&journal.MoveCommittedEvent{
				TokenID: out.Change.TokenID,
				From:    out.Change.From,
				To:      out.Change.To,
				Cost:    out.Change.Cost,
			}); err != nil {
				return err
			}
		}
	} else {
		fmt.Printf("%s cannot step to %s: %s\n", actor.ID(), step.Key(), out.Result.Reason)
	}
	if out := resolver.Move(bystander, bystander.Position().Shift(0, 1), snap, state); !out.Result.OK {
		fmt.Println(dimStyle.Render(fmt.Sprintf("%s: %s", bystander.ID(), out.Result.Reason)))
	}
	return nil
}

func renderInitiative(state encounter.State) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Round %d\n", state.Round))
	for i, e := range state.Order {
		line := fmt.Sprintf("%2d. %-16s d20 %2d %+d = %d", i+1, e.Label, e.Roll, e.Modifier, e.Total)
		if i == state.Current {
			b.WriteString(activeStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// renderBoard draws the map one rune per cell: tokens, obstacles,
// difficult terrain, empty floor.
func renderBoard(snap board.Snapshot, tokens ...entity.Participant) string {
	byCell := make(map[grid.Position]rune, len(tokens))
	for _, t := range tokens {
		byCell[t.Position()] = rune(strings.ToUpper(t.ID())[0])
	}

	var b strings.Builder
	for y := 0; y < snap.Bounds.Height; y++ {
		for x := 0; x < snap.Bounds.Width; x++ {
			p := grid.Position{X: x, Y: y}
			switch {
			case byCell[p] != 0:
				b.WriteRune(byCell[p])
			case snap.Blocked(p):
				b.WriteRune('#')
			case snap.MoveMultiplier(p) > 1:
				b.WriteRune('~')
			default:
				b.WriteRune('.')
			}
			if x < snap.Bounds.Width-1 {
				b.WriteByte(' ')
			}
		}
		if y < snap.Bounds.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
