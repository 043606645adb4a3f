/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/10thony/campaignion-engine/internal/dice"
)

var (
	rollAdvantage    bool
	rollDisadvantage bool
)

// rollCmd represents the roll command
var rollCmd = &cobra.Command{
	Use:   "roll [notation]",
	Short: "Roll dice notation or a d20 with advantage state",
	Long: `Rolls standard dice notation ("2d6+3") or, with no argument, a
single d20 honoring --advantage / --disadvantage.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			res := dice.D20(rollAdvantage, rollDisadvantage)
			switch {
			case res.UsedAdvantage:
				fmt.Printf("d20 (advantage): %d\n", res.Roll)
			case res.UsedDisadvantage:
				fmt.Printf("d20 (disadvantage): %d\n", res.Roll)
			default:
				fmt.Printf("d20: %d\n", res.Roll)
			}
			return
		}

		res, err := dice.RollNotation(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s: rolls %v", args[0], res.Rolls)
		if res.Modifier != 0 {
			fmt.Printf(" modifier %+d", res.Modifier)
		}
		fmt.Printf(" total %d\n", res.Total)
	},
}

func init() {
	rootCmd.AddCommand(rollCmd)

	rollCmd.Flags().BoolVarP(&rollAdvantage, "advantage", "a", false, "roll the d20 with advantage")
	rollCmd.Flags().BoolVarP(&rollDisadvantage, "disadvantage", "d", false, "roll the d20 with disadvantage")
}
