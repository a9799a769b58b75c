/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/SvenDH/go-freecell/game"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [cards...]",
	Short: "Check whether cards can be dragged together",
	Long: `Check whether a list of cards, top of the group first, forms a run that
can be dragged as one: each card one rank lower than the one before it and of
the other color.

  freecell check 7C 6D 5S
  freecell check "10h, 9s"
  freecell check 7♣ 6♦`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		useColor()
		cfg := loadConfig()

		layout := game.NewLayout(cfg)
		deck := game.NewDeck(cfg, layout)
		faces, err := game.NewNotation(cfg).Parse(strings.Join(args, " "))
		if err != nil {
			log.Fatalf("Failed to read cards: %v", err)
		}

		cards := make([]*game.Card, len(faces))
		names := make([]string, len(faces))
		for i, f := range faces {
			cards[i] = deck.Find(f)
			names[i] = cardString(cards[i], 0)
		}

		dealer := game.NewDealer(cfg, layout)
		fmt.Print(strings.Join(names, " "), ": ")
		if !dealer.IsValidMultipleCardDrag(cards) {
			colorize.Red("invalid")
			os.Exit(1)
		}
		colorize.Green("valid")
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
