/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SvenDH/go-freecell/game"
)

var dealSeed int64

// dealCmd represents the deal command
var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Print the table dealt by a seed",
	Long: `Print the eight columns dealt by a seed, one row per line.

The same seed always deals the same table, in the terminal and in the game
window, so a deal can be shared by its seed:

  freecell deal --seed 1234
  freecell play --seed 1234`,
	Run: func(cmd *cobra.Command, args []string) {
		useColor()
		cfg := loadConfig()

		seed := dealSeed
		if !cmd.Flags().Changed("seed") {
			seed = time.Now().UnixNano()
		}
		g := game.New(cfg, seed)

		fmt.Println(heading.Sprintf("Seed %d", seed))
		headers := make([]string, len(g.Dealer.Columns))
		for i := range headers {
			headers[i] = fmt.Sprintf("%-4d", i+1)
		}
		fmt.Println(heading.Sprint(strings.Join(headers, " ")))

		rows := 0
		for _, col := range g.Dealer.Columns {
			rows = max(rows, col.Len())
		}
		for row := 0; row < rows; row++ {
			cells := make([]string, len(g.Dealer.Columns))
			for i, col := range g.Dealer.Columns {
				if row < col.Len() {
					cells[i] = cardString(col.Cards()[row], 4)
				} else {
					cells[i] = strings.Repeat(" ", 4)
				}
			}
			fmt.Println(strings.TrimRight(strings.Join(cells, " "), " "))
		}
	},
}

func init() {
	rootCmd.AddCommand(dealCmd)

	dealCmd.Flags().Int64Var(&dealSeed, "seed", 0, "seed to deal (default: a fresh one)")
}
