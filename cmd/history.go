/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/SvenDH/go-freecell/store"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent games",
	Run: func(cmd *cobra.Command, args []string) {
		useColor()
		cfg := loadConfig()

		repo, err := store.Open(cfg.Storage.Path)
		if err != nil {
			log.Fatal(err)
		}
		defer repo.Close()

		games, err := repo.RecentGames(historyLimit)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(heading.Sprintf("%-20s %-20s %6s  %s", "Started", "Seed", "Moves", "Result"))
		for _, g := range games {
			result := colorize.YellowString("playing")
			switch {
			case g.Won:
				result = colorize.GreenString("won")
			case g.FinishedAt.Valid:
				result = colorize.RedString("lost")
			}
			fmt.Printf("%-20s %-20d %6d  %s\n", g.StartedAt.Local().Format("2006-01-02 15:04"), g.Seed, g.Moves, result)
		}

		stats, err := repo.Stats()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println()
		fmt.Printf("%s %d  %s %d", heading.Sprint("Played:"), stats.Played, heading.Sprint("Won:"), stats.Won)
		if stats.BestMoves > 0 {
			fmt.Printf("  %s %d", heading.Sprint("Best:"), stats.BestMoves)
		}
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of games to list")
}
