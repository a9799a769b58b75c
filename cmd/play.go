/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/SvenDH/go-freecell/store"
	"github.com/SvenDH/go-freecell/ui"
	"github.com/SvenDH/go-freecell/ui/screens"
)

var (
	playSeed      int64
	playMute      bool
	playDebug     bool
	playNoHistory bool
	playSkipMenu  bool
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window on the title menu.

Controls:
  Mouse      - Drag cards between cells
  N          - New game
  R          - Restart the same deal
  BACKSPACE  - Back to the menu
  ENTER      - Start (menu)
  ESC        - Quit (menu)`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		palette, err := ui.NewPalette(cfg.Colors)
		if err != nil {
			log.Fatal(err)
		}

		var recorder screens.Recorder
		if !playNoHistory {
			repo, err := store.Open(cfg.Storage.Path)
			if err != nil {
				log.Printf("history disabled: %v", err)
			} else {
				defer repo.Close()
				recorder = repo
			}
		}

		var sounds *ui.Sounds
		if !playMute {
			sounds = ui.NewSounds()
		}

		// Window setup
		ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
		ebiten.SetWindowTitle(cfg.Title)
		ebiten.SetTPS(cfg.Screen.TPS)

		app := screens.NewApp(
			screens.NewMenu(cfg, palette),
			screens.NewTable(cfg, palette, sounds, recorder),
			playSeed,
			playSkipMenu,
		)
		defer app.Close()

		// Start the game loop
		prog := &ui.Program{
			M:         app,
			Width:     cfg.Screen.Width,
			Height:    cfg.Screen.Height,
			TPS:       cfg.Screen.TPS,
			ShowDebug: playDebug,
		}
		if err := ebiten.RunGame(prog); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "deal this seed first (0 picks one)")
	playCmd.Flags().BoolVar(&playMute, "mute", false, "disable sound")
	playCmd.Flags().BoolVar(&playDebug, "debug", false, "show TPS and FPS")
	playCmd.Flags().BoolVar(&playNoHistory, "no-history", false, "do not record games")
	playCmd.Flags().BoolVar(&playSkipMenu, "skip-menu", false, "start on the table")
}
