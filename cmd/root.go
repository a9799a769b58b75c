/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/SvenDH/go-freecell/config"
)

var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "freecell",
	Short: "FreeCell solitaire",
	Long: `A FreeCell solitaire game with animated drag and drop.

Deals are reproducible: every game has a seed, and the same seed always
deals the same table. Finished games are kept in a local history.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/freecell/config.toml)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}
