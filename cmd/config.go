/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/SvenDH/go-freecell/config"
)

var configShowPath bool

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game runs with, as TOML. Keys missing from
the config file show their default values.`,
	Run: func(cmd *cobra.Command, args []string) {
		if configShowPath {
			if configPath != "" {
				fmt.Println(configPath)
			} else {
				fmt.Println(config.GetConfigFilePath())
			}
			return
		}
		if err := loadConfig().Encode(os.Stdout); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().BoolVar(&configShowPath, "path", false, "print the config file location instead")
}
