/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/SvenDH/go-freecell/game"
)

var (
	redInk   = colorize.New(colorize.FgHiRed, colorize.Bold)
	blackInk = colorize.New(colorize.FgHiWhite, colorize.Bold)
	heading  = colorize.New(colorize.FgCyan)
)

// useColor turns colored output off when stdout is not a terminal.
func useColor() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		colorize.NoColor = true
	}
}

func cardString(c *game.Card, width int) string {
	ink := blackInk
	if c.Color == game.Red {
		ink = redInk
	}
	return ink.Sprintf("%-*s", width, c.Name)
}
