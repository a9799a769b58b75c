/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/SvenDH/go-freecell/cmd"

func main() {
	cmd.Execute()
}
