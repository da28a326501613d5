package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"glint"
)

var langsCmd = &cobra.Command{
	Use:   "langs",
	Short: "List supported languages and the strategy each one uses",
	Run: func(cmd *cobra.Command, args []string) {
		for _, id := range glint.Languages() {
			s := glint.NewSession()
			s.SetLanguage(id)
			fmt.Printf("%-12s %s\n", id, s.Strategy())
			s.Close()
		}
	},
}

func init() {
	rootCmd.AddCommand(langsCmd)
}
