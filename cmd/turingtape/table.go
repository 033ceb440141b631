package main

import (
	"github.com/spf13/cobra"

	"turingtape/internal/machine"
	"turingtape/internal/report"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the transition table and exit",
	Run: func(cmd *cobra.Command, args []string) {
		p := report.New(cmd.OutOrStdout())
		p.Header()
		p.Table(machine.DefaultTable())
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
}
