package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"turingtape/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "turingtape",
	Short: "turingtape is a fixed-table Turing machine transducer",
	Long: `turingtape reads symbols 0, 1 and # (the Θ end marker) from standard input,
runs them through a hardcoded transition table and reports the state change
path, whether the final state is accepting, and the resulting tape value.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := cli.Run(cli.Options{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()})
		if err != nil {
			return err
		}
		if code != cli.ExitSuccess {
			os.Exit(code)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
