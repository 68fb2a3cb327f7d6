package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func GetRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ecarith",
		Short:         "Elliptic curve arithmetic over prime fields",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(getAddCommand())
	rootCmd.AddCommand(getMulCommand())
	rootCmd.AddCommand(getOrderCommand())
	rootCmd.AddCommand(getPairingCommand())
	rootCmd.AddCommand(getFactorCommand())
	rootCmd.AddCommand(getECDHCommand())
	rootCmd.AddCommand(getVersionCommand())
	return rootCmd
}

func getVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the binary version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
