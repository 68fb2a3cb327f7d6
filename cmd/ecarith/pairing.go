package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smallyu/go-ecarith/pkg/pairing"
)

func getPairingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pairing m P Q S",
		Short: "Compute the Weil pairing of P and Q with auxiliary point S",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := curveFromFlags(cmd)
			if err != nil {
				return err
			}
			m, err := parseBig(args[0])
			if err != nil {
				return err
			}
			pts, err := pointArgs(args[1:])
			if err != nil {
				return err
			}
			e, err := pairing.Weil(c, m, pts[0], pts[1], pts[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), e)
			return nil
		},
	}
	addCurveFlags(cmd)
	return cmd
}
