package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smallyu/go-ecarith/internal/protocol/ecdh"
)

func getECDHCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ecdh [PEER]",
		Short: "Print the public key, or the shared point with PEER's public key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := curveFromFlags(cmd)
			if err != nil {
				return err
			}
			rawBase, _ := cmd.Flags().GetString("base")
			base, err := parsePoint(rawBase)
			if err != nil {
				return err
			}
			rawSecret, _ := cmd.Flags().GetString("secret")
			secret, err := parseBig(rawSecret)
			if err != nil {
				return err
			}

			kx := ecdh.New(c, base, secret)
			if len(args) == 0 {
				pub, err := kx.PublicKey()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), pub)
				return nil
			}

			peer, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			shared, err := kx.SharedPoint(peer)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), shared)
			return nil
		},
	}
	addCurveFlags(cmd)
	cmd.Flags().String("base", "", "base point x,y")
	cmd.Flags().String("secret", "", "secret multiplier")
	_ = cmd.MarkFlagRequired("base")
	_ = cmd.MarkFlagRequired("secret")
	return cmd
}
