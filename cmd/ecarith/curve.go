package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func getAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add P Q",
		Short: "Add two points",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := curveFromFlags(cmd)
			if err != nil {
				return err
			}
			pts, err := pointArgs(args)
			if err != nil {
				return err
			}
			r, err := c.Add(pts[0], pts[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		},
	}
	addCurveFlags(cmd)
	return cmd
}

func getMulCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mul P n",
		Short: "Multiply a point by a scalar with double-and-add",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := curveFromFlags(cmd)
			if err != nil {
				return err
			}
			pt, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			n, err := parseBig(args[1])
			if err != nil {
				return err
			}
			r, err := c.ScalarMult(pt, n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		},
	}
	addCurveFlags(cmd)
	return cmd
}

func getOrderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order P",
		Short: "Compute the order of a point by linear search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := curveFromFlags(cmd)
			if err != nil {
				return err
			}
			pt, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			n, err := c.Order(pt)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
	addCurveFlags(cmd)
	return cmd
}
