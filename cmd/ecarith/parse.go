package main

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/smallyu/go-ecarith/pkg/curves"
)

// parseBig accepts decimal or 0x-prefixed hexadecimal integers.
func parseBig(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	z, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, errors.Errorf("cannot parse integer %q", s)
	}
	return z, nil
}

// parsePoint accepts "x,y" or "O" for the point at infinity.
func parsePoint(s string) (curves.Point, error) {
	s = strings.TrimSpace(s)
	if s == "O" || s == "o" {
		return curves.Infinity(), nil
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return curves.Point{}, errors.Errorf("cannot parse point %q, want x,y", s)
	}
	x, err := parseBig(parts[0])
	if err != nil {
		return curves.Point{}, err
	}
	y, err := parseBig(parts[1])
	if err != nil {
		return curves.Point{}, err
	}
	return curves.NewPoint(x, y), nil
}

func addCurveFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("a", "a", "", "curve coefficient A")
	cmd.Flags().StringP("b", "b", "", "curve coefficient B")
	cmd.Flags().StringP("p", "p", "", "field modulus")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")
	_ = cmd.MarkFlagRequired("p")
}

func curveFromFlags(cmd *cobra.Command) (*curves.Curve, error) {
	var params [3]*big.Int
	for i, name := range []string{"a", "b", "p"} {
		raw, err := cmd.Flags().GetString(name)
		if err != nil {
			return nil, err
		}
		if params[i], err = parseBig(raw); err != nil {
			return nil, errors.Wrapf(err, "flag --%s", name)
		}
	}
	return curves.New(params[0], params[1], params[2])
}

func pointArgs(args []string) ([]curves.Point, error) {
	pts := make([]curves.Point, len(args))
	for i, arg := range args {
		pt, err := parsePoint(arg)
		if err != nil {
			return nil, err
		}
		pts[i] = pt
	}
	return pts, nil
}
