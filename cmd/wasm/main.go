//go:build js && wasm

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-ecarith/pkg/curves"
	"github.com/smallyu/go-ecarith/pkg/lenstra"
	"github.com/smallyu/go-ecarith/pkg/pairing"
)

func main() {
	c := make(chan struct{})

	fmt.Println("go-ecarith WASM initialized")

	js.Global().Set("GoEcarith", map[string]interface{}{
		"Add":        js.FuncOf(Add),
		"ScalarMult": js.FuncOf(ScalarMult),
		"Order":      js.FuncOf(Order),
		"Weil":       js.FuncOf(Weil),
		"Factor":     js.FuncOf(Factor),
	})

	<-c
}

// Integers cross the JS boundary as decimal strings. A JSON number would lose
// precision above 2^53.

type curveDTO struct {
	A string `json:"a"`
	B string `json:"b"`
	P string `json:"p"`
}

// pointDTO is {"x": "...", "y": "..."}, or {} for the point at infinity.
type pointDTO struct {
	X string `json:"x,omitempty"`
	Y string `json:"y,omitempty"`
}

type request struct {
	Curve curveDTO   `json:"curve"`
	Args  []pointDTO `json:"points"`
	N     string     `json:"n"`
	Bound int        `json:"bound"`
}

// Add computes P + Q.
// Arguments:
// 0: JSON {"curve": {...}, "points": [P, Q]}
// Returns:
// JSON point or an "error: ..." string
func Add(this js.Value, args []js.Value) interface{} {
	c, pts, err := decode(args, 2)
	if err != nil {
		return errString(err)
	}
	r, err := c.Add(pts[0], pts[1])
	if err != nil {
		return errString(err)
	}
	return encodePoint(r)
}

// ScalarMult computes n·P.
// Arguments:
// 0: JSON {"curve": {...}, "points": [P], "n": "..."}
func ScalarMult(this js.Value, args []js.Value) interface{} {
	req, c, pts, err := decodeRequest(args, 1)
	if err != nil {
		return errString(err)
	}
	n, err := parseInt(req.N)
	if err != nil {
		return errString(err)
	}
	r, err := c.ScalarMult(pts[0], n)
	if err != nil {
		return errString(err)
	}
	return encodePoint(r)
}

// Order returns the order of P as a decimal string.
func Order(this js.Value, args []js.Value) interface{} {
	c, pts, err := decode(args, 1)
	if err != nil {
		return errString(err)
	}
	n, err := c.Order(pts[0])
	if err != nil {
		return errString(err)
	}
	return n.String()
}

// Weil computes e_m(P, Q) with auxiliary point S.
// Arguments:
// 0: JSON {"curve": {...}, "points": [P, Q, S], "n": "m"}
func Weil(this js.Value, args []js.Value) interface{} {
	req, c, pts, err := decodeRequest(args, 3)
	if err != nil {
		return errString(err)
	}
	m, err := parseInt(req.N)
	if err != nil {
		return errString(err)
	}
	e, err := pairing.Weil(c, m, pts[0], pts[1], pts[2])
	if err != nil {
		return errString(err)
	}
	return e.String()
}

// Factor runs a single-worker Lenstra search.
// Arguments:
// 0: JSON {"n": "...", "bound": 100}
func Factor(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonParams)"
	}
	var req request
	if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}
	n, err := parseInt(req.N)
	if err != nil {
		return errString(err)
	}

	opts := []lenstra.Option{lenstra.WithWorkers(1)}
	if req.Bound > 0 {
		opts = append(opts, lenstra.WithBound(req.Bound))
	}
	d, err := lenstra.New(opts...).Factor(context.Background(), n)
	if err != nil {
		return errString(err)
	}
	return d.String()
}

// Helpers

func decode(args []js.Value, nPoints int) (*curves.Curve, []curves.Point, error) {
	_, c, pts, err := decodeRequest(args, nPoints)
	return c, pts, err
}

func decodeRequest(args []js.Value, nPoints int) (*request, *curves.Curve, []curves.Point, error) {
	if len(args) != 1 {
		return nil, nil, nil, fmt.Errorf("expected 1 argument (jsonParams)")
	}
	var req request
	if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid json: %v", err)
	}
	if len(req.Args) != nPoints {
		return nil, nil, nil, fmt.Errorf("expected %d points, got %d", nPoints, len(req.Args))
	}

	var params [3]*big.Int
	for i, s := range []string{req.Curve.A, req.Curve.B, req.Curve.P} {
		v, err := parseInt(s)
		if err != nil {
			return nil, nil, nil, err
		}
		params[i] = v
	}
	c, err := curves.New(params[0], params[1], params[2])
	if err != nil {
		return nil, nil, nil, err
	}

	pts := make([]curves.Point, nPoints)
	for i, dto := range req.Args {
		if dto.X == "" && dto.Y == "" {
			pts[i] = curves.Infinity()
			continue
		}
		x, err := parseInt(dto.X)
		if err != nil {
			return nil, nil, nil, err
		}
		y, err := parseInt(dto.Y)
		if err != nil {
			return nil, nil, nil, err
		}
		pts[i] = curves.NewPoint(x, y)
	}
	return &req, c, pts, nil
}

func parseInt(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return v, nil
}

func encodePoint(pt curves.Point) string {
	var dto pointDTO
	if !pt.IsInfinity() {
		dto.X = pt.X().String()
		dto.Y = pt.Y().String()
	}
	b, _ := json.Marshal(dto)
	return string(b)
}

func errString(err error) string {
	return "error: " + err.Error()
}
