package curves

import (
	"math/big"
	"testing"
)

func BenchmarkAdd(b *testing.B) {
	c, _ := NewInt64(14, 19, 3623)
	p := NewPointInt64(6, 730)
	q, _ := c.ScalarMultInt64(p, 947)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Add(p, q)
	}
}

func BenchmarkScalarMult(b *testing.B) {
	b.Run("toy curve", func(b *testing.B) {
		c, _ := NewInt64(14, 19, 3623)
		p := NewPointInt64(6, 730)
		n := big.NewInt(947)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = c.ScalarMult(p, n)
		}
	})

	b.Run("secp256k1", func(b *testing.B) {
		params := Secp256k1()
		k := new(big.Int).Sub(params.N, big.NewInt(12345))

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = params.Curve.ScalarMult(params.G, k)
		}
	})
}

func BenchmarkOrder(b *testing.B) {
	c, _ := NewInt64(14, 19, 3623)
	p := NewPointInt64(6, 730)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Order(p)
	}
}
