// Package svd_test provides benchmarks for the two SVD phases on
// deterministic random inputs.
package svd_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/lvsvd/matrix"
	"github.com/katalvlaran/lvsvd/svd"
)

// benchShapes are the (rows, cols) pairs to benchmark.
var benchShapes = [][2]int{{32, 32}, {64, 32}, {128, 64}}

// sinks to defeat dead-code elimination
var (
	sinkB *svd.BidiagResult
	sinkR *svd.Result
	sinkA []*svd.Result
)

func BenchmarkBidiagonalize(b *testing.B) {
	b.ReportAllocs()
	for _, sh := range benchShapes {
		b.Run(fmt.Sprintf("%dx%d", sh[0], sh[1]), func(b *testing.B) {
			a := randDense(b, sh[0], sh[1], 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := svd.Bidiagonalize(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkB = r
			}
		})
	}
}

func BenchmarkDecompose(b *testing.B) {
	b.ReportAllocs()
	for _, sh := range benchShapes {
		b.Run(fmt.Sprintf("%dx%d", sh[0], sh[1]), func(b *testing.B) {
			a := randDense(b, sh[0], sh[1], 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := svd.Decompose(a, svd.Economy)
				if err != nil {
					b.Fatal(err)
				}
				sinkR = r
			}
		})
	}
}

func BenchmarkDecomposeAll(b *testing.B) {
	b.ReportAllocs()
	inputs := make([]matrix.Matrix, 16)
	for k := range inputs {
		inputs[k] = randDense(b, 48, 24, int64(k))
	}
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				out, err := svd.DecomposeAll(context.Background(), inputs, svd.Economy, workers)
				if err != nil {
					b.Fatal(err)
				}
				sinkA = out
			}
		})
	}
}
