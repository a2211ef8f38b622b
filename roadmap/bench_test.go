// SPDX-License-Identifier: MIT
package roadmap_test

import (
	"testing"

	"github.com/katalvlaran/lvroad/core"
	"github.com/katalvlaran/lvroad/nn"
	"github.com/katalvlaran/lvroad/roadmap"
	"github.com/katalvlaran/lvroad/space"
)

func benchmarkGenerate(b *testing.B, dim int, newIndex func(sp *space.RealVector) nn.Index) {
	sp, err := space.NewRealVector(space.NewBounds(dim, 0, 1))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r, err := roadmap.New(sp, core.NewGraph(), newIndex(sp),
			roadmap.WithNumPerBatch(100), roadmap.WithRadiusFirstBatch(0.3), roadmap.WithSeed(uint64(i)))
		if err != nil {
			b.Fatal(err)
		}
		if err = r.Initialize(); err != nil {
			b.Fatal(err)
		}
		for k := 0; k < 5; k++ {
			if err = r.Generate(); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkGenerate_Linear2D(b *testing.B) {
	benchmarkGenerate(b, 2, func(sp *space.RealVector) nn.Index { return nn.NewLinear(sp.Distance) })
}

func BenchmarkGenerate_KDTree2D(b *testing.B) {
	benchmarkGenerate(b, 2, func(sp *space.RealVector) nn.Index { return nn.NewKDTree(sp.Dimension()) })
}

func BenchmarkGenerate_KDTree6D(b *testing.B) {
	benchmarkGenerate(b, 6, func(sp *space.RealVector) nn.Index { return nn.NewKDTree(sp.Dimension()) })
}
