//go:build amd64 && !purego

package avx

import (
	"testing"

	"github.com/berquist/simd-examples/internal/cpu"
	"github.com/berquist/simd-examples/lanes"
	"github.com/berquist/simd-examples/series/internal/arch/registry"
)

func TestAVXRegistered(t *testing.T) {
	entry := registry.Global.Find("avx")
	if entry == nil {
		t.Fatal("avx backend not registered")
	}
	if entry.SIMDLevel != cpu.SIMDAVX {
		t.Fatalf("SIMDLevel = %v, want AVX", entry.SIMDLevel)
	}
	if entry.Add == nil || entry.Mul == nil {
		t.Fatal("avx backend missing operations")
	}
}

func TestAVXOps(t *testing.T) {
	if !cpu.HasAVX() {
		t.Skip("AVX not available on this processor")
	}

	entry := registry.Global.Find("avx")
	x := lanes.Set(1, 2, 3, 4)
	y := lanes.Set1(0.5)

	sum := entry.Add(x, y)
	prod := entry.Mul(x, y)

	if sum != lanes.Set(1.5, 2.5, 3.5, 4.5) {
		t.Fatalf("Add = %v", sum)
	}
	if prod != lanes.Set(0.5, 1, 1.5, 2) {
		t.Fatalf("Mul = %v", prod)
	}
}
