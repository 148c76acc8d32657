//go:build amd64 && !purego

package lanes

// Accelerated reports whether the *Vec functions execute vector instructions.
const Accelerated = true

// AddPairVec returns x + y computed with a single SSE2 ADDPD.
// SSE2 is part of the amd64 baseline, so there is no precondition.
func AddPairVec(x, y Pair) Pair {
	var dst Pair
	addPairSSE2(&dst, &x, &y)
	return dst
}

// AddQuadVec returns x + y computed with a single AVX VADDPD on unaligned loads.
//
// Precondition: the processor supports AVX. Calling it on a processor
// without AVX faults with an illegal instruction.
func AddQuadVec(x, y Quad) Quad {
	var dst Quad
	addQuadAVX(&dst, &x, &y)
	return dst
}

// MulQuadVec returns x * y computed with a single AVX VMULPD on unaligned loads.
//
// Precondition: the processor supports AVX.
func MulQuadVec(x, y Quad) Quad {
	var dst Quad
	mulQuadAVX(&dst, &x, &y)
	return dst
}

// Assembly function declarations (implemented in lanes_amd64.s)

//go:noescape
func addPairSSE2(dst, x, y *Pair)

//go:noescape
func addQuadAVX(dst, x, y *Quad)

//go:noescape
func mulQuadAVX(dst, x, y *Quad)
