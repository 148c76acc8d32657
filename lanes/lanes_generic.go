//go:build purego || !amd64

package lanes

// Accelerated reports whether the *Vec functions execute vector instructions.
const Accelerated = false

// AddPairVec returns x + y. This is the pure Go fallback implementation.
func AddPairVec(x, y Pair) Pair {
	return AddPair(x, y)
}

// AddQuadVec returns x + y. This is the pure Go fallback implementation.
func AddQuadVec(x, y Quad) Quad {
	return AddQuad(x, y)
}

// MulQuadVec returns x * y. This is the pure Go fallback implementation.
func MulQuadVec(x, y Quad) Quad {
	return MulQuad(x, y)
}
