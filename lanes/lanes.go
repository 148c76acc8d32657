package lanes

// Width is the number of float64 lanes in a Quad.
const Width = 4

// Pair holds two float64 lanes.
type Pair [2]float64

// Quad holds four float64 lanes.
type Quad [Width]float64

// Set packs four scalars the way a hardware set instruction does: the last
// argument lands in lane 0.
//
// Precondition: exactly four values in logical order x1..x4.
func Set(x1, x2, x3, x4 float64) Quad {
	return Quad{x4, x3, x2, x1}
}

// Set1 broadcasts x into every lane.
func Set1(x float64) Quad {
	return Quad{x, x, x, x}
}

// Unpack returns the lanes in memory order, lane 0 first. For a Quad built
// with Set(x1, x2, x3, x4) this yields (x4, x3, x2, x1).
func (q *Quad) Unpack() (l0, l1, l2, l3 float64) {
	return q[0], q[1], q[2], q[3]
}

// AddPair returns x + y lane by lane.
func AddPair(x, y Pair) Pair {
	return Pair{x[0] + y[0], x[1] + y[1]}
}

// AddQuad returns x + y lane by lane.
func AddQuad(x, y Quad) Quad {
	return Quad{x[0] + y[0], x[1] + y[1], x[2] + y[2], x[3] + y[3]}
}

// MulQuad returns x * y lane by lane.
func MulQuad(x, y Quad) Quad {
	return Quad{x[0] * y[0], x[1] * y[1], x[2] * y[2], x[3] * y[3]}
}
