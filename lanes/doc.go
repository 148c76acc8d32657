// Package lanes is the pack/unpack boundary between scalar float64 values and
// fixed-width vector registers.
//
// A [Quad] is the in-memory image of one 256-bit register holding four
// float64 lanes; a [Pair] is one 128-bit register holding two. Lane 0 is the
// lowest-addressed element, which is how x86 lays lanes out in memory.
//
// [Set] mirrors the hardware "set" instruction and therefore REVERSES its
// arguments: Set(x1, x2, x3, x4) puts x4 in lane 0 and x1 in lane 3.
// [Unpack] returns the lanes in memory order (lane 0 first). Callers that pack
// with Set must unpack symmetrically; the series kernel does so and never lets
// the reversed order escape.
//
// Element-wise arithmetic comes in two flavours:
//
//   - AddPair, AddQuad, MulQuad: manual per-lane Go.
//   - AddPairVec, AddQuadVec, MulQuadVec: one vector instruction per
//     operation. On amd64 these are SSE2 (Pair) and AVX (Quad) assembly and
//     the caller must guarantee the extension is present. With the purego
//     tag or on other architectures they are portable Go.
//
// Operands and results are passed by value so that packed quads stay on the
// caller's stack even when the functions are reached through function values.
package lanes
