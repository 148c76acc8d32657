// Package series evaluates weighted cosine series
//
//	S(t) = Σ aᵢ·cos(bᵢ + cᵢ·t)
//
// over an ordered list of [Term] coefficients, using several strategies whose
// relative cost is the object of study:
//
//   - [Evaluate]: naive left fold through a per-term helper.
//   - [EvaluateInline]: the same fold with the term expression inlined.
//   - [EvaluateVector]: capability dispatch. Probes the processor on every
//     call and runs the 4-lane vector path when AVX is present, or a scalar
//     fold otherwise.
//   - [EvaluateVectorInner]: the 4-lane vector path without any check.
//   - [BlockEvaluator]: structure-of-arrays evaluation on algo-vecmath block
//     kernels.
//
// # Vector path
//
// Terms are consumed in chunks of four. Each full chunk packs its a, b and c
// coefficients into three 4-lane vectors, computes c·t + b with vector
// multiply and add, drops to scalar lanes for the cosine (there is no vector
// cosine instruction), repacks, multiplies by a and unpacks four partial terms.
// A trailing chunk of three pads the fourth lane with NaN and discards it;
// trailing chunks of one or two terms are evaluated with the scalar formula.
//
// All strategies agree with [Evaluate] to within [Tolerance] on finite input.
// Every path rounds c·t before adding b and rounds each term before
// accumulating, so fused multiply-add contraction cannot make the paths
// diverge per term; only summation order differs.
//
// Evaluators are pure and may be called concurrently. BlockEvaluator is the
// exception: it owns scratch buffers.
package series
