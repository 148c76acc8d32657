package series

import (
	"errors"
	"fmt"
	"strings"

	"github.com/berquist/simd-examples/internal/cpu"
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognised names.
var ErrUnknownStrategy = errors.New("series: unknown strategy")

// Strategy selects one of the series evaluators.
type Strategy int

const (
	// Naive is Evaluate.
	Naive Strategy = iota
	// Inline is EvaluateInline.
	Inline
	// Vector is EvaluateVector (capability dispatch).
	Vector
	// VectorInner is EvaluateVectorInner (no capability check).
	VectorInner
)

var strategyNames = [...]string{
	Naive:       "naive",
	Inline:      "inline",
	Vector:      "vector",
	VectorInner: "vector-inner",
}

var strategyFuncs = [...]func(float64, Series) float64{
	Naive:       Evaluate,
	Inline:      EvaluateInline,
	Vector:      EvaluateVector,
	VectorInner: EvaluateVectorInner,
}

// Strategies returns every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{Naive, Inline, Vector, VectorInner}
}

// String returns the strategy's command-line name.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// ParseStrategy resolves a name as printed by String (case-insensitive).
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Available reports whether the strategy may run on this processor. Only
// VectorInner can be unavailable.
func (s Strategy) Available() bool {
	switch s {
	case Naive, Inline, Vector:
		return true
	case VectorInner:
		return cpu.Supports(cpu.Query(), nativeKernel().SIMDLevel)
	default:
		return false
	}
}

// Func returns the evaluator behind s. It panics for an undefined strategy.
func (s Strategy) Func() func(float64, Series) float64 {
	if s < 0 || int(s) >= len(strategyFuncs) {
		panic("series: undefined strategy " + s.String())
	}

	return strategyFuncs[s]
}

// Evaluate runs the strategy on terms at time t.
func (s Strategy) Evaluate(t float64, terms Series) float64 {
	return s.Func()(t, terms)
}
