// Package refdata provides the fixed reference series used by the
// consistency tests and the benchmark harness.
//
// The table has the shape of a VSOP87 periodic series for a planetary
// semi-major axis: one constant term carrying almost all of the value followed
// by 49 periodic terms whose amplitudes decay geometrically. The coefficients
// are fixed literals, so results are reproducible across runs and machines.
package refdata

import "github.com/berquist/simd-examples/series"

// Epoch is the reference evaluation time.
const Epoch = 1989.0

// A0 returns a fresh copy of the reference series; callers may modify it.
func A0() series.Series {
	out := make(series.Series, len(a0))
	copy(out, a0[:])

	return out
}

// Len is the number of terms in the reference series.
const Len = 50

var a0 = [Len]series.Term{
	{A: 1.5236793419, B: 0, C: 0},
	{A: 0.01486465064, B: 1.5802972476, C: 70.69445828},
	{A: 0.01490179789, B: 6.0902888737, C: 84.51359008},
	{A: 0.008065441006, B: 1.8106059163, C: 8052.79209824},
	{A: 0.006631207221, B: 0.8767336359, C: 3621.35730062},
	{A: 0.009121954604, B: 1.0004554581, C: 6640.97570423},
	{A: 0.004300080086, B: 3.9089694201, C: 11048.56265652},
	{A: 0.003866679696, B: 2.348796628, C: 1495.59114594},
	{A: 0.003147843159, B: 5.1905291843, C: 137.85130419},
	{A: 0.003858290028, B: 0.9073025121, C: 1317.22683157},
	{A: 0.002178738518, B: 3.0963151067, C: 3843.36372289},
	{A: 0.002501247062, B: 0.5411802074, C: 8103.819734},
	{A: 0.002108605195, B: 5.809187159, C: 9689.63743993},
	{A: 0.001392126888, B: 6.1814278818, C: 3277.03748307},
	{A: 0.001082184268, B: 4.2835418371, C: 10178.40351866},
	{A: 0.001008141172, B: 1.5021145476, C: 7282.33664351},
	{A: 0.0009500055583, B: 3.5671257549, C: 34.26847488},
	{A: 0.0005768614212, B: 3.8872792386, C: 6393.24671036},
	{A: 0.0007808397413, B: 4.9456148906, C: 7043.86605964},
	{A: 0.0005978010295, B: 2.8951829178, C: 4264.11783138},
	{A: 0.0002846033361, B: 2.1554719077, C: 2073.30950434},
	{A: 0.0002741112651, B: 3.6195440029, C: 3508.96399592},
	{A: 0.0002873187619, B: 0.827617321, C: 7973.68190698},
	{A: 0.0002032248364, B: 1.7696108502, C: 28.33182734},
	{A: 0.0002144341223, B: 2.2145594039, C: 492.55734583},
	{A: 0.0001315926251, B: 2.5735804987, C: 7437.33945668},
	{A: 0.0001238229121, B: 1.4922683971, C: 2925.92439158},
	{A: 0.0001017322772, B: 1.5698924946, C: 8337.51842722},
	{A: 0.000105184571, B: 4.7481595969, C: 7.16948988},
	{A: 6.37692187e-05, B: 0.1329207495, C: 10818.87582414},
	{A: 6.829575669e-05, B: 2.0838421981, C: 44.53805784},
	{A: 5.922916092e-05, B: 4.4858167669, C: 978.17698609},
	{A: 3.008768497e-05, B: 0.9197340719, C: 81.61590078},
	{A: 2.655484747e-05, B: 6.0740409193, C: 7292.93761598},
	{A: 3.141584055e-05, B: 1.3822195162, C: 10651.43574532},
	{A: 2.589260706e-05, B: 5.2212014767, C: 71.51122816},
	{A: 1.554565514e-05, B: 1.0043138655, C: 6313.85642072},
	{A: 1.417205489e-05, B: 3.5393738841, C: 54.40589411},
	{A: 9.408752134e-06, B: 2.4604785331, C: 5879.83208504},
	{A: 8.966612657e-06, B: 2.0790362775, C: 34.92870002},
	{A: 1.307096325e-05, B: 2.0801207296, C: 2215.00928352},
	{A: 7.27968277e-06, B: 4.1314346005, C: 4757.46719759},
	{A: 5.865588875e-06, B: 4.8032507455, C: 755.83484514},
	{A: 4.797931764e-06, B: 0.577664276, C: 27.34615125},
	{A: 5.878110766e-06, B: 1.2822851008, C: 11.89731851},
	{A: 4.381920732e-06, B: 6.2363120259, C: 1551.25743923},
	{A: 4.501801799e-06, B: 4.4966111733, C: 8570.540957},
	{A: 2.522520286e-06, B: 5.2147980508, C: 5580.28844805},
	{A: 2.158598683e-06, B: 5.0321140029, C: 2199.79069899},
	{A: 1.119544867e-06, B: 0.1232820209, C: 50.46564493},
}
