package cpu

import (
	"runtime"
	"testing"
)

func TestSupportsMatrix(t *testing.T) {
	full := Features{HasSSE2: true, HasAVX: true, HasAVX2: true, HasAVX512: true, HasNEON: true}

	tests := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{"none-always", Features{}, SIMDNone, true},
		{"sse2-missing", Features{}, SIMDSSE2, false},
		{"sse2", Features{HasSSE2: true}, SIMDSSE2, true},
		{"avx", Features{HasAVX: true}, SIMDAVX, true},
		{"avx-needs-avx-flag", Features{HasAVX2: true}, SIMDAVX, false},
		{"avx2", full, SIMDAVX2, true},
		{"avx512", full, SIMDAVX512, true},
		{"neon", full, SIMDNEON, true},
		{"unknown-level", full, SIMDLevel(99), false},
		{"force-generic-avx", Features{HasAVX: true, ForceGeneric: true}, SIMDAVX, false},
		{"force-generic-none", Features{HasAVX: true, ForceGeneric: true}, SIMDNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Supports(tt.features, tt.level); got != tt.want {
				t.Fatalf("Supports(%+v, %v) = %v, want %v", tt.features, tt.level, got, tt.want)
			}
		})
	}
}

func TestForcedFeaturesOverrideQueryAndDetect(t *testing.T) {
	defer ResetDetection()

	SetForcedFeatures(Features{ForceGeneric: true, Architecture: "test"})

	if got := Query(); !got.ForceGeneric || got.Architecture != "test" {
		t.Fatalf("Query ignored forced features: %+v", got)
	}
	if got := DetectFeatures(); !got.ForceGeneric || got.Architecture != "test" {
		t.Fatalf("DetectFeatures ignored forced features: %+v", got)
	}
	if HasAVX() {
		t.Fatal("HasAVX must follow forced features")
	}

	ResetDetection()

	if got := Query(); got.ForceGeneric {
		t.Fatalf("ResetDetection did not clear forced features: %+v", got)
	}
}

func TestQueryMatchesDetect(t *testing.T) {
	ResetDetection()
	defer ResetDetection()

	q := Query()
	d := DetectFeatures()
	if q != d {
		t.Fatalf("Query %+v differs from DetectFeatures %+v", q, d)
	}
	if q.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", q.Architecture, runtime.GOARCH)
	}
	if runtime.GOARCH == "amd64" && !q.HasSSE2 {
		t.Fatal("SSE2 is part of the amd64 baseline")
	}
}

func TestSIMDLevelString(t *testing.T) {
	tests := map[SIMDLevel]string{
		SIMDNone:      "None",
		SIMDSSE2:      "SSE2",
		SIMDAVX:       "AVX",
		SIMDAVX2:      "AVX2",
		SIMDAVX512:    "AVX-512",
		SIMDNEON:      "NEON",
		SIMDLevel(42): "Unknown",
	}
	for level, want := range tests {
		if got := level.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(level), got, want)
		}
	}
}

func TestDetectReportsOnlyOwnArchitecture(t *testing.T) {
	f := detectFeaturesImpl()

	if runtime.GOARCH != "amd64" && (f.HasSSE2 || f.HasAVX || f.HasAVX2 || f.HasAVX512) {
		t.Fatalf("x86 flags set on %s: %+v", runtime.GOARCH, f)
	}
	if runtime.GOARCH != "arm64" && f.HasNEON {
		t.Fatalf("NEON set on %s", runtime.GOARCH)
	}
	if f.HasAVX2 && !f.HasAVX {
		t.Fatalf("AVX2 without AVX: %+v", f)
	}
}
