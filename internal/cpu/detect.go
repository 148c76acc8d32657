package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl reads the flags golang.org/x/sys/cpu collected at
// program start. X86 and ARM64 are zero-valued on other architectures, so no
// build tags are needed. HasAVX already includes the OS check for YMM state.
func detectFeaturesImpl() Features {
	f := Features{Architecture: runtime.GOARCH}

	switch runtime.GOARCH {
	case "amd64":
		f.HasSSE2 = cpu.X86.HasSSE2
		f.HasAVX = cpu.X86.HasAVX
		f.HasAVX2 = cpu.X86.HasAVX2
		f.HasAVX512 = cpu.X86.HasAVX512F
	case "arm64":
		f.HasNEON = cpu.ARM64.HasASIMD
	}

	return f
}
