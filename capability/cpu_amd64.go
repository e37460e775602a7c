package capability

import "golang.org/x/sys/cpu"

// detectFeaturesImpl provides x86-64 specific CPU feature detection
func detectFeaturesImpl(f *Features) {
	f.HasSSE2 = cpu.X86.HasSSE2
	f.HasAVX2 = cpu.X86.HasAVX2
}
