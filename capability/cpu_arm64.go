package capability

import "golang.org/x/sys/cpu"

// detectFeaturesImpl provides ARM64 specific CPU feature detection
func detectFeaturesImpl(f *Features) {
	f.HasASIMD = cpu.ARM64.HasASIMD
}
