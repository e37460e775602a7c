package capability

import "golang.org/x/sys/cpu"

// detectFeaturesImpl reads the 32-bit ARM hardware capabilities. They are
// only populated where the kernel exposes them (Linux HWCAP).
func detectFeaturesImpl(f *Features) {
	f.HasHalf = cpu.ARM.HasHALF
	f.HasThumb = cpu.ARM.HasTHUMB
}
