// Package capability describes which processor capabilities can supply fast
// paths for the copy primitives, and which one this binary was built with.
//
// Selection happens at build time through build constraints; nothing here
// switches bodies at run time. The detected host features are reported for
// diagnostics only.
package capability

import (
	"runtime"
	"sync"

	"github.com/harriteja/GoCopy/copyops"
)

// Capability is one entry of the build-time feature table.
type Capability struct {
	// Name matches copyops.FastPath when this capability is compiled in.
	Name string

	// BuildTag is the constraint that compiles the fast path.
	BuildTag string

	Description string

	// Ops lists the primitives the capability accelerates.
	Ops []copyops.Op
}

// Table lists every known capability.
var Table = []Capability{
	{
		Name:     "armv4t",
		BuildTag: "arm && armv4t && !purego",
		Description: "ARMv4T assembly loops with halfword transfers; " +
			"code placement in fast on-chip memory is left to the linker script",
		Ops: copyops.Ops,
	},
	{
		Name:        "wide64",
		BuildTag:    "(amd64 || arm64) && !purego",
		Description: "doubleword loops relying on unaligned access support",
		Ops:         copyops.Ops,
	},
}

// Lookup returns the table entry called name.
func Lookup(name string) (Capability, bool) {
	for _, c := range Table {
		if c.Name == name {
			return c, true
		}
	}
	return Capability{}, false
}

// Compiled returns the capability built into this binary. ok is false when
// every primitive uses its portable body.
func Compiled() (c Capability, ok bool) {
	if copyops.FastPath == "" {
		return Capability{}, false
	}
	return Lookup(copyops.FastPath)
}

// Accelerates reports whether op runs a fast path in this build.
func Accelerates(op copyops.Op) bool {
	c, ok := Compiled()
	if !ok {
		return false
	}
	for _, o := range c.Ops {
		if o == op {
			return true
		}
	}
	return false
}

// Implementation types
const (
	ImplGeneric = iota // Portable Go bodies
	ImplARMv4T         // ARMv4T assembly
	ImplWide64         // 64-bit unaligned loops
)

// Implementation returns the implementation compiled into this binary.
func Implementation() int {
	switch copyops.FastPath {
	case "armv4t":
		return ImplARMv4T
	case "wide64":
		return ImplWide64
	default:
		return ImplGeneric
	}
}

// ImplementationName returns a string name for the implementation type
func ImplementationName(impl int) string {
	switch impl {
	case ImplGeneric:
		return "Generic"
	case ImplARMv4T:
		return "ARMv4T"
	case ImplWide64:
		return "Wide64"
	default:
		return "Unknown"
	}
}

// Features represents host CPU feature flags relevant to the fast paths.
type Features struct {
	Arch string

	// ARM (32-bit)
	HasHalf  bool // LDRH/STRH halfword transfers
	HasThumb bool

	// x86-64
	HasSSE2 bool
	HasAVX2 bool

	// ARM64
	HasASIMD bool
}

var (
	features   Features
	detectOnce sync.Once
)

// DetectFeatures runs host feature detection once and returns the result.
func DetectFeatures() Features {
	detectOnce.Do(func() {
		features = Features{Arch: runtime.GOARCH}
		detectFeaturesImpl(&features)
	})
	return features
}

// Supported reports whether the detected host can execute c's fast path.
// On targets without an operating system the detector sees nothing, so a
// false result there means "unknown" rather than "absent".
func Supported(c Capability) bool {
	f := DetectFeatures()
	switch c.Name {
	case "armv4t":
		return f.Arch == "arm" && f.HasHalf && f.HasThumb
	case "wide64":
		return f.Arch == "amd64" || f.Arch == "arm64"
	default:
		return false
	}
}
