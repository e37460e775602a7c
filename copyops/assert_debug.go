//go:build copydebug

package copyops

import "unsafe"

// DebugAssertions reports whether alignment checks are compiled in.
const DebugAssertions = true

// checkAligned panics with an *AlignmentError when count is non-zero and
// either pointer breaks op's alignment. Backward primitives are checked on
// the one-past-the-end pointers they receive.
func checkAligned(op Op, dest, src unsafe.Pointer, count uintptr) {
	if count == 0 {
		return
	}
	g := op.Granularity()
	if !g.Aligned(uintptr(dest)) {
		panic(&AlignmentError{Op: op, Arg: "dest", Addr: uintptr(dest)})
	}
	if !g.Aligned(uintptr(src)) {
		panic(&AlignmentError{Op: op, Arg: "src", Addr: uintptr(src)})
	}
}
