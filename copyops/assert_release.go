//go:build !copydebug

package copyops

import "unsafe"

// DebugAssertions reports whether alignment checks are compiled in.
const DebugAssertions = false

func checkAligned(Op, unsafe.Pointer, unsafe.Pointer, uintptr) {}
