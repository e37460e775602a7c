//go:build arm && armv4t && !purego

package copyops

import "unsafe"

// FastPath names the capability whose bodies this build selected.
const FastPath = "armv4t"

// Implemented in copy_armv4t_arm.s.

//go:noescape
func byteForwardARM(dest, src unsafe.Pointer, count uintptr)

//go:noescape
func byteBackwardARM(dest, src unsafe.Pointer, count uintptr)

//go:noescape
func halfwordForwardARM(dest, src unsafe.Pointer, count uintptr)

//go:noescape
func halfwordBackwardARM(dest, src unsafe.Pointer, count uintptr)

//go:noescape
func wordForwardARM(dest, src unsafe.Pointer, count uintptr)

//go:noescape
func wordBackwardARM(dest, src unsafe.Pointer, count uintptr)

// ByteForward copies count bytes from src to dest, going upward in address
// value. src may be above dest even when the regions overlap.
func ByteForward(dest, src unsafe.Pointer, count uintptr) {
	byteForwardARM(dest, src, count)
}

// ByteBackward copies count bytes from src to dest, going downward. dest and
// src point one past the end of their regions. src may be below dest even
// when the regions overlap.
func ByteBackward(dest, src unsafe.Pointer, count uintptr) {
	byteBackwardARM(dest, src, count)
}

// HalfwordForward copies count bytes two at a time, finishing an odd count
// with a single byte. Both pointers must be 2-byte aligned when count > 0.
func HalfwordForward(dest, src unsafe.Pointer, count uintptr) {
	checkAligned(OpHalfwordForward, dest, src, count)
	halfwordForwardARM(dest, src, count)
}

// HalfwordBackward is the backward form of HalfwordForward. An odd count
// leaves the lowest byte of the region, copied last.
func HalfwordBackward(dest, src unsafe.Pointer, count uintptr) {
	checkAligned(OpHalfwordBackward, dest, src, count)
	halfwordBackwardARM(dest, src, count)
}

// WordForward copies count bytes four at a time, then a halfword and/or a
// byte for the remainder. Both pointers must be 4-byte aligned when
// count > 0.
func WordForward(dest, src unsafe.Pointer, count uintptr) {
	checkAligned(OpWordForward, dest, src, count)
	wordForwardARM(dest, src, count)
}

// WordBackward is the backward form of WordForward.
func WordBackward(dest, src unsafe.Pointer, count uintptr) {
	checkAligned(OpWordBackward, dest, src, count)
	wordBackwardARM(dest, src, count)
}
