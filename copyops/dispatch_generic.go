//go:build purego || !(amd64 || arm64 || (arm && armv4t))

package copyops

import "unsafe"

// FastPath names the capability whose bodies this build selected, or ""
// when every primitive runs its portable body.
const FastPath = ""

// ByteForward copies count bytes from src to dest, going upward in address
// value. src may be above dest even when the regions overlap.
func ByteForward(dest, src unsafe.Pointer, count uintptr) {
	byteForwardGeneric(dest, src, count)
}

// ByteBackward copies count bytes from src to dest, going downward. dest and
// src point one past the end of their regions. src may be below dest even
// when the regions overlap.
func ByteBackward(dest, src unsafe.Pointer, count uintptr) {
	byteBackwardGeneric(dest, src, count)
}

// HalfwordForward copies count bytes two at a time, finishing an odd count
// with a single byte. Both pointers must be 2-byte aligned when count > 0.
func HalfwordForward(dest, src unsafe.Pointer, count uintptr) {
	checkAligned(OpHalfwordForward, dest, src, count)
	halfwordForwardGeneric(dest, src, count)
}

// HalfwordBackward is the backward form of HalfwordForward. An odd count
// leaves the lowest byte of the region, copied last.
func HalfwordBackward(dest, src unsafe.Pointer, count uintptr) {
	checkAligned(OpHalfwordBackward, dest, src, count)
	halfwordBackwardGeneric(dest, src, count)
}

// WordForward copies count bytes four at a time, then a halfword and/or a
// byte for the remainder. Both pointers must be 4-byte aligned when
// count > 0.
func WordForward(dest, src unsafe.Pointer, count uintptr) {
	checkAligned(OpWordForward, dest, src, count)
	wordForwardGeneric(dest, src, count)
}

// WordBackward is the backward form of WordForward.
func WordBackward(dest, src unsafe.Pointer, count uintptr) {
	checkAligned(OpWordBackward, dest, src, count)
	wordBackwardGeneric(dest, src, count)
}
