// Package gocopy provides small, allocation-free memory copy primitives
// with portable Go bodies and per-architecture fast paths.
//
// The six primitives in package copyops are re-exported here together with
// memcpy and memmove style entry points that pick the widest primitive the
// pointers allow.
package gocopy

import (
	"unsafe"

	"github.com/harriteja/GoCopy/capability"
	"github.com/harriteja/GoCopy/copyops"
)

// ByteForward copies count bytes upward from the region starts.
func ByteForward(dest, src unsafe.Pointer, count uintptr) {
	copyops.ByteForward(dest, src, count)
}

// ByteBackward copies count bytes downward; dest and src point one past the
// end of their regions.
func ByteBackward(dest, src unsafe.Pointer, count uintptr) {
	copyops.ByteBackward(dest, src, count)
}

// HalfwordForward is ByteForward moving two bytes per step. Both pointers
// must be 2-byte aligned.
func HalfwordForward(dest, src unsafe.Pointer, count uintptr) {
	copyops.HalfwordForward(dest, src, count)
}

// HalfwordBackward is ByteBackward moving two bytes per step. Both end
// pointers must be 2-byte aligned.
func HalfwordBackward(dest, src unsafe.Pointer, count uintptr) {
	copyops.HalfwordBackward(dest, src, count)
}

// WordForward is ByteForward moving four bytes per step. Both pointers must
// be 4-byte aligned.
func WordForward(dest, src unsafe.Pointer, count uintptr) {
	copyops.WordForward(dest, src, count)
}

// WordBackward is ByteBackward moving four bytes per step. Both end pointers
// must be 4-byte aligned.
func WordBackward(dest, src unsafe.Pointer, count uintptr) {
	copyops.WordBackward(dest, src, count)
}

// Implementation returns the name of the fast path compiled into this binary.
func Implementation() string {
	return capability.ImplementationName(capability.Implementation())
}

// widest returns the largest granularity both addresses are aligned to.
func widest(a, b uintptr) copyops.Granularity {
	switch x := a | b; {
	case copyops.Word.Aligned(x):
		return copyops.Word
	case copyops.Halfword.Aligned(x):
		return copyops.Halfword
	default:
		return copyops.Byte
	}
}

// Memcpy copies n bytes from src to dest. The regions may overlap only
// when src >= dest.
func Memcpy(dest, src unsafe.Pointer, n uintptr) {
	if n == 0 {
		return
	}
	switch widest(uintptr(dest), uintptr(src)) {
	case copyops.Word:
		copyops.WordForward(dest, src, n)
	case copyops.Halfword:
		copyops.HalfwordForward(dest, src, n)
	default:
		copyops.ByteForward(dest, src, n)
	}
}

// Memmove copies n bytes between regions that may overlap in any way.
//
// The end pointers of a backward copy may point at the next object.
//
//go:nocheckptr
func Memmove(dest, src unsafe.Pointer, n uintptr) {
	if n == 0 || dest == src {
		return
	}
	if uintptr(src) >= uintptr(dest) {
		Memcpy(dest, src, n)
		return
	}

	dend, send := unsafe.Add(dest, n), unsafe.Add(src, n)
	switch widest(uintptr(dend), uintptr(send)) {
	case copyops.Word:
		copyops.WordBackward(dend, send, n)
	case copyops.Halfword:
		copyops.HalfwordBackward(dend, send, n)
	default:
		copyops.ByteBackward(dend, send, n)
	}
}

// Copy copies min(len(dst), len(src)) bytes from src to dst and returns the
// number copied. Like the builtin copy, dst and src may overlap.
func Copy(dst, src []byte) int {
	n := min(len(dst), len(src))
	if n == 0 {
		return 0
	}
	Memmove(unsafe.Pointer(unsafe.SliceData(dst)), unsafe.Pointer(unsafe.SliceData(src)), uintptr(n))
	return n
}
