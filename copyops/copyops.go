// Package copyops provides the low-level memory copy primitives: byte,
// halfword and word granularity, each in a forward and a backward flavor.
//
// Every primitive has the shape
//
//	op(dest, src unsafe.Pointer, count uintptr)
//
// and copies count bytes. Forward primitives take the start of each region
// and walk upward. Backward primitives take the address one past the end of
// each region and walk downward, so that a block can be shifted toward
// higher addresses in place.
//
// Callers must uphold the following, none of which is checked in a normal
// build:
//   - When count is zero neither pointer is dereferenced, so both may be
//     nil or otherwise invalid.
//   - When count is non-zero both pointers are valid for count bytes in
//     the direction of the operation, and halfword and word primitives
//     require both pointers to be aligned to their granularity.
//   - The regions are disjoint, identical, or overlap in the direction of
//     the copy: src >= dest for forward primitives, src <= dest for
//     backward ones. Any other overlap gives unspecified results.
//
// Each primitive has a portable body and, on some targets, a fast path
// chosen by build constraints (see FastPath). Both produce the same bytes
// for every legal input.
package copyops

import "unsafe"

// Func is the signature shared by all six primitives.
type Func func(dest, src unsafe.Pointer, count uintptr)

// Granularity is the number of bytes moved per main-loop iteration.
type Granularity uintptr

const (
	Byte     Granularity = 1
	Halfword Granularity = 2
	Word     Granularity = 4
)

// String returns a human-readable name for this granularity.
func (g Granularity) String() string {
	switch g {
	case Byte:
		return "byte"
	case Halfword:
		return "halfword"
	case Word:
		return "word"
	default:
		return "unknown"
	}
}

// Aligned reports whether p is aligned to g.
func (g Granularity) Aligned(p uintptr) bool {
	return p&(uintptr(g)-1) == 0
}

// Direction is the traversal order of a primitive.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Op identifies one of the six primitives.
type Op int

const (
	OpByteForward Op = iota
	OpByteBackward
	OpHalfwordForward
	OpHalfwordBackward
	OpWordForward
	OpWordBackward
)

// Ops lists every primitive in declaration order.
var Ops = []Op{
	OpByteForward,
	OpByteBackward,
	OpHalfwordForward,
	OpHalfwordBackward,
	OpWordForward,
	OpWordBackward,
}

// Granularity returns the chunk size of op's main loop.
func (op Op) Granularity() Granularity {
	switch op {
	case OpHalfwordForward, OpHalfwordBackward:
		return Halfword
	case OpWordForward, OpWordBackward:
		return Word
	default:
		return Byte
	}
}

// Direction returns the traversal order of op.
func (op Op) Direction() Direction {
	switch op {
	case OpByteBackward, OpHalfwordBackward, OpWordBackward:
		return Backward
	default:
		return Forward
	}
}

func (op Op) String() string {
	if op < OpByteForward || op > OpWordBackward {
		return "unknown"
	}
	return op.Granularity().String() + "-" + op.Direction().String()
}

// Func returns the body of op selected for this build.
func (op Op) Func() Func {
	switch op {
	case OpByteForward:
		return ByteForward
	case OpByteBackward:
		return ByteBackward
	case OpHalfwordForward:
		return HalfwordForward
	case OpHalfwordBackward:
		return HalfwordBackward
	case OpWordForward:
		return WordForward
	case OpWordBackward:
		return WordBackward
	default:
		return nil
	}
}

// Generic returns the portable body of op, regardless of which fast path
// this build selected.
func (op Op) Generic() Func {
	switch op {
	case OpByteForward:
		return byteForwardGeneric
	case OpByteBackward:
		return byteBackwardGeneric
	case OpHalfwordForward:
		return halfwordForwardGeneric
	case OpHalfwordBackward:
		return halfwordBackwardGeneric
	case OpWordForward:
		return wordForwardGeneric
	case OpWordBackward:
		return wordBackwardGeneric
	default:
		return nil
	}
}
