//go:build (amd64 || arm64) && !purego

package copyops

import "unsafe"

// Both targets tolerate unaligned loads and stores, so a single pair of
// bodies serves every granularity. Each doubleword is loaded in full before
// it is stored, which keeps the permitted overlaps intact.

func move64(dest, src unsafe.Pointer) {
	*(*uint64)(dest) = *(*uint64)(src)
}

// forward64 moves eight bytes per iteration, then resolves the remainder
// (0..7) by testing bits 2, 1 and 0 in that order.
func forward64(dest, src unsafe.Pointer, count uintptr) {
	var off uintptr
	for ; count >= 8; count -= 8 {
		move64(unsafe.Add(dest, off), unsafe.Add(src, off))
		off += 8
	}
	if count&0b100 != 0 {
		move32(unsafe.Add(dest, off), unsafe.Add(src, off))
		off += 4
	}
	if count&0b10 != 0 {
		move16(unsafe.Add(dest, off), unsafe.Add(src, off))
		off += 2
	}
	if count&0b1 != 0 {
		move8(unsafe.Add(dest, off), unsafe.Add(src, off))
	}
}

//go:nocheckptr
func backward64(dest, src unsafe.Pointer, count uintptr) {
	for ; count >= 8; count -= 8 {
		dest = unsafe.Add(dest, -8)
		src = unsafe.Add(src, -8)
		move64(dest, src)
	}
	if count&0b100 != 0 {
		dest = unsafe.Add(dest, -4)
		src = unsafe.Add(src, -4)
		move32(dest, src)
	}
	if count&0b10 != 0 {
		dest = unsafe.Add(dest, -2)
		src = unsafe.Add(src, -2)
		move16(dest, src)
	}
	if count&0b1 != 0 {
		dest = unsafe.Add(dest, -1)
		src = unsafe.Add(src, -1)
		move8(dest, src)
	}
}
