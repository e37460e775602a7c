package copyops

import "unsafe"

// The portable bodies below are compiled on every target. Forward bodies
// index from the region start with a running offset so they never form a
// pointer past the last byte they touch. Backward bodies retreat both
// pointers before each store, which keeps the highest byte written before
// the walk reaches source bytes still waiting to be read.

func move8(dest, src unsafe.Pointer) {
	*(*uint8)(dest) = *(*uint8)(src)
}

func move16(dest, src unsafe.Pointer) {
	*(*uint16)(dest) = *(*uint16)(src)
}

func move32(dest, src unsafe.Pointer) {
	*(*uint32)(dest) = *(*uint32)(src)
}

func byteForwardGeneric(dest, src unsafe.Pointer, count uintptr) {
	for off := uintptr(0); off < count; off++ {
		move8(unsafe.Add(dest, off), unsafe.Add(src, off))
	}
}

// dest and src arrive one past the end; checkptr would reject that even
// though every byte touched lies inside the region.
//
//go:nocheckptr
func byteBackwardGeneric(dest, src unsafe.Pointer, count uintptr) {
	for count > 0 {
		dest = unsafe.Add(dest, -1)
		src = unsafe.Add(src, -1)
		move8(dest, src)
		count--
	}
}

func halfwordForwardGeneric(dest, src unsafe.Pointer, count uintptr) {
	var off uintptr
	for ; count >= 2; count -= 2 {
		move16(unsafe.Add(dest, off), unsafe.Add(src, off))
		off += 2
	}
	// An odd count leaves the last byte, at the current offset.
	if count&1 != 0 {
		move8(unsafe.Add(dest, off), unsafe.Add(src, off))
	}
}

//go:nocheckptr
func halfwordBackwardGeneric(dest, src unsafe.Pointer, count uintptr) {
	for ; count >= 2; count -= 2 {
		dest = unsafe.Add(dest, -2)
		src = unsafe.Add(src, -2)
		move16(dest, src)
	}
	// An odd count leaves the lowest byte of the region.
	if count&1 != 0 {
		dest = unsafe.Add(dest, -1)
		src = unsafe.Add(src, -1)
		move8(dest, src)
	}
}

func wordForwardGeneric(dest, src unsafe.Pointer, count uintptr) {
	var off uintptr
	for ; count >= 4; count -= 4 {
		move32(unsafe.Add(dest, off), unsafe.Add(src, off))
		off += 4
	}
	// count is now 0..3; bit 1 and bit 0 are independent steps.
	if count&0b10 != 0 {
		move16(unsafe.Add(dest, off), unsafe.Add(src, off))
		off += 2
	}
	if count&0b1 != 0 {
		move8(unsafe.Add(dest, off), unsafe.Add(src, off))
	}
}

//go:nocheckptr
func wordBackwardGeneric(dest, src unsafe.Pointer, count uintptr) {
	for ; count >= 4; count -= 4 {
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
