//go:build linux || darwin || freebsd || netbsd || openbsd

package arena

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Map allocates a page-aligned arena of size bytes outside the Go heap.
// Close must be called to unmap it.
func Map(size int) (*Arena, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap arena: %w", err)
	}
	return fromMapping(mem, unix.Munmap), nil
}

// GuardPage maps one page with no access rights. Any load or store through
// the returned pointer faults, which makes it a probe for code that must not
// dereference its arguments. release unmaps the page.
func GuardPage() (p unsafe.Pointer, release func() error, err error) {
	mem, err := unix.Mmap(-1, 0, unix.Getpagesize(), unix.PROT_NONE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("mmap guard page: %w", err)
	}
	return unsafe.Pointer(unsafe.SliceData(mem)), func() error { return unix.Munmap(mem) }, nil
}
