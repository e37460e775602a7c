//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package arena

import (
	"fmt"
	"unsafe"
)

// Map falls back to a heap arena where anonymous mappings are unavailable.
func Map(size int) (*Arena, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return New(size), nil
}

// GuardPage is not available on this platform.
func GuardPage() (unsafe.Pointer, func() error, error) {
	return nil, nil, ErrUnsupported
}
