// Package arena owns aligned memory and addresses it by offset, so callers
// can drive the copy primitives without handling raw pointers. Every move is
// checked against the primitives' contract before it runs.
package arena

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/harriteja/GoCopy/copyops"
)

// Alignment is the guaranteed alignment of offset zero.
const Alignment = 8

var (
	ErrOutOfBounds = errors.New("region out of bounds")
	ErrMisaligned  = errors.New("offset is not aligned to the operation granularity")
	ErrOverlap     = errors.New("regions overlap against the copy direction")
	ErrInvalidOp   = errors.New("unknown copy operation")
	ErrInvalidSize = errors.New("arena size must be positive")
	ErrUnsupported = errors.New("not supported on this platform")
	ErrClosed      = errors.New("arena is closed")
)

// Arena is a block of memory aligned to Alignment. It is not safe for
// concurrent use except through parallel.Dispatcher, which only runs moves
// whose regions are disjoint.
type Arena struct {
	base    unsafe.Pointer
	mem     []byte
	release func([]byte) error
	closed  bool
}

// New allocates a zeroed arena of size bytes from the Go heap.
func New(size int) *Arena {
	if size < 0 {
		size = 0
	}
	// The spare doubleword keeps the one-past-the-end address inside the
	// allocation, so backward moves ending at Len() never point at a
	// neighbouring object.
	w := make([]uint64, size/8+1)
	base := unsafe.Pointer(unsafe.SliceData(w))
	return &Arena{
		base: base,
		mem:  unsafe.Slice((*byte)(base), size),
	}
}

func fromMapping(mem []byte, release func([]byte) error) *Arena {
	return &Arena{
		base:    unsafe.Pointer(unsafe.SliceData(mem)),
		mem:     mem,
		release: release,
	}
}

// Bytes returns the arena contents. The slice aliases the arena.
func (a *Arena) Bytes() []byte { return a.mem }

// Len returns the arena size in bytes.
func (a *Arena) Len() int { return len(a.mem) }

// Ptr returns the address at off. off may equal Len() to name the
// one-past-the-end address used by backward moves.
func (a *Arena) Ptr(off uintptr) unsafe.Pointer {
	if off > uintptr(len(a.mem)) {
		panic(fmt.Sprintf("arena: offset %d beyond length %d", off, len(a.mem)))
	}
	return unsafe.Add(a.base, off)
}

// Close releases mapped memory. Heap arenas are simply dropped.
func (a *Arena) Close() error {
	if a.closed {
		return ErrClosed
	}
	mem := a.mem
	a.closed = true
	a.mem = nil
	a.base = nil
	if a.release != nil {
		return a.release(mem)
	}
	return nil
}

// Range is a half-open span of arena offsets.
type Range struct {
	Start, End uintptr
}

// Len returns the number of bytes in r.
func (r Range) Len() uintptr { return r.End - r.Start }

// Overlaps reports whether r and o share at least one byte. An empty range
// overlaps nothing.
func (r Range) Overlaps(o Range) bool {
	return r.Start < r.End && o.Start < o.End && r.Start < o.End && o.Start < r.End
}

// Move describes one primitive call in arena offsets. Dest and Src follow
// the primitive's convention: start offsets for forward ops, one-past-the-end
// offsets for backward ops.
type Move struct {
	Op    copyops.Op
	Dest  uintptr
	Src   uintptr
	Count uintptr
}

func (m Move) span(off uintptr) Range {
	if m.Op.Direction() == copyops.Backward {
		return Range{Start: off - m.Count, End: off}
	}
	return Range{Start: off, End: off + m.Count}
}

// DestRange returns the bytes m writes. Only meaningful for a valid move.
func (m Move) DestRange() Range { return m.span(m.Dest) }

// SrcRange returns the bytes m reads. Only meaningful for a valid move.
func (m Move) SrcRange() Range { return m.span(m.Src) }

func (m Move) String() string {
	return fmt.Sprintf("%v dest=%#x src=%#x count=%d", m.Op, m.Dest, m.Src, m.Count)
}

// Validate checks m against the arena bounds and the primitive's alignment
// and overlap rules. A zero count is always valid.
func (a *Arena) Validate(m Move) error {
	if a.closed {
		return ErrClosed
	}
	if m.Op.Func() == nil {
		return fmt.Errorf("%w: %d", ErrInvalidOp, int(m.Op))
	}
	if m.Count == 0 {
		return nil
	}

	size := uintptr(len(a.mem))
	for _, off := range [2]uintptr{m.Dest, m.Src} {
		if m.Op.Direction() == copyops.Backward {
			if off > size || m.Count > off {
				return fmt.Errorf("%w: %v", ErrOutOfBounds, m)
			}
		} else if off > size || m.Count > size-off {
			return fmt.Errorf("%w: %v", ErrOutOfBounds, m)
		}
	}

	g := m.Op.Granularity()
	if !g.Aligned(m.Dest) || !g.Aligned(m.Src) {
		return fmt.Errorf("%w: %v", ErrMisaligned, m)
	}

	if m.DestRange().Overlaps(m.SrcRange()) {
		forward := m.Op.Direction() == copyops.Forward
		if (forward && m.Src < m.Dest) || (!forward && m.Src > m.Dest) {
			return fmt.Errorf("%w: %v", ErrOverlap, m)
		}
	}
	return nil
}

// Apply validates m and runs the primitive selected for this build.
func (a *Arena) Apply(m Move) error {
	if err := a.Validate(m); err != nil {
		return err
	}
	if m.Count == 0 {
		return nil
	}
	m.Op.Func()(a.Ptr(m.Dest), a.Ptr(m.Src), m.Count)
	return nil
}
