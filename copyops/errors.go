package copyops

import "fmt"

// AlignmentError is the panic value raised by builds with the copydebug tag
// when a halfword or word primitive receives a misaligned pointer.
type AlignmentError struct {
	Op   Op
	Arg  string // "dest" or "src"
	Addr uintptr
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("copyops: %s %s %#x must be aligned to %d",
		e.Op, e.Arg, e.Addr, uintptr(e.Op.Granularity()))
}
