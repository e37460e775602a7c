package copyops_test

import (
	"math/rand"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"

	"github.com/harriteja/GoCopy/copyops"
)

const bufSize = 256

// alignedBytes returns n zeroed bytes whose first byte is 8-byte aligned.
func alignedBytes(n int) []byte {
	w := make([]uint64, (n+7)/8)
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(w))), n)
}

func randomBytes(rng *rand.Rand, n int) []byte {
	b := alignedBytes(n)
	rng.Read(b)
	return b
}

func ptr(b []byte, off int) unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(unsafe.SliceData(b)), off)
}

// anchor returns the k-th aligned position for op: a start offset for
// forward ops, a one-past-the-end offset for backward ones. Either way the
// touched span for counts up to 16 stays inside a bufSize buffer.
func anchor(op copyops.Op, k int) int {
	off := k * int(op.Granularity())
	if op.Direction() == copyops.Backward {
		return 160 - off
	}
	return off
}

// low returns the lowest offset op touches when anchored at off.
func low(op copyops.Op, off, n int) int {
	if op.Direction() == copyops.Backward {
		return off - n
	}
	return off
}

func run(fn copyops.Func, dest, src []byte, d, s, n int) {
	fn(ptr(dest, d), ptr(src, s), uintptr(n))
}

type body struct {
	name string
	fn   copyops.Func
}

func bodies(op copyops.Op) []body {
	return []body{
		{"selected", op.Func()},
		{"generic", op.Generic()},
	}
}

// Disjoint regions are the basic use case.
func TestDisjointRegions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, op := range copyops.Ops {
		for _, b := range bodies(op) {
			t.Run(op.String()+"/"+b.name, func(t *testing.T) {
				for n := 0; n <= 16; n++ {
					src := randomBytes(rng, bufSize)
					for s := 0; s < n; s++ {
						for d := 0; d < n; d++ {
							base := rng.Intn(16)
							ds, ss := anchor(op, base+d), anchor(op, base+s)
							dl, sl := low(op, ds, n), low(op, ss, n)

							want := alignedBytes(bufSize)
							got := alignedBytes(bufSize)
							copy(want[dl:dl+n], src[sl:sl+n])
							run(b.fn, got, src, ds, ss, n)

							if diff := cmp.Diff(want, got); diff != "" {
								t.Fatalf("n=%d dest=%d src=%d (-want +got):\n%s", n, ds, ss, diff)
							}
						}
					}
				}
			})
		}
	}
}

// src == dest is allowed and has no effect.
func TestIdenticalRegions(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, op := range copyops.Ops {
		for _, b := range bodies(op) {
			t.Run(op.String()+"/"+b.name, func(t *testing.T) {
				for n := 0; n <= 16; n++ {
					orig := randomBytes(rng, bufSize)
					for s := 0; s <= n; s++ {
						buf := alignedBytes(bufSize)
						copy(buf, orig)
						off := anchor(op, s)
						run(b.fn, buf, buf, off, off, n)
						if diff := cmp.Diff(orig, buf); diff != "" {
							t.Fatalf("n=%d off=%d (-want +got):\n%s", n, off, diff)
						}
					}
				}
			})
		}
	}
}

// Overlap is allowed when src lies in the direction of travel: above dest
// for forward ops, below it for backward ones.
func TestPermittedOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, op := range copyops.Ops {
		for _, b := range bodies(op) {
			t.Run(op.String()+"/"+b.name, func(t *testing.T) {
				for n := 0; n <= 16; n++ {
					orig := randomBytes(rng, bufSize)
					for s := 0; s < n; s++ {
						for d := 0; d < n; d++ {
							// Forward: src start >= dest start. Backward
							// anchors count down from the end, so the same
							// test gives src end <= dest end.
							if s < d {
								continue
							}
							base := rng.Intn(16)
							ds, ss := anchor(op, base+d), anchor(op, base+s)
							dl, sl := low(op, ds, n), low(op, ss, n)

							want := alignedBytes(bufSize)
							copy(want, orig)
							copy(want[dl:dl+n], want[sl:sl+n])

							got := alignedBytes(bufSize)
							copy(got, orig)
							run(b.fn, got, got, ds, ss, n)

							if diff := cmp.Diff(want, got); diff != "" {
								t.Fatalf("n=%d dest=%d src=%d (-want +got):\n%s", n, ds, ss, diff)
							}
						}
					}
				}
			})
		}
	}
}

// Halfword and word copies must match a byte copy for every remainder.
func TestGranularityEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	byteOp := map[copyops.Direction]copyops.Op{
		copyops.Forward:  copyops.OpByteForward,
		copyops.Backward: copyops.OpByteBackward,
	}
	for _, op := range copyops.Ops {
		if op.Granularity() == copyops.Byte {
			continue
		}
		ref := byteOp[op.Direction()].Generic()
		for _, b := range bodies(op) {
			t.Run(op.String()+"/"+b.name, func(t *testing.T) {
				d, s := 16, 8
				if op.Direction() == copyops.Backward {
					d, s = 160, 152
				}
				for n := 0; n <= 64; n++ {
					src := randomBytes(rng, bufSize)
					want := alignedBytes(bufSize)
					got := alignedBytes(bufSize)
					run(ref, want, src, d, s, n)
					run(b.fn, got, src, d, s, n)
					if diff := cmp.Diff(want, got); diff != "" {
						t.Fatalf("n=%d remainder=%d (-want +got):\n%s", n, n%int(op.Granularity()), diff)
					}
				}
			})
		}
	}
}

// The selected body, whichever capability supplied it, must agree with the
// portable one on longer runs than the exhaustive tests cover.
func TestSelectedMatchesGeneric(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	const size = 1024
	for _, op := range copyops.Ops {
		g := int(op.Granularity())
		t.Run(op.String(), func(t *testing.T) {
			for i := 0; i < 500; i++ {
				n := rng.Intn(size / 2)
				d := rng.Intn(size/2/g) * g
				s := rng.Intn(size/2/g) * g
				if op.Direction() == copyops.Backward {
					d += size / 2
					s += size / 2
				}
				switch {
				case op.Direction() == copyops.Forward && s < d,
					op.Direction() == copyops.Backward && s > d:
					s, d = d, s
				}

				orig := randomBytes(rng, size)
				want := alignedBytes(size)
				got := alignedBytes(size)
				copy(want, orig)
				copy(got, orig)

				run(op.Generic(), want, want, d, s, n)
				run(op.Func(), got, got, d, s, n)

				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("fast path %q: n=%d dest=%d src=%d (-want +got):\n%s",
						copyops.FastPath, n, d, s, diff)
				}
			}
		})
	}
}

func TestZeroCountIgnoresPointers(t *testing.T) {
	for _, op := range copyops.Ops {
		for _, b := range bodies(op) {
			t.Run(op.String()+"/"+b.name, func(t *testing.T) {
				b.fn(nil, nil, 0)

				buf := alignedBytes(4)
				copy(buf, []byte{1, 2, 3, 4})
				b.fn(ptr(buf, 0), nil, 0)
				b.fn(nil, ptr(buf, 0), 0)
				if diff := cmp.Diff([]byte{1, 2, 3, 4}, buf); diff != "" {
					t.Fatalf("(-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestScenarios(t *testing.T) {
	t.Run("forward byte copy, disjoint", func(t *testing.T) {
		src := []byte{10, 20, 30}
		dest := []byte{0, 0, 0}
		copyops.ByteForward(ptr(dest, 0), ptr(src, 0), 3)
		if diff := cmp.Diff([]byte{10, 20, 30}, dest); diff != "" {
			t.Fatalf("(-want +got):\n%s", diff)
		}
	})

	t.Run("backward byte copy shifts right by one", func(t *testing.T) {
		buf := []byte{1, 2, 3, 4, 5, 0, 0xff}
		copyops.ByteBackward(ptr(buf, 6), ptr(buf, 5), 5)
		if diff := cmp.Diff([]byte{1, 1, 2, 3, 4, 5, 0xff}, buf); diff != "" {
			t.Fatalf("(-want +got):\n%s", diff)
		}
	})

	t.Run("word copy with remainder three", func(t *testing.T) {
		src := alignedBytes(16)
		copy(src, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9})
		want := alignedBytes(16)
		got := alignedBytes(16)
		copyops.ByteForward(ptr(want, 0), ptr(src, 0), 7)
		copyops.WordForward(ptr(got, 0), ptr(src, 0), 7)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("(-want +got):\n%s", diff)
		}
		if got[7] != 0 {
			t.Fatalf("byte past the region was written: %d", got[7])
		}
	})

	t.Run("backward word copy with remainder three", func(t *testing.T) {
		src := alignedBytes(16)
		copy(src, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
		want := alignedBytes(16)
		got := alignedBytes(16)
		copyops.ByteBackward(ptr(want, 12), ptr(src, 12), 7)
		copyops.WordBackward(ptr(got, 12), ptr(src, 12), 7)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("(-want +got):\n%s", diff)
		}
		if got[4] != 0 {
			t.Fatalf("byte below the region was written: %d", got[4])
		}
	})
}

func TestOpMetadata(t *testing.T) {
	tests := []struct {
		op   copyops.Op
		name string
		g    copyops.Granularity
		dir  copyops.Direction
	}{
		{copyops.OpByteForward, "byte-forward", copyops.Byte, copyops.Forward},
		{copyops.OpByteBackward, "byte-backward", copyops.Byte, copyops.Backward},
		{copyops.OpHalfwordForward, "halfword-forward", copyops.Halfword, copyops.Forward},
		{copyops.OpHalfwordBackward, "halfword-backward", copyops.Halfword, copyops.Backward},
		{copyops.OpWordForward, "word-forward", copyops.Word, copyops.Forward},
		{copyops.OpWordBackward, "word-backward", copyops.Word, copyops.Backward},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.op.Granularity(); got != tt.g {
				t.Errorf("Granularity() = %v, want %v", got, tt.g)
			}
			if got := tt.op.Direction(); got != tt.dir {
				t.Errorf("Direction() = %v, want %v", got, tt.dir)
			}
			if tt.op.Func() == nil || tt.op.Generic() == nil {
				t.Errorf("missing body for %v", tt.op)
			}
		})
	}

	if got := copyops.Op(42).String(); got != "unknown" {
		t.Errorf("Op(42).String() = %q, want unknown", got)
	}
	if copyops.Op(42).Func() != nil {
		t.Error("Op(42).Func() should be nil")
	}
}

func TestGranularityAligned(t *testing.T) {
	if !copyops.Word.Aligned(8) || copyops.Word.Aligned(6) {
		t.Error("Word alignment check is wrong")
	}
	if !copyops.Halfword.Aligned(6) || copyops.Halfword.Aligned(7) {
		t.Error("Halfword alignment check is wrong")
	}
	if !copyops.Byte.Aligned(7) {
		t.Error("Byte accepts every address")
	}
}
