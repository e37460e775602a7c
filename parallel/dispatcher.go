// Package parallel runs batches of copy moves concurrently.
//
// The copy primitives may run on several goroutines at once only when their
// regions do not overlap each other. The Dispatcher checks that for a whole
// batch before any byte moves, then spreads the work over a bounded number
// of goroutines.
package parallel

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/harriteja/GoCopy/arena"
	"github.com/harriteja/GoCopy/copyops"
)

// DefaultChunkSize is the default size of the pieces large moves are split into
const DefaultChunkSize = 64 << 10 // 64KB

// DefaultNumWorkers is the default number of worker goroutines
const DefaultNumWorkers = 0 // 0 means use runtime.GOMAXPROCS(0)

// ErrConflict is returned when two moves of a batch touch the same bytes
// and at least one of them writes there.
var ErrConflict = errors.New("moves touch overlapping regions")

// Options configures a Dispatcher.
type Options struct {
	// Number of goroutines copying at once
	NumWorkers int

	// Moves between disjoint regions are split into pieces of this size
	ChunkSize int
}

// DefaultOptions returns the default dispatcher options
func DefaultOptions() Options {
	return Options{
		NumWorkers: DefaultNumWorkers,
		ChunkSize:  DefaultChunkSize,
	}
}

// Stats counts the work a Dispatcher has done.
type Stats struct {
	Moves int64 // pieces executed, after splitting
	Bytes int64
}

// Dispatcher executes batches of arena moves in parallel
type Dispatcher struct {
	numWorkers int
	chunkSize  int

	moves atomic.Int64
	bytes atomic.Int64
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(opts Options) *Dispatcher {
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = runtime.GOMAXPROCS(0)
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	return &Dispatcher{
		numWorkers: opts.NumWorkers,
		chunkSize:  opts.ChunkSize,
	}
}

// NumWorkers returns the number of worker goroutines
func (d *Dispatcher) NumWorkers() int {
	return d.numWorkers
}

// ChunkSize returns the size of pieces used for splitting moves
func (d *Dispatcher) ChunkSize() int {
	return d.chunkSize
}

// Stats returns the totals since the dispatcher was created.
func (d *Dispatcher) Stats() Stats {
	return Stats{Moves: d.moves.Load(), Bytes: d.bytes.Load()}
}

// Run validates moves against a, rejects batches whose moves conflict with
// each other, and then executes them concurrently. Cancelling ctx stops
// pieces that have not started yet; a piece that started runs to
// completion. The order in which pieces run is unspecified.
func (d *Dispatcher) Run(ctx context.Context, a *arena.Arena, moves []arena.Move) error {
	for i, m := range moves {
		if err := a.Validate(m); err != nil {
			return fmt.Errorf("move %d: %w", i, err)
		}
	}
	if err := checkConflicts(moves); err != nil {
		return err
	}

	var pieces []arena.Move
	for _, m := range moves {
		if m.Count == 0 {
			continue
		}
		pieces = append(pieces, Split(m, d.chunkSize)...)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.numWorkers)
	for _, p := range pieces {
		if gctx.Err() != nil {
			break
		}
		p := p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p.Op.Func()(a.Ptr(p.Dest), a.Ptr(p.Src), p.Count)
			d.moves.Add(1)
			d.bytes.Add(int64(p.Count))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// checkConflicts reports the first pair of moves where one writes bytes the
// other reads or writes. A move overlapping itself is the primitive's
// business and is checked by Validate.
func checkConflicts(moves []arena.Move) error {
	for i := range moves {
		if moves[i].Count == 0 {
			continue
		}
		di, si := moves[i].DestRange(), moves[i].SrcRange()
		for j := i + 1; j < len(moves); j++ {
			if moves[j].Count == 0 {
				continue
			}
			dj, sj := moves[j].DestRange(), moves[j].SrcRange()
			if di.Overlaps(dj) || di.Overlaps(sj) || dj.Overlaps(si) {
				return fmt.Errorf("%w: move %d (%v) and move %d (%v)", ErrConflict, i, moves[i], j, moves[j])
			}
		}
	}
	return nil
}

// Split cuts m into pieces of at most chunk bytes, rounded down to the op's
// granularity. Only moves between disjoint regions are split; a move whose
// regions overlap depends on its traversal order and is returned whole.
func Split(m arena.Move, chunk int) []arena.Move {
	g := uintptr(m.Op.Granularity())
	size := uintptr(chunk) &^ (g - 1)
	if chunk <= 0 || size == 0 || m.Count <= size || m.DestRange().Overlaps(m.SrcRange()) {
		return []arena.Move{m}
	}

	backward := m.Op.Direction() == copyops.Backward
	pieces := make([]arena.Move, 0, (m.Count+size-1)/size)
	for done := uintptr(0); done < m.Count; done += size {
		n := min(size, m.Count-done)
		p := arena.Move{Op: m.Op, Dest: m.Dest + done, Src: m.Src + done, Count: n}
		if backward {
			p.Dest, p.Src = m.Dest-done, m.Src-done
		}
		pieces = append(pieces, p)
	}
	return pieces
}
