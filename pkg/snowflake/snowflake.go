// Package snowflake generates 64-bit, time-ordered unique IDs.
//
// An ID packs, from the most significant bit down: 41 bits of milliseconds
// since Epoch, 5 bits of datacenter ID, 5 bits of worker ID and a 12-bit
// per-millisecond sequence. A Generator is safe for concurrent use.
package snowflake

import (
	"errors"
	"sync"
	"time"

	"github.com/idelchi/enigma/pkg/errdefs"
)

const (
	// Epoch is the reference time of every ID, in Unix milliseconds (2022-12-21 16:11:56 UTC).
	Epoch int64 = 1671639116000

	workerBits     = 5
	datacenterBits = 5
	sequenceBits   = 12

	// MaxWorkerID is the largest accepted worker ID.
	MaxWorkerID = 1<<workerBits - 1
	// MaxDatacenterID is the largest accepted datacenter ID.
	MaxDatacenterID = 1<<datacenterBits - 1

	sequenceMask    = 1<<sequenceBits - 1
	workerShift     = sequenceBits
	datacenterShift = sequenceBits + workerBits
	timestampShift  = sequenceBits + workerBits + datacenterBits
)

// Clock faults are reported with their own sentinels and carry no errdefs kind.
var (
	// ErrClockMovedBackwards is returned when the clock reads earlier than the last issued ID.
	ErrClockMovedBackwards = errors.New("clock moved backwards")
	// ErrBeforeEpoch is returned when the clock reads earlier than Epoch.
	ErrBeforeEpoch = errors.New("clock is before the snowflake epoch")
)

// Generator issues IDs for one worker in one datacenter.
type Generator struct {
	mu sync.Mutex

	worker     int64
	datacenter int64
	clock      func() time.Time

	sequence int64
	last     int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock replaces time.Now as the time source.
func WithClock(clock func() time.Time) Option {
	return func(g *Generator) {
		g.clock = clock
	}
}

// New returns a Generator for the given worker and datacenter, both in 0..31.
func New(workerID, datacenterID int64, opts ...Option) (*Generator, error) {
	if workerID < 0 || workerID > MaxWorkerID {
		return nil, errdefs.InvalidArgument("worker id must be between 0 and %d, got %d", MaxWorkerID, workerID)
	}

	if datacenterID < 0 || datacenterID > MaxDatacenterID {
		return nil, errdefs.InvalidArgument("datacenter id must be between 0 and %d, got %d", MaxDatacenterID, datacenterID)
	}

	g := &Generator{
		worker:     workerID,
		datacenter: datacenterID,
		clock:      time.Now,
		last:       -1,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Next returns the next ID. When the sequence of the current millisecond is
// exhausted, Next waits for the clock to advance.
func (g *Generator) Next() (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock().UnixMilli()

	switch {
	case now < Epoch:
		return 0, ErrBeforeEpoch
	case now < g.last:
		return 0, ErrClockMovedBackwards
	case now == g.last:
		g.sequence = (g.sequence + 1) & sequenceMask
		if g.sequence == 0 {
			now = g.waitAfter(g.last)
		}
	default:
		g.sequence = 0
	}

	g.last = now

	return (now-Epoch)<<timestampShift |
		g.datacenter<<datacenterShift |
		g.worker<<workerShift |
		g.sequence, nil
}

func (g *Generator) waitAfter(last int64) int64 {
	now := g.clock().UnixMilli()
	for now <= last {
		time.Sleep(100 * time.Microsecond)

		now = g.clock().UnixMilli()
	}

	return now
}

// Parts are the fields packed into an ID.
type Parts struct {
	Time         time.Time
	DatacenterID int64
	WorkerID     int64
	Sequence     int64
}

// Decompose splits an ID into its fields.
func Decompose(id int64) Parts {
	return Parts{
		Time:         time.UnixMilli(id>>timestampShift + Epoch),
		DatacenterID: id >> datacenterShift & MaxDatacenterID,
		WorkerID:     id >> workerShift & MaxWorkerID,
		Sequence:     id & sequenceMask,
	}
}
