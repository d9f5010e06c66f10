package history

import (
	"errors"
	"slices"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"
)

// DefaultCapacity is the number of fill-time samples kept per box size.
const DefaultCapacity = 10

var (
	ErrBufferFull  = errors.New("fill-time buffer is full")
	ErrBufferEmpty = errors.New("fill-time buffer is empty")
)

// FillTimeBuffer is a fixed-capacity ring of box fill durations.
// It is safe for concurrent use.
type FillTimeBuffer struct {
	mu       sync.Mutex
	samples  []time.Duration
	capacity int
	head     int // next write position
	tail     int // next read position
	size     int
	dropped  int
}

// NewFillTimeBuffer returns an empty buffer. Capacities below one are raised to one.
func NewFillTimeBuffer(capacity int) *FillTimeBuffer {
	if capacity <= 0 {
		capacity = 1
	}
	return &FillTimeBuffer{
		samples:  make([]time.Duration, capacity),
		capacity: capacity,
	}
}

// Put appends a sample, or returns ErrBufferFull without modifying the buffer.
func (b *FillTimeBuffer) Put(d time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.size == b.capacity {
		return ErrBufferFull
	}
	b.write(d)
	return nil
}

// Push appends a sample, evicting the oldest one when the buffer is full.
// It reports whether a sample was dropped.
func (b *FillTimeBuffer) Push(d time.Duration) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	dropped := false
	if b.size == b.capacity {
		b.tail = (b.tail + 1) % b.capacity
		b.size--
		b.dropped++
		dropped = true
	}
	b.write(d)
	return dropped
}

func (b *FillTimeBuffer) write(d time.Duration) {
	b.samples[b.head] = d
	b.head = (b.head + 1) % b.capacity
	b.size++
}

// Get removes and returns the oldest sample.
func (b *FillTimeBuffer) Get() (time.Duration, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.size == 0 {
		return 0, ErrBufferEmpty
	}
	d := b.samples[b.tail]
	b.samples[b.tail] = 0
	b.tail = (b.tail + 1) % b.capacity
	b.size--
	return d, nil
}

func (b *FillTimeBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

func (b *FillTimeBuffer) Cap() int { return b.capacity }

// Dropped returns how many samples Push has evicted.
func (b *FillTimeBuffer) Dropped() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}

// Snapshot returns the buffered samples, oldest first.
func (b *FillTimeBuffer) Snapshot() []time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]time.Duration, b.size)
	for i := 0; i < b.size; i++ {
		out[i] = b.samples[(b.tail+i)%b.capacity]
	}
	return out
}

// Summary describes the samples currently held in a buffer.
type Summary struct {
	Count  int
	Mean   time.Duration
	StdDev time.Duration
	P50    time.Duration
	P90    time.Duration
}

// Summary computes statistics over the buffered samples. An empty buffer
// yields a zero Summary.
func (b *FillTimeBuffer) Summary() Summary {
	samples := b.Snapshot()
	if len(samples) == 0 {
		return Summary{}
	}

	x := make([]float64, len(samples))
	for i, d := range samples {
		x[i] = float64(d)
	}
	slices.Sort(x)

	s := Summary{
		Count: len(x),
		Mean:  time.Duration(stat.Mean(x, nil)),
		P50:   time.Duration(stat.Quantile(0.5, stat.Empirical, x, nil)),
		P90:   time.Duration(stat.Quantile(0.9, stat.Empirical, x, nil)),
	}
	if len(x) > 1 {
		s.StdDev = time.Duration(stat.StdDev(x, nil))
	}
	return s
}
