package chainmap

import (
	"errors"
	"fmt"
)

const (
	// DefaultInitialCapacity is the number of buckets a new map starts with.
	DefaultInitialCapacity = 16

	// DefaultGrowthFactor is the multiplier applied to the bucket count on
	// each resize.
	DefaultGrowthFactor = 2

	// DefaultLoadFactorThreshold is the load factor above which the bucket
	// array grows before the next mutation is applied.
	DefaultLoadFactorThreshold = 5.0

	djb2Seed = 5381
)

var (
	ErrInvalidInitialCapacity = errors.New("initial capacity must be at least 1")
	ErrInvalidGrowthFactor    = errors.New("growth factor must be at least 2")
	ErrInvalidThreshold       = errors.New("load factor threshold must be greater than 1")
)

// association is a key/value pair stored in a bucket. It doubles as a
// singly-linked list node, resolving hash collisions by chaining.
type association struct {
	key   string
	value any
	next  *association
}

// Map is a hash table mapping string keys to arbitrary values, using
// separate chaining for collision resolution. The map owns its keys;
// values are opaque references it never inspects.
//
// A Map is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
type Map struct {
	buckets  []*association
	numElems int

	initialCapacity int
	growthFactor    int
	threshold       float64
}

// Options configures a Map created with NewWithOptions.
type Options struct {
	// InitialCapacity is the starting number of buckets. Must be at least 1.
	InitialCapacity int

	// GrowthFactor multiplies the bucket count on each resize. Must be at
	// least 2.
	GrowthFactor int

	// LoadFactorThreshold is the elements-per-bucket ratio above which the
	// bucket array grows. Must be greater than 1: a single growth step then
	// always brings the ratio back under the threshold, so a resize can
	// never trigger another resize while rehashing.
	LoadFactorThreshold float64
}

// New returns an empty Map with the default configuration: 16 buckets,
// doubling growth, load factor threshold 5.0.
func New() *Map {
	m, _ := NewWithOptions(Options{
		InitialCapacity:     DefaultInitialCapacity,
		GrowthFactor:        DefaultGrowthFactor,
		LoadFactorThreshold: DefaultLoadFactorThreshold,
	})
	return m
}

// NewWithOptions returns an empty Map configured by opts, or an error if
// any option is out of range.
func NewWithOptions(opts Options) (*Map, error) {
	if opts.InitialCapacity < 1 {
		return nil, fmt.Errorf("chainmap: %w (got %d)", ErrInvalidInitialCapacity, opts.InitialCapacity)
	}
	if opts.GrowthFactor < 2 {
		return nil, fmt.Errorf("chainmap: %w (got %d)", ErrInvalidGrowthFactor, opts.GrowthFactor)
	}
	if opts.LoadFactorThreshold <= 1 {
		return nil, fmt.Errorf("chainmap: %w (got %g)", ErrInvalidThreshold, opts.LoadFactorThreshold)
	}
	return &Map{
		buckets:         make([]*association, opts.InitialCapacity),
		initialCapacity: opts.InitialCapacity,
		growthFactor:    opts.GrowthFactor,
		threshold:       opts.LoadFactorThreshold,
	}, nil
}

// Hash computes the DJB2 hash of key: seed 5381, then h = h*33 + c for
// each byte. Hash("") is the seed itself. DJB2 is not collision-resistant;
// colliding keys simply share a bucket chain.
func Hash(key string) uint32 {
	h := uint32(djb2Seed)
	for i := 0; i < len(key); i++ {
		h = h*33 + uint32(key[i])
	}
	return h
}

// Len returns the number of live key/value pairs.
func (m *Map) Len() int {
	return m.numElems
}

// Cap returns the current number of buckets.
func (m *Map) Cap() int {
	return len(m.buckets)
}

// LoadFactor returns the ratio of live pairs to buckets.
func (m *Map) LoadFactor() float64 {
	return float64(m.numElems) / float64(len(m.buckets))
}

// Set inserts key with value, or overwrites the value if key is already
// present. An overwrite allocates nothing and leaves Len unchanged; a new
// key is linked at the head of its bucket's chain.
func (m *Map) Set(key string, value any) {
	m.maybeGrow()

	idx := m.bucketIndex(key)
	for cur := m.buckets[idx]; cur != nil; cur = cur.next {
		if cur.key == key {
			cur.value = value
			return
		}
	}

	m.buckets[idx] = &association{key: key, value: value, next: m.buckets[idx]}
	m.numElems++
}

// Delete removes key from the map. Deleting an absent key is a no-op.
//
// Like Set, Delete runs the growth check before touching the buckets, so
// a delete issued while the map is over the threshold resizes it even if
// the key turns out to be absent.
func (m *Map) Delete(key string) {
	m.maybeGrow()

	idx := m.bucketIndex(key)
	var prev *association
	for cur := m.buckets[idx]; cur != nil; cur = cur.next {
		if cur.key == key {
			if prev != nil {
				prev.next = cur.next
			} else {
				m.buckets[idx] = cur.next
			}
			m.numElems--
			return
		}
		prev = cur
	}
}

// Get returns the value stored for key and whether the key is present.
// Get never mutates the map and never triggers a resize. A key stored
// with a nil value reports (nil, true).
func (m *Map) Get(key string) (any, bool) {
	for cur := m.buckets[m.bucketIndex(key)]; cur != nil; cur = cur.next {
		if cur.key == key {
			return cur.value, true
		}
	}
	return nil, false
}

// Reset discards every key/value pair and restores the map to its
// initial capacity.
func (m *Map) Reset() {
	m.buckets = make([]*association, m.initialCapacity)
	m.numElems = 0
}

func (m *Map) bucketIndex(key string) int {
	return int(Hash(key) % uint32(len(m.buckets)))
}

func (m *Map) maybeGrow() {
	if m.LoadFactor() > m.threshold {
		m.grow()
	}
}

// grow replaces the bucket array with one growthFactor times larger and
// rehashes every association through the ordinary Set path. Because the
// threshold is greater than 1, the load factor after rehashing stays
// under it, so Set's own growth check cannot fire again mid-rehash.
func (m *Map) grow() {
	old := m.buckets
	m.buckets = make([]*association, len(old)*m.growthFactor)
	m.numElems = 0

	for _, head := range old {
		for cur := head; cur != nil; cur = cur.next {
			m.Set(cur.key, cur.value)
		}
	}
}
