/*
Package chainmap provides a string-keyed hash table using separate chaining
for collision resolution.

Map is a plain in-memory associative container: it hashes keys with the
DJB2 string hash, resolves collisions by chaining associations per bucket,
and doubles its bucket array whenever the load factor crosses a
configurable threshold. Values are opaque; the map stores and returns them
without inspecting, copying, or retaining anything beyond the reference
itself.

Basic usage:

	import "github.com/chainmap/chainmap"

	m := chainmap.New()

	// Insert and update
	m.Set("alpha", 1)
	m.Set("alpha", 2) // overwrites in place

	// Retrieve
	if v, ok := m.Get("alpha"); ok {
		fmt.Println("alpha =", v)
	}

	// Remove
	m.Delete("alpha")

Features:

  - String keys, arbitrary (any) values
  - Separate chaining with head insertion per bucket
  - Automatic doubling growth when the load factor exceeds the threshold
  - Configurable initial capacity, growth factor, and threshold
  - DJB2 hashing for bucket assignment

Implementation Details:

Each bucket holds the head of a singly-linked chain of associations. A new
key is linked at the head of its chain, so within one bucket the most
recently inserted key is scanned first. Before every mutating call (Set or
Delete, including deletes of absent keys) the map compares its load factor
against the threshold and, if exceeded, grows the bucket array by the
growth factor and rehashes every association. Lookups never resize.

The default threshold of 5.0 trades memory for chain length: with doubling
growth the steady-state chains average between 2.5 and 5 associations.
Thresholds must be greater than 1 so that a single growth step always
brings the load factor back under the threshold.

Map performs no internal locking; callers that share a Map across
goroutines must synchronize access externally.
*/
package chainmap
