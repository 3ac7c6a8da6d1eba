// Package buffer provides the bounded per-tab line store.
//
// # Ring Buffer Algorithm
//
// A Ring grows by plain append until it reaches its capacity. From then on
// every append overwrites the slot at head (the oldest line) and advances head,
// so eviction and insertion happen in one step and the ring is never observed
// above capacity:
//
//	1. len < capacity: append to the slice
//	2. len == capacity: entries[head] = line; head = (head+1) % capacity
//	3. logical index i maps to entries[(head+i) % len]
//
// Lines are appended in sequence order only, which keeps every ring sorted by
// sequence number and makes Search a binary search.
//
// # Counters
//
// Total counts every append, including evicted lines. Evicted is derived as
// Total minus Len. The state package uses these two numbers to translate
// "lines appended before pause" into "lines still visible" after eviction.
package buffer
