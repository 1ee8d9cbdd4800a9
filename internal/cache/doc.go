// Package cache implements a fixed-capacity, in-process key–value cache
// with least-recently-used eviction.
//
// Goals for this package:
//   - Make the core data structures explicit (key index + recency list)
//   - Provide O(1) Get/Put/Remove via a map index and a handle-linked list
//   - Keep entry ownership in exactly one place: an arena of slots addressed
//     by stable handles, so neither the index nor the list links hold
//     raw pointers that could dangle
//   - Stay single-threaded and allocation-free after construction; callers
//     that need concurrent access wrap the cache in their own lock or shard it
package cache
