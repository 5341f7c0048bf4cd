// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bmpmc provides a bounded, multi-producer/multi-consumer FIFO
// queue for high-throughput inter-goroutine handoff.
//
// # The reservation-and-commit protocol
//
// [BoundedMpmcQueue] splits every enqueue and dequeue into four steps:
//
//  1. Admission — an atomic bound counter gates how many producers (or
//     consumers) may be in flight at once, so a caller never reserves a
//     slot the ring doesn't have room for.
//  2. Reservation — a fetch-and-increment on a lead counter hands the
//     caller a disjoint monotonic ticket; the ring index is the ticket
//     masked against capacity-1.
//  3. Transfer — the caller stores into (or takes from) its own slot.
//     No other goroutine ever touches that slot concurrently.
//  4. Commit — the caller spin-waits for a trailing-edge counter to reach
//     its own ticket, then advances it, publishing the operation to the
//     other side in strict FIFO order.
//
// This replaces a global lock with six small atomic counters, each pinned
// to its own cache line to avoid false sharing between producers and
// consumers:
//
//	q, err := bmpmc.NewBoundedMpmcQueue[Job](1024) // capacity rounds to a power of 2
//	q.Push(job)                                     // blocks until room exists
//	ok := q.TryPush(job, 4)                         // bounded retry, never blocks
//	job = q.Pop()                                   // blocks until data exists
//	job, ok = q.TryPop(4)
//
// # Capacity
//
// Capacity always rounds up to the next power of two so the ring index can
// be computed with a bitmask instead of a modulus:
//
//	bmpmc.NewBoundedMpmcQueue[int](3)    // effective capacity 4
//	bmpmc.NewBoundedMpmcQueue[int](1024) // effective capacity 1024
//
// Construction fails with [ErrInvalidCapacity] if capacity is zero or
// exceeds [MaxCapacity].
//
// # Thread safety
//
// Any number of goroutines may call Push/TryPush and any number may call
// Pop/TryPop concurrently on the same queue; there is no producer or
// consumer cardinality constraint.
//
// # Observational operations
//
// [BoundedMpmcQueue.Size], [BoundedMpmcQueue.Empty], and
// [BoundedMpmcQueue.Cap] are advisory: their return values may already be
// stale by the time the caller observes them. They exist for heuristics
// (backpressure decisions, monitoring), not for synchronization.
//
// # No shutdown protocol
//
// There is no closed/drained state: Push and Pop block forever if their
// complementary side never makes progress. Callers needing a bounded wait
// use TryPush/TryPop and implement their own backoff, for example with
// [code.hybscloud.com/iox.Backoff].
package bmpmc
