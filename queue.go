// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bmpmc

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// spinYieldInterval is the hardware-tunable constant controlling how often
// a trailing-edge commit spin yields to the scheduler instead of busy
// spinning. This mitigates livelock under oversubscription; it is a
// progress optimization, not a correctness requirement.
const spinYieldInterval = 256

// BoundedMpmcQueue is a bounded, multi-producer/multi-consumer FIFO queue
// backed by a fixed-capacity ring buffer and coordinated by six
// cache-line-isolated atomic counters instead of a lock. See the package
// doc for the reservation-and-commit protocol.
type BoundedMpmcQueue[T any] struct {
	_              pad
	backLead       atomix.Uint64 // reservations made by producers
	_              pad
	backTrail      atomix.Uint64 // writes committed by producers
	_              pad
	frontLead      atomix.Uint64 // reservations made by consumers
	_              pad
	frontTrail     atomix.Uint64 // reads committed by consumers
	_              pad
	sizeUpperBound atomix.Int64 // producer admission gate
	_              pad
	sizeLowerBound atomix.Int64 // consumer admission gate
	_              pad
	buffer         []slot[T]
	capacity       uint64
	mask           uint64
}

// NewBoundedMpmcQueue constructs a queue with the given requested
// capacity, rounded up to the next power of two. It fails with
// [ErrInvalidCapacity] if capacity is zero or exceeds [MaxCapacity]; no
// partial queue is returned in that case.
func NewBoundedMpmcQueue[T any](capacity int) (*BoundedMpmcQueue[T], error) {
	if capacity <= 0 || uint64(capacity) > MaxCapacity {
		return nil, ErrInvalidCapacity
	}

	n := RoundUpToPowerOfTwo(uint64(capacity))

	return &BoundedMpmcQueue[T]{
		buffer:   make([]slot[T], n),
		capacity: n,
		mask:     n - 1,
	}, nil
}

// Cap returns the queue's fixed, rounded-up capacity.
func (q *BoundedMpmcQueue[T]) Cap() int {
	return int(q.capacity)
}

// Size returns the pessimistic upper-bound estimate of queue occupancy
// (including in-flight producer writes). The value is advisory and may
// already be stale by the time the caller observes it.
func (q *BoundedMpmcQueue[T]) Size() int {
	return int(q.sizeUpperBound.LoadRelaxed())
}

// Empty reports whether the lower-bound estimate of committed, unclaimed
// values is zero. This is a conservative, advisory test from a consumer's
// point of view — it may return true for an instant even as a producer's
// write is in flight.
func (q *BoundedMpmcQueue[T]) Empty() bool {
	return q.sizeLowerBound.LoadRelaxed() == 0
}

// Push enqueues v, blocking until a slot is available. It never fails.
func (q *BoundedMpmcQueue[T]) Push(v T) {
	q.admitProducer()
	q.publish(v)
}

// TryPush attempts to enqueue v, retrying admission up to attempts times
// (attempts == 0 means one check, no retries). It returns false without
// touching the slot or committing if the retry budget is exhausted; v is
// left untouched on failure.
func (q *BoundedMpmcQueue[T]) TryPush(v T, attempts int) bool {
	if !q.tryAdmitProducer(attempts) {
		return false
	}
	q.publish(v)
	return true
}

// admitProducer blocks until the producer admission gate grants a slot.
func (q *BoundedMpmcQueue[T]) admitProducer() {
	sw := spin.Wait{}
	for {
		if q.sizeUpperBound.AddAcqRel(1) <= int64(q.capacity) {
			return
		}
		q.sizeUpperBound.AddAcqRel(-1)
		sw.Once()
	}
}

// tryAdmitProducer retries the producer admission gate up to attempts
// extra times before giving up.
func (q *BoundedMpmcQueue[T]) tryAdmitProducer(attempts int) bool {
	for tries := 0; ; tries++ {
		if q.sizeUpperBound.AddAcqRel(1) <= int64(q.capacity) {
			return true
		}
		q.sizeUpperBound.AddAcqRel(-1)
		if tries >= attempts {
			return false
		}
	}
}

// publish performs the reservation, slot write, trailing-edge commit, and
// signal steps shared by Push and TryPush once admission has succeeded.
func (q *BoundedMpmcQueue[T]) publish(v T) {
	ticket := q.backLead.AddAcqRel(1) - 1
	q.buffer[ticket&q.mask].store(v)

	sw := spin.Wait{}
	for i := 0; q.backTrail.LoadAcquire() != ticket; i++ {
		if i%spinYieldInterval == spinYieldInterval-1 {
			sw.Once()
		}
	}
	q.backTrail.AddAcqRel(1)

	q.sizeLowerBound.AddAcqRel(1)
}

// Pop dequeues and returns a value, blocking until one is available. It
// never fails.
func (q *BoundedMpmcQueue[T]) Pop() T {
	q.admitConsumer()
	return q.claim()
}

// TryPop attempts to dequeue a value, retrying admission up to attempts
// times (attempts == 0 means one check, no retries). It returns
// (zero-value, false) if the retry budget is exhausted.
func (q *BoundedMpmcQueue[T]) TryPop(attempts int) (T, bool) {
	if !q.tryAdmitConsumer(attempts) {
		var zero T
		return zero, false
	}
	return q.claim(), true
}

// admitConsumer blocks until the consumer admission gate grants a value.
func (q *BoundedMpmcQueue[T]) admitConsumer() {
	sw := spin.Wait{}
	for {
		if q.sizeLowerBound.AddAcqRel(-1) >= 0 {
			return
		}
		q.sizeLowerBound.AddAcqRel(1)
		sw.Once()
	}
}

// tryAdmitConsumer retries the consumer admission gate up to attempts
// extra times before giving up.
func (q *BoundedMpmcQueue[T]) tryAdmitConsumer(attempts int) bool {
	for tries := 0; ; tries++ {
		if q.sizeLowerBound.AddAcqRel(-1) >= 0 {
			return true
		}
		q.sizeLowerBound.AddAcqRel(1)
		if tries >= attempts {
			return false
		}
	}
}

// claim performs the reservation, slot read, trailing-edge commit, and
// signal steps shared by Pop and TryPop once admission has succeeded.
func (q *BoundedMpmcQueue[T]) claim() T {
	ticket := q.frontLead.AddAcqRel(1) - 1
	v := q.buffer[ticket&q.mask].take()

	sw := spin.Wait{}
	for i := 0; q.frontTrail.LoadAcquire() != ticket; i++ {
		if i%spinYieldInterval == spinYieldInterval-1 {
			sw.Once()
		}
	}
	q.frontTrail.AddAcqRel(1)

	q.sizeUpperBound.AddAcqRel(-1)

	return v
}
