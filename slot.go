// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bmpmc

// slot is one cell of the ring. It is not internally synchronized: the
// reservation-and-commit protocol guarantees a slot is store'd by at most
// one producer and take'n by at most one consumer at any instant, with the
// trailing-edge commit establishing the happens-before edge between them.
type slot[T any] struct {
	value T
	_     padShort
}

// store publishes v into the slot. The caller must hold the write
// reservation for this slot (see [BoundedMpmcQueue.Push]).
func (s *slot[T]) store(v T) {
	s.value = v
}

// take removes and returns the slot's value, leaving it Empty. The caller
// must hold the read reservation for this slot (see
// [BoundedMpmcQueue.Pop]).
func (s *slot[T]) take() T {
	v := s.value
	var zero T
	s.value = zero
	return v
}
