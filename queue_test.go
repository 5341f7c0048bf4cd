// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bmpmc_test

import (
	"testing"

	"code.hybscloud.com/bmpmc"
)

func TestSequentialFIFO(t *testing.T) {
	for _, capacity := range []int{1, 2, 3, 8, 17} {
		const n = 2000
		q, err := bmpmc.NewBoundedMpmcQueue[int](capacity)
		if err != nil {
			t.Fatalf("NewBoundedMpmcQueue(%d): %v", capacity, err)
		}

		for i := range n {
			if !q.TryPush(i, 0) {
				t.Fatalf("capacity %d: TryPush(%d) refused on a freshly-drained ring", capacity, i)
			}
			v, ok := q.TryPop(0)
			if !ok || v != i {
				t.Fatalf("capacity %d: TryPop after push %d = (%d, %v), want (%d, true)", capacity, i, v, ok, i)
			}
		}

		if got := q.Size(); got != 0 {
			t.Fatalf("capacity %d: Size() = %d, want 0", capacity, got)
		}
		if !q.Empty() {
			t.Fatalf("capacity %d: Empty() = false, want true", capacity)
		}
	}
}

func TestFillThenDrain(t *testing.T) {
	const capacity = 8
	q, err := bmpmc.NewBoundedMpmcQueue[int](capacity)
	if err != nil {
		t.Fatalf("NewBoundedMpmcQueue: %v", err)
	}

	for i := range capacity {
		if !q.TryPush(i, 0) {
			t.Fatalf("TryPush(%d): want true", i)
		}
	}
	if q.TryPush(999, 0) {
		t.Fatalf("TryPush on a full ring: want false")
	}
	if got := q.Size(); got != capacity {
		t.Fatalf("Size() = %d, want %d", got, capacity)
	}

	for i := range capacity {
		v, ok := q.TryPop(0)
		if !ok || v != i {
			t.Fatalf("TryPop() = (%d, %v), want (%d, true)", v, ok, i)
		}
	}
	if _, ok := q.TryPop(0); ok {
		t.Fatalf("TryPop on an empty ring: want false")
	}
	if !q.Empty() {
		t.Fatalf("Empty() = false, want true")
	}
}

func TestTryPushAttemptsBudget(t *testing.T) {
	q, err := bmpmc.NewBoundedMpmcQueue[int](1)
	if err != nil {
		t.Fatalf("NewBoundedMpmcQueue: %v", err)
	}
	if !q.TryPush(1, 4) {
		t.Fatalf("TryPush on empty single-slot ring: want true")
	}
	if q.TryPush(2, 4) {
		t.Fatalf("TryPush on a full ring with a retry budget: want false")
	}
}

func TestTryPopAttemptsBudget(t *testing.T) {
	q, err := bmpmc.NewBoundedMpmcQueue[int](1)
	if err != nil {
		t.Fatalf("NewBoundedMpmcQueue: %v", err)
	}
	if _, ok := q.TryPop(4); ok {
		t.Fatalf("TryPop on an empty ring with a retry budget: want false")
	}
}

func TestBlockingPushPop(t *testing.T) {
	q, err := bmpmc.NewBoundedMpmcQueue[int](4)
	if err != nil {
		t.Fatalf("NewBoundedMpmcQueue: %v", err)
	}
	for i := range 4 {
		q.Push(i)
	}
	for i := range 4 {
		if v := q.Pop(); v != i {
			t.Fatalf("Pop() = %d, want %d", v, i)
		}
	}
}
