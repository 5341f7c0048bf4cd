// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package refqueue_test

import (
	"testing"

	"code.hybscloud.com/bmpmc/internal/refqueue"
)

func TestReferenceQueueBasic(t *testing.T) {
	q := refqueue.New[int](3)

	if q.Cap() != 4 {
		t.Fatalf("Cap: got %d, want 4", q.Cap())
	}

	for i := range 4 {
		if ok := q.Enqueue(i + 100); !ok {
			t.Fatalf("Enqueue(%d): want true", i)
		}
	}

	if ok := q.Enqueue(999); ok {
		t.Fatalf("Enqueue on full: got true, want false")
	}

	for i := range 4 {
		val, ok := q.Dequeue()
		if !ok {
			t.Fatalf("Dequeue(%d): want true", i)
		}
		if val != i+100 {
			t.Fatalf("Dequeue(%d): got %d, want %d", i, val, i+100)
		}
	}

	if _, ok := q.Dequeue(); ok {
		t.Fatalf("Dequeue on empty: got true, want false")
	}
}
