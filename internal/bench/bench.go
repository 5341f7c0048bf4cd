// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bench is the producer/consumer benchmark harness spec.md §2
// describes as an out-of-core-scope test collaborator: it spins up
// producer and consumer goroutines, synchronizes their start with a
// barrier, and reports throughput for both bmpmc.BoundedMpmcQueue and the
// internal/refqueue comparison baseline.
//
// Nothing in bmpmc.BoundedMpmcQueue's correctness depends on this
// package; it exists to answer "how fast", not "is it correct".
package bench

import (
	"fmt"
	"sync"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/bmpmc"
	"code.hybscloud.com/bmpmc/internal/refqueue"
	"code.hybscloud.com/iox"
	"github.com/agilira/go-timecache"
)

// Config describes one benchmark run.
type Config struct {
	Capacity         int
	Producers        int
	Consumers        int
	ItemsPerProducer int
}

// Result reports the outcome of one benchmark run.
type Result struct {
	Queue            string
	Items            int
	Elapsed          time.Duration
	ThroughputPerSec float64
}

func (r Result) String() string {
	return fmt.Sprintf("%-9s items=%-9d elapsed=%-12s throughput=%.0f ops/s", r.Queue, r.Items, r.Elapsed, r.ThroughputPerSec)
}

// queue is the minimal shape the harness needs from either implementation
// under comparison; internal/refqueue.ReferenceQueue and
// bmpmc.BoundedMpmcQueue are adapted to it below.
type queue interface {
	push(v int)
	tryPop() (int, bool)
}

type boundedAdapter struct{ q *bmpmc.BoundedMpmcQueue[int] }

func (a boundedAdapter) push(v int)          { a.q.Push(v) }
func (a boundedAdapter) tryPop() (int, bool) { return a.q.TryPop(4) }

type referenceAdapter struct{ q *refqueue.ReferenceQueue[int] }

func (a referenceAdapter) push(v int) {
	backoff := iox.Backoff{}
	for !a.q.Enqueue(v) {
		backoff.Wait()
	}
}
func (a referenceAdapter) tryPop() (int, bool) { return a.q.Dequeue() }

// RunBoundedMpmc benchmarks bmpmc.BoundedMpmcQueue under cfg.
func RunBoundedMpmc(cfg Config) (Result, error) {
	q, err := bmpmc.NewBoundedMpmcQueue[int](cfg.Capacity)
	if err != nil {
		return Result{}, err
	}
	return run("BoundedMpmc", cfg, boundedAdapter{q}), nil
}

// RunReference benchmarks the internal/refqueue.ReferenceQueue baseline
// under cfg, draining it once all producers finish so its livelock
// threshold doesn't starve the consumers at the tail of the run.
func RunReference(cfg Config) Result {
	q := refqueue.New[int](cfg.Capacity)
	return run("Reference", cfg, referenceAdapter{q}, q.Drain)
}

// run drives cfg.Producers producer and cfg.Consumers consumer goroutines against q,
// gating their start on a barrier and timing the run with a low-overhead
// cached clock rather than calling time.Now() on every sample.
func run(name string, cfg Config, q queue, onProducersDone ...func()) Result {
	clock := timecache.NewWithResolution(time.Millisecond)
	defer clock.Stop()

	total := cfg.Producers * cfg.ItemsPerProducer
	barrier := make(chan struct{})
	var prodWg, consWg sync.WaitGroup
	var consumed atomix.Int64

	for p := range cfg.Producers {
		prodWg.Add(1)
		go func(id int) {
			defer prodWg.Done()
			<-barrier
			for seq := range cfg.ItemsPerProducer {
				q.push(id*cfg.ItemsPerProducer + seq)
			}
		}(p)
	}

	for range cfg.Consumers {
		consWg.Add(1)
		go func() {
			defer consWg.Done()
			backoff := iox.Backoff{}
			for consumed.Load() < int64(total) {
				if _, ok := q.tryPop(); ok {
					consumed.Add(1)
					backoff.Reset()
					continue
				}
				backoff.Wait()
			}
		}()
	}

	start := clock.CachedTime()
	close(barrier)
	prodWg.Wait()
	for _, fn := range onProducersDone {
		fn()
	}
	consWg.Wait()
	elapsed := clock.CachedTime().Sub(start)

	throughput := float64(0)
	if elapsed > 0 {
		throughput = float64(total) / elapsed.Seconds()
	}

	return Result{Queue: name, Items: total, Elapsed: elapsed, ThroughputPerSec: throughput}
}
