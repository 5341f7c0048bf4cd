// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command bmpmcbench drives the producer/consumer benchmark harness
// described in spec.md §2: it runs bmpmc.BoundedMpmcQueue and the
// internal/refqueue comparison baseline under the same workload and
// prints their throughput side by side.
//
// It is a test collaborator, not part of the core module: nothing under
// this module's public API depends on it.
package main

import (
	"flag"
	"fmt"
	"os"

	"code.hybscloud.com/bmpmc/internal/bench"
)

func main() {
	capacity := flag.Int("capacity", 1024, "ring capacity (rounds up to a power of 2)")
	producers := flag.Int("producers", 4, "number of producer goroutines")
	consumers := flag.Int("consumers", 4, "number of consumer goroutines")
	itemsPerProducer := flag.Int("items", 1_000_000, "items pushed per producer")
	flag.Parse()

	cfg := bench.Config{
		Capacity:         *capacity,
		Producers:        *producers,
		Consumers:        *consumers,
		ItemsPerProducer: *itemsPerProducer,
	}

	boundedResult, err := bench.RunBoundedMpmc(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bmpmcbench: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(boundedResult)

	refResult := bench.RunReference(cfg)
	fmt.Println(refResult)
}
