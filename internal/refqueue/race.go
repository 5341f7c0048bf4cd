// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package refqueue

// RaceEnabled is true when the race detector is active.
// The benchmark harness's test is excluded from -race builds by its build
// tag: SCQ's cycle-based slot validation relies on acquire-release
// orderings between unrelated variables that the race detector cannot
// reconstruct, so it reports false positives on an algorithm that is
// otherwise correct.
const RaceEnabled = true
