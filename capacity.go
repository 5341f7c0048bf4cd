// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bmpmc

// MaxCapacity is the largest capacity a [BoundedMpmcQueue] may be
// constructed with. Counters are 64-bit; reserving two bits of headroom
// (2^62 instead of 2^64) leaves room for the transient over/under-run that
// admission's increment-then-undo retry produces under racing
// fetch-modify-undo sequences, without ever approaching the signed range's
// actual limit.
const MaxCapacity = 1 << 62

// RoundUpToPowerOfTwo returns the smallest power of two greater than or
// equal to n. n must be >= 1; RoundUpToPowerOfTwo(0) returns 0.
func RoundUpToPowerOfTwo(n uint64) uint64 {
	if n <= 1 {
		return n
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
