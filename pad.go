// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bmpmc

// pad is cache line padding to prevent false sharing between the six
// independently-updated counters described in the package doc.
type pad [64]byte

// padShort follows each slot's value; for an 8-byte value it fills the
// slot out to one 64-byte cache line.
type padShort [64 - 8]byte
