// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bmpmc

import "errors"

// ErrInvalidCapacity is returned by [NewBoundedMpmcQueue] when the
// requested capacity is zero or exceeds [MaxCapacity].
//
// Unlike [code.hybscloud.com/iox.ErrWouldBlock], this is a genuine
// construction failure, not a retryable control-flow signal: no queue is
// returned alongside it, and there is nothing for the caller to retry.
var ErrInvalidCapacity = errors.New("bmpmc: invalid capacity")
