// Copyright 2024 The logsieve authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rawdata

import (
	"go.uber.org/atomic"
)

// SharedBuf is an immutable byte buffer shared between any number of holders.
// Each holder owns exactly one reference. A reference is created by Retain and
// given up either by RawData.Release or by a consuming conversion such as
// RawData.IntoBytes. The buffer contents must never be modified while more
// than one reference exists.
type SharedBuf struct {
	refs *atomic.Int64
	data []byte
}

// NewSharedBuf wraps data in a SharedBuf with a single reference. The caller
// transfers ownership of data and must not modify it afterwards.
func NewSharedBuf(data []byte) *SharedBuf {
	return &SharedBuf{
		refs: atomic.NewInt64(1),
		data: data,
	}
}

// Retain adds a reference and returns the same buffer, so it can be used
// inline when handing the buffer to another holder.
func (b *SharedBuf) Retain() *SharedBuf {
	b.refs.Inc()
	return b
}

// Bytes returns a read-only view of the buffer contents. Callers must not
// modify the returned slice.
func (b *SharedBuf) Bytes() []byte {
	return b.data
}

func (b *SharedBuf) Len() int {
	return len(b.data)
}

// Refs returns the current reference count. Only useful for diagnostics and
// tests: by the time the caller looks at the value another holder may already
// have retained or released.
func (b *SharedBuf) Refs() int64 {
	return b.refs.Load()
}

// tryReclaim atomically takes ownership of the buffer when the caller holds
// the only remaining reference. On success the reference is consumed and the
// buffer returned. On failure the caller keeps its reference, so it can
// still safely read the buffer (no other holder can reclaim while this
// reference is alive) and must release it when done. The decision is a
// single compare-and-swap of the count from 1 to 0, never a separate check
// followed by a separate take.
func (b *SharedBuf) tryReclaim() (data []byte, ok bool) {
	if b.refs.CompareAndSwap(1, 0) {
		return b.data, true
	}
	return nil, false
}

// release drops the caller's reference without taking the buffer.
func (b *SharedBuf) release() {
	b.refs.Dec()
}
