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

// Package rawdata contains the unified raw-data value passed between sources,
// pipeline processors and parsers. A RawData is one of three shapes: owned
// text, an owned byte buffer, or one reference to a shared byte buffer. All
// conversions between the shapes are total and never panic.
package rawdata

import (
	"strings"
	"unicode/utf8"
	"unsafe"
)

// Kind identifies the shape of a RawData value.
type Kind int

const (
	// KindString is owned text.
	KindString Kind = iota
	// KindBytes is an exclusively held byte buffer.
	KindBytes
	// KindShared is one reference to a shared, reference-counted byte buffer.
	KindShared
)

// RawData is a single-holder handle over raw input data. A value is either
// borrowed (AsBytes, Len, String, ...) or consumed (IntoBytes, handing it to
// a processor or parser); after a consuming operation the value must not be
// used again. Use Clone to create a second holder and Release to drop a
// KindShared reference that will not be consumed.
type RawData struct {
	kind   Kind
	str    string
	buf    []byte
	shared *SharedBuf
}

// FromString creates a KindString value owning s.
func FromString(s string) RawData {
	return RawData{kind: KindString, str: s}
}

// FromBytes creates a KindBytes value. The caller transfers ownership of b
// and must not modify it afterwards.
func FromBytes(b []byte) RawData {
	return RawData{kind: KindBytes, buf: b}
}

// FromSharedBuf creates a KindShared value taking over one reference to buf.
// A caller that wants to keep its own reference must Retain first.
func FromSharedBuf(buf *SharedBuf) RawData {
	return RawData{kind: KindShared, shared: buf}
}

// NewShared wraps b in a fresh SharedBuf and returns a KindShared value
// holding its only reference. The caller transfers ownership of b.
func NewShared(b []byte) RawData {
	return FromSharedBuf(NewSharedBuf(b))
}

// FromSharedSlice builds a KindShared value from a slice that is shared with
// some other owner, for example a buffer handed out by a legacy producer that
// keeps reusing it. The bytes are always copied once into a freshly allocated
// buffer; the result never aliases b. Producers that can transfer ownership
// should use NewShared instead and skip the copy.
func FromSharedSlice(b []byte) RawData {
	return NewShared(append([]byte(nil), b...))
}

// Kind returns the current shape.
func (d RawData) Kind() Kind {
	return d.kind
}

// AsString returns the text content when the shape is KindString.
func (d RawData) AsString() (string, bool) {
	if d.kind == KindString {
		return d.str, true
	}
	return "", false
}

// AsBytes returns a read-only view of the byte content without copying. The
// view is only valid while the caller still holds d; it must not be modified
// or retained past a consuming operation. For KindString the view aliases the
// string's storage, which is why writes are forbidden.
func (d RawData) AsBytes() []byte {
	switch d.kind {
	case KindString:
		return unsafe.Slice(unsafe.StringData(d.str), len(d.str))
	case KindBytes:
		return d.buf
	default:
		return d.shared.Bytes()
	}
}

// ToBytes returns a freshly allocated copy of the byte content. Use this when
// an owned buffer is needed regardless of cost and d should stay usable.
func (d RawData) ToBytes() []byte {
	return append([]byte(nil), d.AsBytes()...)
}

// IntoBytes consumes d and returns its content as an owned byte buffer.
//
// For KindShared the conversion is copy-free exactly when d holds the only
// remaining reference. That check is a single atomic compare-and-swap of the
// reference count, so when two holders of the same buffer call IntoBytes
// concurrently at most one of them reclaims the buffer; the other copies
// while still holding its reference and releases it afterwards.
// KindBytes moves its buffer without copying. KindString copies exactly once,
// since Go strings may alias immutable storage.
func (d RawData) IntoBytes() []byte {
	switch d.kind {
	case KindString:
		return []byte(d.str)
	case KindBytes:
		return d.buf
	default:
		if data, sole := d.shared.tryReclaim(); sole {
			return data
		}
		// Copy while still holding the reference: as long as it is
		// alive no other holder can reclaim and write to the buffer.
		cp := append([]byte(nil), d.shared.Bytes()...)
		d.shared.release()
		return cp
	}
}

// IsZeroCopy reports whether d is backed by a shared buffer. It says nothing
// about whether a later IntoBytes will avoid a copy; that depends on the
// reference count at the time of that call.
func (d RawData) IsZeroCopy() bool {
	return d.kind == KindShared
}

// Len is the length of the byte-serialized content. For KindString this is
// the byte length, not the rune count.
func (d RawData) Len() int {
	switch d.kind {
	case KindString:
		return len(d.str)
	case KindBytes:
		return len(d.buf)
	default:
		return d.shared.Len()
	}
}

func (d RawData) IsEmpty() bool {
	return d.Len() == 0
}

// Clone creates a second holder with equal content. KindShared clones share
// the underlying buffer through a retained reference; the other shapes copy.
func (d RawData) Clone() RawData {
	switch d.kind {
	case KindString:
		return d
	case KindBytes:
		return RawData{kind: KindBytes, buf: append([]byte(nil), d.buf...)}
	default:
		return RawData{kind: KindShared, shared: d.shared.Retain()}
	}
}

// Release drops a KindShared reference without converting, so that another
// holder can later observe sole ownership. It is a no-op for the other
// shapes. A value must not be used after Release, and a value handed to a
// consuming operation must not be Released on top of that.
func (d RawData) Release() {
	if d.kind == KindShared {
		d.shared.release()
	}
}

// String renders the content as text for diagnostics. Byte shapes that are
// not valid UTF-8 are rendered with U+FFFD replacement characters.
func (d RawData) String() string {
	if d.kind == KindString {
		return d.str
	}
	b := d.AsBytes()
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), "�")
}
