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

// Package parseerr is the single failure channel shared by parsers and
// pipeline processors. Every fallible contract operation returns an *Error
// carrying one of a closed set of reasons plus a breadcrumb trail of context
// annotations, so a host can decide on recovery by reason kind instead of
// string matching. ReasonNoMatch in particular is a normal outcome when
// parsers race over the same payload and must never be treated as fatal.
package parseerr

import (
	"errors"
	"fmt"
	"strings"
)

// Reason is the closed set of failure kinds.
type Reason int

const (
	// ReasonPlugin is a free-form business-logic failure reported by a
	// parser or processor implementation.
	ReasonPlugin Reason = iota
	// ReasonNoMatch means the input did not match this parser's grammar.
	// In a racing setup this is expected: the host should try the next
	// candidate.
	ReasonNoMatch
	// ReasonLineProc is a failure tied to a specific processing stage or
	// line.
	ReasonLineProc
	// ReasonUniversal wraps a lower-level failure (I/O, encoding,
	// allocation) originating below the plugin layer.
	ReasonUniversal
)

func (r Reason) String() string {
	switch r {
	case ReasonPlugin:
		return "plugin"
	case ReasonNoMatch:
		return "no match"
	case ReasonLineProc:
		return "line processing"
	case ReasonUniversal:
		return "universal"
	default:
		return fmt.Sprintf("unknown reason %d", int(r))
	}
}

// Error is the structured error value used across the contract layer. It is
// created through one of the constructors and grows context annotations on
// its way up through composed stages.
type Error struct {
	reason  Reason
	message string
	cause   error
	context []string
}

// NewPlugin creates a plugin-reported failure with a human-readable message.
func NewPlugin(msg string) *Error {
	return &Error{reason: ReasonPlugin, message: msg}
}

// NewPluginf is NewPlugin with fmt.Sprintf formatting.
func NewPluginf(format string, args ...any) *Error {
	return &Error{reason: ReasonPlugin, message: fmt.Sprintf(format, args...)}
}

// NewNoMatch creates the non-fatal "input not recognized" outcome.
func NewNoMatch() *Error {
	return &Error{reason: ReasonNoMatch}
}

// NewLineProc creates a stage-tied failure. stage should identify the
// processing stage or line that failed, for example "base64: illegal byte".
func NewLineProc(stage string) *Error {
	return &Error{reason: ReasonLineProc, message: stage}
}

// FromError wraps a lower-level failure as ReasonUniversal. An err that
// already is an *Error is returned unchanged so reasons survive double
// wrapping at package boundaries.
func FromError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{reason: ReasonUniversal, cause: err}
}

// WithContext attaches one more annotation describing where the error passed
// through. Annotations accumulate in attachment order and never replace the
// original reason. Returns the receiver for chaining.
func (e *Error) WithContext(msg string) *Error {
	e.context = append(e.context, msg)
	return e
}

// Reason returns the failure kind.
func (e *Error) Reason() Reason {
	return e.reason
}

// Message returns the reason-specific message, if any.
func (e *Error) Message() string {
	return e.message
}

// Context returns the accumulated annotations, innermost first.
func (e *Error) Context() []string {
	return e.context
}

// Error renders the outermost annotation first and the root reason last,
// matching the usual wrapped-error reading order.
func (e *Error) Error() string {
	var sb strings.Builder
	for i := len(e.context) - 1; i >= 0; i-- {
		sb.WriteString(e.context[i])
		sb.WriteString(": ")
	}
	sb.WriteString(e.reason.String())
	if e.message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.message)
	}
	if e.cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.cause.Error())
	}
	return sb.String()
}

// Unwrap exposes the wrapped lower-level failure of a ReasonUniversal error
// to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// ReasonOf extracts the reason from any error produced by this package.
func ReasonOf(err error) (Reason, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.reason, true
	}
	return 0, false
}

// IsNoMatch reports whether err is the non-fatal "try another parser"
// outcome. Hosts must check this before treating a parse failure as fatal.
func IsNoMatch(err error) bool {
	r, ok := ReasonOf(err)
	return ok && r == ReasonNoMatch
}
