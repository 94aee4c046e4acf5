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

// Package parser defines the contract a parsing plugin implements. The host
// may race several parsers against the same payload on separate goroutines;
// nothing here requires or provides any synchronization beyond what the
// contract demands of implementations.
package parser

import (
	"github.com/logsieve/logsieve/pkg/logsieve/events"
	"github.com/logsieve/logsieve/pkg/logsieve/rawdata"
)

// Result is a successful parse: one structured record plus whatever part of
// the payload the parser did not consume. Remainder may be empty; a non-empty
// remainder is handed to downstream stages or parsed again.
type Result struct {
	Record    *events.Record
	Remainder rawdata.RawData
}

// Parser is the contract a parsing plugin implements.
//
// Parse consumes data and attempts to interpret a prefix or the whole of it
// as one record. On failure it returns a *parseerr.Error; parseerr.NewNoMatch
// is the normal "not my format" outcome in a racing setup and must never be
// reported by panicking.
//
// othersSucceeded is the number of competing parsers in the host's current
// race that have already succeeded. It is advisory only: an implementation
// may use it to skip expensive validation once the race has a winner
// elsewhere, or validate more strictly when it is the only candidate left,
// but it must never change its parse decision based on the count.
//
// Implementations must be safe to call concurrently from multiple goroutines
// without external locking: Parse must not depend on mutable receiver state.
type Parser interface {
	Parse(data rawdata.RawData, othersSucceeded int) (*Result, error)

	// Name returns a stable, human-readable identifier used for
	// diagnostics and the host's race arbitration logging.
	Name() string
}
