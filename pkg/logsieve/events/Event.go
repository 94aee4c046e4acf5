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

// Package events holds the structured record type that parsers produce. The
// contract packages treat records as opaque: they are created by parser
// implementations and interpreted by the host.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Record is one structured event extracted from raw input.
type Record struct {
	Id        uuid.UUID
	Raw       string
	Timestamp time.Time
	Fields    map[string]string
}

// NewRecord creates a Record for the given raw input with a fresh id and an
// empty field map.
func NewRecord(raw string) *Record {
	return &Record{
		Id:     uuid.New(),
		Raw:    raw,
		Fields: map[string]string{},
	}
}
