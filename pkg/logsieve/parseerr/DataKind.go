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

package parseerr

import "fmt"

// DataKind classifies low-level data problems encountered while reading or
// decoding payload content, before any grammar-level parse decision is made.
type DataKind int

const (
	// DataFormat is malformed input data.
	DataFormat DataKind = iota
	// DataNotComplete is input cut off before a full value.
	DataNotComplete
	// DataUnparsed is input no parser produced a record for.
	DataUnparsed
	// DataLess is less input than the format requires.
	DataLess
	// DataEmpty is empty input where content is required.
	DataEmpty
	// DataLessStruct is a record missing a required structural element.
	DataLessStruct
	// DataLessDef is a reference to a definition that is not present.
	DataLessDef
)

func (k DataKind) String() string {
	switch k {
	case DataFormat:
		return "format error"
	case DataNotComplete:
		return "not complete"
	case DataUnparsed:
		return "no parse data"
	case DataLess:
		return "less data"
	case DataEmpty:
		return "empty data"
	case DataLessStruct:
		return "struct less"
	case DataLessDef:
		return "define less"
	default:
		return fmt.Sprintf("unknown data kind %d", int(k))
	}
}

// FromData folds a data-level problem into a ReasonUniversal error, keeping
// the kind and detail in the message.
func FromData(kind DataKind, detail string) *Error {
	msg := kind.String()
	if detail != "" {
		msg = msg + ": " + detail
	}
	return &Error{reason: ReasonUniversal, message: msg}
}
