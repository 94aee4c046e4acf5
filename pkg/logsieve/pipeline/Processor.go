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

// Package pipeline defines the contract a pre/post transform implements.
// Chaining processors, ordering them and feeding the result to a parser is
// the host's job; this package only specifies single-stage behavior.
package pipeline

import (
	"github.com/logsieve/logsieve/pkg/logsieve/rawdata"
)

// Processor transforms a payload into a new payload, for example decoding
// base64, trimming whitespace or unescaping.
//
// Process must be total over the payload shapes: a processor that only
// handles one shape passes the others through unmodified instead of failing,
// unless the transform is semantically required to fail on that shape (which
// the implementation documents). It must also be referentially transparent —
// same input value, same output, no hidden state between calls — so that a
// host can reorder, retry or parallelize independent processors.
type Processor interface {
	Process(data rawdata.RawData) (rawdata.RawData, error)

	// Name returns a stable identifier used by the host pipeline driver
	// for composition and logging.
	Name() string
}
