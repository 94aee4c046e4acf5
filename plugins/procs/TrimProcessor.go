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

package procs

import (
	"strings"

	"github.com/logsieve/logsieve/pkg/logsieve/rawdata"
)

// TrimProcessor removes leading and trailing whitespace from text payloads.
// Byte payloads pass through unmodified: whether raw bytes contain trimmable
// "whitespace" depends on the encoding, which this processor does not know.
type TrimProcessor struct{}

func (TrimProcessor) Name() string {
	return "trim"
}

func (TrimProcessor) Process(data rawdata.RawData) (rawdata.RawData, error) {
	if s, ok := data.AsString(); ok {
		return rawdata.FromString(strings.TrimSpace(s)), nil
	}
	return data, nil
}
