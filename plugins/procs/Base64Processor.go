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
	"encoding/base64"
	"fmt"

	"github.com/logsieve/logsieve/pkg/logsieve/parseerr"
	"github.com/logsieve/logsieve/pkg/logsieve/rawdata"
)

// Base64Processor decodes the whole payload as base64 into an owned byte
// payload. The transform is semantically required to fail on input that is
// not valid base64, for every shape.
type Base64Processor struct {
	// Encoding defaults to base64.StdEncoding when nil.
	Encoding *base64.Encoding
}

func (Base64Processor) Name() string {
	return "base64"
}

func (p Base64Processor) Process(data rawdata.RawData) (rawdata.RawData, error) {
	enc := p.Encoding
	if enc == nil {
		enc = base64.StdEncoding
	}
	src := data.AsBytes()
	dst := make([]byte, enc.DecodedLen(len(src)))
	n, err := enc.Decode(dst, src)
	if err != nil {
		data.Release()
		return rawdata.RawData{}, parseerr.NewLineProc(fmt.Sprintf("base64: %v", err))
	}
	data.Release()
	return rawdata.FromBytes(dst[:n]), nil
}
