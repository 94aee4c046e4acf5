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
	"encoding/hex"
	"fmt"

	"github.com/logsieve/logsieve/pkg/logsieve/parseerr"
	"github.com/logsieve/logsieve/pkg/logsieve/rawdata"
)

// HexProcessor decodes the whole payload as hexadecimal into an owned byte
// payload. Like Base64Processor it is semantically required to fail on input
// that is not valid hex.
type HexProcessor struct{}

func (HexProcessor) Name() string {
	return "hexdec"
}

func (HexProcessor) Process(data rawdata.RawData) (rawdata.RawData, error) {
	src := data.AsBytes()
	dst := make([]byte, hex.DecodedLen(len(src)))
	n, err := hex.Decode(dst, src)
	if err != nil {
		data.Release()
		return rawdata.RawData{}, parseerr.NewLineProc(fmt.Sprintf("hexdec: %v", err))
	}
	data.Release()
	return rawdata.FromBytes(dst[:n]), nil
}
