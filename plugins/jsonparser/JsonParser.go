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

package jsonparser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/araddon/dateparse"
	"go.uber.org/zap"

	"github.com/logsieve/logsieve/pkg/logsieve/events"
	"github.com/logsieve/logsieve/pkg/logsieve/parseerr"
	"github.com/logsieve/logsieve/pkg/logsieve/parser"
	"github.com/logsieve/logsieve/pkg/logsieve/rawdata"
)

type JsonParserConfig struct {
	// TimeField, if set, names the JSON field whose value becomes the
	// record timestamp. The value is also copied into the "_time" field.
	TimeField string
}

// JsonParser parses one JSON object from the front of the payload and returns
// everything after the decoded value as the remainder. An empty object "{}"
// is a valid record with no fields.
type JsonParser struct {
	Cfg JsonParserConfig

	Logger *zap.Logger
}

func (p *JsonParser) Name() string {
	return "json"
}

func (p *JsonParser) Parse(data rawdata.RawData, othersSucceeded int) (*parser.Result, error) {
	b := data.AsBytes()
	lead := bytes.TrimLeft(b, " \t\r\n")
	if len(lead) == 0 || lead[0] != '{' {
		data.Release()
		return nil, parseerr.NewNoMatch()
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		data.Release()
		return nil, parseerr.FromError(err).WithContext("json: decoding object")
	}
	consumed := b[:dec.InputOffset()]

	// Extra validation is only worth paying for while the race has no
	// winner yet; it never changes the parse outcome.
	if othersSucceeded == 0 && !utf8.Valid(consumed) {
		p.Logger.Warn("parsed JSON object contains invalid UTF-8",
			zap.Int("length", len(consumed)))
	}

	rec := events.NewRecord(string(consumed))
	for k, v := range fields {
		if f, ok := v.(float64); ok {
			rec.Fields[k] = fmt.Sprintf("%f", f)
		} else {
			rec.Fields[k] = fmt.Sprint(v)
		}
	}
	if p.Cfg.TimeField != "" {
		if tv, ok := rec.Fields[p.Cfg.TimeField]; ok {
			rec.Fields["_time"] = tv
			if ts, err := dateparse.ParseAny(tv); err == nil {
				rec.Timestamp = ts
			} else if othersSucceeded == 0 {
				p.Logger.Warn("failed to parse time field",
					zap.String("timeField", p.Cfg.TimeField),
					zap.Error(err))
			}
		}
	}

	remainder := rawdata.FromBytes(append([]byte(nil), b[dec.InputOffset():]...))
	data.Release()
	return &parser.Result{Record: rec, Remainder: remainder}, nil
}
