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

package regexparser

import (
	"bytes"
	"log/slog"
	"regexp"

	"github.com/araddon/dateparse"

	"github.com/logsieve/logsieve/pkg/logsieve/events"
	"github.com/logsieve/logsieve/pkg/logsieve/parseerr"
	"github.com/logsieve/logsieve/pkg/logsieve/parser"
	"github.com/logsieve/logsieve/pkg/logsieve/rawdata"
)

type RegexParserConfig struct {
	// Extractor must match the first line of the payload. Named capture
	// groups become record fields.
	Extractor *regexp.Regexp

	// TimeGroup, if set, names the capture group whose value becomes the
	// record timestamp.
	TimeGroup string
}

// RegexParser matches a regular expression against the first line of the
// payload and turns its named capture groups into record fields. Everything
// after the line delimiter is the remainder.
type RegexParser struct {
	Cfg RegexParserConfig

	Logger *slog.Logger
}

func (p *RegexParser) Name() string {
	return "regex"
}

func (p *RegexParser) Parse(data rawdata.RawData, othersSucceeded int) (*parser.Result, error) {
	b := data.AsBytes()
	line := b
	var rest []byte
	if idx := bytes.IndexByte(b, '\n'); idx >= 0 {
		line = b[:idx]
		rest = b[idx+1:]
	}

	m := p.Cfg.Extractor.FindSubmatch(line)
	if m == nil {
		data.Release()
		return nil, parseerr.NewNoMatch()
	}

	rec := events.NewRecord(string(line))
	for i, name := range p.Cfg.Extractor.SubexpNames() {
		if i == 0 || name == "" || m[i] == nil {
			continue
		}
		rec.Fields[name] = string(m[i])
	}
	if p.Cfg.TimeGroup != "" {
		if tv, ok := rec.Fields[p.Cfg.TimeGroup]; ok {
			rec.Fields["_time"] = tv
			if ts, err := dateparse.ParseAny(tv); err == nil {
				rec.Timestamp = ts
			} else if othersSucceeded == 0 {
				p.Logger.Warn("failed to parse time group",
					slog.String("timeGroup", p.Cfg.TimeGroup),
					slog.Any("error", err))
			}
		}
	}

	remainder := rawdata.FromBytes(append([]byte(nil), rest...))
	data.Release()
	return &parser.Result{Record: rec, Remainder: remainder}, nil
}
