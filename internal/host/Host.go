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

// Package host is a minimal pipeline driver used by the dev tooling: an
// ordered processor chain feeding one parser. It deliberately runs a single
// parser so this repository does not encode any race-arbitration policy.
package host

import (
	"context"

	"go.uber.org/zap"

	"github.com/logsieve/logsieve/pkg/logsieve/events"
	"github.com/logsieve/logsieve/pkg/logsieve/parseerr"
	"github.com/logsieve/logsieve/pkg/logsieve/parser"
	"github.com/logsieve/logsieve/pkg/logsieve/pipeline"
	"github.com/logsieve/logsieve/pkg/logsieve/rawdata"
)

type Host struct {
	Processors []pipeline.Processor
	Parser     parser.Parser

	Logger *zap.Logger
}

// Handle runs one payload through the processor chain and then parses
// records out of it until the payload is exhausted or the parser reports
// NoMatch. Records parsed before a failure are returned alongside the error.
func (h *Host) Handle(data rawdata.RawData) ([]*events.Record, error) {
	var err error
	for _, p := range h.Processors {
		data, err = p.Process(data)
		if err != nil {
			return nil, parseerr.FromError(err).WithContext("processor " + p.Name())
		}
	}

	var records []*events.Record
	for !data.IsEmpty() {
		before := data.Len()
		res, err := h.Parser.Parse(data, 0)
		if err != nil {
			if parseerr.IsNoMatch(err) {
				h.Logger.Debug("parser did not match",
					zap.String("parser", h.Parser.Name()))
				return records, nil
			}
			return records, parseerr.FromError(err).WithContext("parser " + h.Parser.Name())
		}
		records = append(records, res.Record)
		if res.Remainder.Len() >= before {
			// A parser that consumes nothing would spin this loop
			// forever. Drop the remainder instead.
			h.Logger.Warn("parser made no progress, dropping remainder",
				zap.String("parser", h.Parser.Name()),
				zap.Int("remainderLength", res.Remainder.Len()))
			res.Remainder.Release()
			return records, nil
		}
		data = res.Remainder
	}
	return records, nil
}

// Run drains payloads from in until the channel closes or the context is
// cancelled, delivering records to deliver. Failures are logged and the
// offending payload skipped; a NoMatch simply produces no records.
func (h *Host) Run(ctx context.Context, in <-chan rawdata.RawData, deliver func(*events.Record)) {
	for {
		select {
		case <-ctx.Done():
			return
		case data, ok := <-in:
			if !ok {
				return
			}
			records, err := h.Handle(data)
			if err != nil {
				h.Logger.Warn("error handling payload",
					zap.String("parser", h.Parser.Name()),
					zap.Error(err))
			}
			for _, rec := range records {
				deliver(rec)
			}
		}
	}
}
