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

package host

import (
	"testing"

	"go.uber.org/zap"

	"github.com/logsieve/logsieve/pkg/logsieve/events"
	"github.com/logsieve/logsieve/pkg/logsieve/parser"
	"github.com/logsieve/logsieve/pkg/logsieve/pipeline"
	"github.com/logsieve/logsieve/pkg/logsieve/rawdata"
	"github.com/logsieve/logsieve/plugins/jsonparser"
	"github.com/logsieve/logsieve/plugins/procs"
)

func newTestHost(t *testing.T, processors ...pipeline.Processor) *Host {
	l, _ := zap.NewDevelopment()
	return &Host{
		Processors: processors,
		Parser:     &jsonparser.JsonParser{Logger: l},
		Logger:     l,
	}
}

func TestHandleTrimThenParse(t *testing.T) {
	h := newTestHost(t, procs.TrimProcessor{})
	records, err := h.Handle(rawdata.FromString(`  {"msg":"hello"}  `))
	if err != nil {
		t.Fatalf("TestHandleTrimThenParse got unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Fields["msg"] != "hello" {
		t.Fatalf("TestHandleTrimThenParse got records=%v", records)
	}
}

func TestHandleMultipleRecords(t *testing.T) {
	h := newTestHost(t)
	records, err := h.Handle(rawdata.FromString(`{"a":"1"}{"b":"2"}`))
	if err != nil {
		t.Fatalf("TestHandleMultipleRecords got unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("TestHandleMultipleRecords got %v records, expected 2", len(records))
	}
	if records[0].Fields["a"] != "1" || records[1].Fields["b"] != "2" {
		t.Fatalf("TestHandleMultipleRecords got records=%v %v", records[0].Fields, records[1].Fields)
	}
}

func TestHandleNoMatchIsNotAnError(t *testing.T) {
	h := newTestHost(t)
	records, err := h.Handle(rawdata.NewShared([]byte("plain text line")))
	if err != nil {
		t.Fatalf("TestHandleNoMatchIsNotAnError got unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("TestHandleNoMatchIsNotAnError got records=%v", records)
	}
}

// stalledParser returns its whole input as the remainder, consuming nothing.
type stalledParser struct{}

func (stalledParser) Name() string {
	return "stalled"
}

func (stalledParser) Parse(data rawdata.RawData, othersSucceeded int) (*parser.Result, error) {
	return &parser.Result{
		Record:    events.NewRecord(data.String()),
		Remainder: data,
	}, nil
}

func TestHandleParserMakingNoProgressTerminates(t *testing.T) {
	l, _ := zap.NewDevelopment()
	h := &Host{
		Parser: stalledParser{},
		Logger: l,
	}
	records, err := h.Handle(rawdata.FromString("never consumed"))
	if err != nil {
		t.Fatalf("TestHandleParserMakingNoProgressTerminates got unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("TestHandleParserMakingNoProgressTerminates got %v records, expected 1", len(records))
	}
}

func TestHandleProcessorFailureCarriesContext(t *testing.T) {
	h := newTestHost(t, procs.Base64Processor{})
	_, err := h.Handle(rawdata.FromString("!!! not base64 !!!"))
	if err == nil {
		t.Fatal("TestHandleProcessorFailureCarriesContext expected an error")
	}
}
