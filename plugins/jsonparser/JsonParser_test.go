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
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/logsieve/logsieve/pkg/logsieve/parseerr"
	"github.com/logsieve/logsieve/pkg/logsieve/rawdata"
)

func newTestParser(cfg JsonParserConfig) *JsonParser {
	l, _ := zap.NewDevelopment()
	return &JsonParser{Cfg: cfg, Logger: l}
}

func TestParseEmptyObject(t *testing.T) {
	p := newTestParser(JsonParserConfig{})
	res, err := p.Parse(rawdata.NewShared([]byte{0x7B, 0x7D}), 0)
	if err != nil {
		t.Fatalf("TestParseEmptyObject got unexpected error: %v", err)
	}
	if len(res.Record.Fields) != 0 {
		t.Fatalf("TestParseEmptyObject got fields=%v, expected none", res.Record.Fields)
	}
	if !res.Remainder.IsEmpty() {
		t.Fatalf("TestParseEmptyObject got remainder=%q, expected empty", res.Remainder.String())
	}
}

func TestParseObjectWithRemainder(t *testing.T) {
	p := newTestParser(JsonParserConfig{})
	in := `{"level":"info","count":3}` + "\nnext line"
	res, err := p.Parse(rawdata.FromString(in), 0)
	if err != nil {
		t.Fatalf("TestParseObjectWithRemainder got unexpected error: %v", err)
	}
	if res.Record.Fields["level"] != "info" {
		t.Fatalf("TestParseObjectWithRemainder got fields=%v", res.Record.Fields)
	}
	if res.Record.Fields["count"] != "3.000000" {
		t.Fatalf("TestParseObjectWithRemainder got count=%q", res.Record.Fields["count"])
	}
	if res.Remainder.String() != "\nnext line" {
		t.Fatalf("TestParseObjectWithRemainder got remainder=%q", res.Remainder.String())
	}
}

func TestParseNonJsonIsNoMatch(t *testing.T) {
	p := newTestParser(JsonParserConfig{})
	_, err := p.Parse(rawdata.FromString("127.0.0.1 - - [20/Jan/2021] GET /"), 0)
	if !parseerr.IsNoMatch(err) {
		t.Fatalf("TestParseNonJsonIsNoMatch got %v, expected NoMatch", err)
	}
}

func TestParseTruncatedObjectIsNotNoMatch(t *testing.T) {
	p := newTestParser(JsonParserConfig{})
	_, err := p.Parse(rawdata.FromString(`{"level":`), 0)
	if err == nil {
		t.Fatal("TestParseTruncatedObjectIsNotNoMatch expected an error")
	}
	if parseerr.IsNoMatch(err) {
		t.Fatal("TestParseTruncatedObjectIsNotNoMatch truncated JSON should not be NoMatch")
	}
}

func TestParseTimeField(t *testing.T) {
	p := newTestParser(JsonParserConfig{TimeField: "ts"})
	res, err := p.Parse(rawdata.FromString(`{"ts":"2021-01-20T19:37:00Z","msg":"hi"}`), 0)
	if err != nil {
		t.Fatalf("TestParseTimeField got unexpected error: %v", err)
	}
	if res.Record.Fields["_time"] != "2021-01-20T19:37:00Z" {
		t.Fatalf("TestParseTimeField got _time=%q", res.Record.Fields["_time"])
	}
	want := time.Date(2021, 1, 20, 19, 37, 0, 0, time.UTC)
	if !res.Record.Timestamp.Equal(want) {
		t.Fatalf("TestParseTimeField got timestamp=%v, expected %v", res.Record.Timestamp, want)
	}
}

func TestParseSharedPayloadLeavesOtherHolderUsable(t *testing.T) {
	p := newTestParser(JsonParserConfig{})
	first := rawdata.NewShared([]byte(`{"a":"b"}`))
	second := first.Clone()

	if _, err := p.Parse(first, 0); err != nil {
		t.Fatalf("TestParseSharedPayloadLeavesOtherHolderUsable got unexpected error: %v", err)
	}
	if second.String() != `{"a":"b"}` {
		t.Fatalf("TestParseSharedPayloadLeavesOtherHolderUsable second holder corrupted: %q", second.String())
	}
	second.Release()
}
