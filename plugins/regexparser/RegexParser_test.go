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
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/logsieve/logsieve/pkg/logsieve/parseerr"
	"github.com/logsieve/logsieve/pkg/logsieve/rawdata"
)

func newTestParser(cfg RegexParserConfig) *RegexParser {
	return &RegexParser{Cfg: cfg, Logger: slog.Default()}
}

func TestParseNamedGroups(t *testing.T) {
	p := newTestParser(RegexParserConfig{
		Extractor: regexp.MustCompile(`userid was (?P<userid>\d+)\.`),
	})
	res, err := p.Parse(rawdata.FromString("The userid was 123.\nsecond line"), 0)
	if err != nil {
		t.Fatalf("TestParseNamedGroups got unexpected error: %v", err)
	}
	if res.Record.Fields["userid"] != "123" {
		t.Fatalf("TestParseNamedGroups got fields=%v", res.Record.Fields)
	}
	if res.Remainder.String() != "second line" {
		t.Fatalf("TestParseNamedGroups got remainder=%q", res.Remainder.String())
	}
}

func TestParseNoMatch(t *testing.T) {
	p := newTestParser(RegexParserConfig{
		Extractor: regexp.MustCompile(`userid was (?P<userid>\d+)\.`),
	})
	_, err := p.Parse(rawdata.NewShared([]byte("nothing to see here")), 0)
	if !parseerr.IsNoMatch(err) {
		t.Fatalf("TestParseNoMatch got %v, expected NoMatch", err)
	}
}

func TestParseEmptyObjectIsNoMatch(t *testing.T) {
	p := newTestParser(RegexParserConfig{
		Extractor: regexp.MustCompile(`userid was (?P<userid>\d+)\.`),
	})
	_, err := p.Parse(rawdata.NewShared([]byte{0x7B, 0x7D}), 0)
	if !parseerr.IsNoMatch(err) {
		t.Fatalf("TestParseEmptyObjectIsNoMatch got %v, expected NoMatch", err)
	}
}

func TestParseTimeGroup(t *testing.T) {
	p := newTestParser(RegexParserConfig{
		Extractor: regexp.MustCompile(`^(?P<ts>\S+) (?P<msg>.*)$`),
		TimeGroup: "ts",
	})
	res, err := p.Parse(rawdata.FromString("2021-01-20T19:37:00Z started up"), 0)
	if err != nil {
		t.Fatalf("TestParseTimeGroup got unexpected error: %v", err)
	}
	want := time.Date(2021, 1, 20, 19, 37, 0, 0, time.UTC)
	if !res.Record.Timestamp.Equal(want) {
		t.Fatalf("TestParseTimeGroup got timestamp=%v, expected %v", res.Record.Timestamp, want)
	}
	if res.Record.Fields["msg"] != "started up" {
		t.Fatalf("TestParseTimeGroup got fields=%v", res.Record.Fields)
	}
}

func TestParseLastLineWithoutDelimiter(t *testing.T) {
	p := newTestParser(RegexParserConfig{
		Extractor: regexp.MustCompile(`level=(?P<level>\w+)`),
	})
	res, err := p.Parse(rawdata.FromBytes([]byte("level=info")), 0)
	if err != nil {
		t.Fatalf("TestParseLastLineWithoutDelimiter got unexpected error: %v", err)
	}
	if !res.Remainder.IsEmpty() {
		t.Fatalf("TestParseLastLineWithoutDelimiter got remainder=%q", res.Remainder.String())
	}
}
