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

// sieveparse tails a log file, runs each line through a processor chain and a
// single flag-selected parser, and logs the extracted records. It is a dev
// harness for plugin implementations, not a host framework: it never races
// parsers and encodes no arbitration policy.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"regexp"
	"strings"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/logsieve/logsieve/internal/host"
	"github.com/logsieve/logsieve/internal/source"
	"github.com/logsieve/logsieve/pkg/logsieve"
	"github.com/logsieve/logsieve/pkg/logsieve/events"
	"github.com/logsieve/logsieve/pkg/logsieve/parser"
	"github.com/logsieve/logsieve/pkg/logsieve/pipeline"
	"github.com/logsieve/logsieve/plugins/jsonparser"
	"github.com/logsieve/logsieve/plugins/procs"
	"github.com/logsieve/logsieve/plugins/regexparser"
)

var plugins = []logsieve.Plugin{
	jsonparser.Plugin,
	regexparser.Plugin,
	procs.Plugin,
}

var fileFlag string
var parserFlag string
var extractorFlag string
var timeFieldFlag string
var procsFlag string

type hostParams struct {
	dig.In

	Parsers    []parser.Parser      `group:"parsers"`
	Processors []pipeline.Processor `group:"processors"`
}

func main() {
	flag.StringVar(&fileFlag, "file", "log-0.txt", "The name of the file to tail.")
	flag.StringVar(&parserFlag, "parser", "json", "The name of the parser to use. One of 'json' and 'regex'.")
	flag.StringVar(&extractorFlag, "extractor", "^(?P<_time>\\S+) (?P<msg>.*)$", "The regular expression used by the regex parser. Named capture groups become fields.")
	flag.StringVar(&timeFieldFlag, "timefield", "ts", "The name of the field containing the timestamp of the event.")
	flag.StringVar(&procsFlag, "procs", "trim", "A comma separated list of processors to run before parsing. Available: 'trim', 'base64', 'hexdec'. Empty for none.")
	flag.Parse()

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalln("got error when creating logger:", err)
	}
	slogLogger := slog.Default()

	c := dig.New()
	if err := c.Provide(func() *zap.Logger { return zapLogger }); err != nil {
		zapLogger.Fatal("failed to provide logger", zap.Error(err))
	}
	if err := c.Provide(func() jsonparser.JsonParserConfig {
		return jsonparser.JsonParserConfig{TimeField: timeFieldFlag}
	}); err != nil {
		zapLogger.Fatal("failed to provide json parser config", zap.Error(err))
	}
	if err := c.Provide(func() regexparser.RegexParserConfig {
		return regexparser.RegexParserConfig{
			Extractor: regexp.MustCompile(extractorFlag),
			TimeGroup: "_time",
		}
	}); err != nil {
		zapLogger.Fatal("failed to provide regex parser config", zap.Error(err))
	}
	for _, p := range plugins {
		if err := p.Provide(c, slogLogger); err != nil {
			zapLogger.Fatal("failed to load plugin",
				zap.String("plugin", p.Name),
				zap.Error(err))
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err = c.Invoke(func(params hostParams) error {
		var chosen parser.Parser
		for _, p := range params.Parsers {
			if p.Name() == parserFlag {
				chosen = p
			}
		}
		if chosen == nil {
			zapLogger.Fatal("no parser found with the given name",
				zap.String("parser", parserFlag))
		}

		available := map[string]pipeline.Processor{}
		for _, p := range params.Processors {
			available[p.Name()] = p
		}
		var chain []pipeline.Processor
		for _, name := range strings.Split(procsFlag, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			proc, ok := available[name]
			if !ok {
				zapLogger.Fatal("no processor found with the given name",
					zap.String("processor", name))
			}
			chain = append(chain, proc)
		}

		src, err := source.NewFileSource(ctx, fileFlag, zapLogger.Named("FileSource"))
		if err != nil {
			return err
		}
		go func() {
			if err := src.Start(); err != nil {
				zapLogger.Error("file source failed", zap.Error(err))
				cancel()
			}
		}()

		h := &host.Host{
			Processors: chain,
			Parser:     chosen,
			Logger:     zapLogger.Named("Host"),
		}
		h.Run(ctx, src.Out, func(rec *events.Record) {
			zapLogger.Info("parsed record",
				zap.String("id", rec.Id.String()),
				zap.Time("timestamp", rec.Timestamp),
				zap.Any("fields", rec.Fields))
		})
		return nil
	})
	if err != nil {
		zapLogger.Fatal("got error when running", zap.Error(err))
	}
}
