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

	"go.uber.org/dig"

	"github.com/logsieve/logsieve/pkg/logsieve"
	"github.com/logsieve/logsieve/pkg/logsieve/parser"
)

var Plugin = logsieve.Plugin{
	Name: "@logsieve/regexparser",
	Provide: func(c *dig.Container, logger *slog.Logger) error {
		return c.Provide(func(cfg RegexParserConfig) parser.Parser {
			return &RegexParser{
				Cfg:    cfg,
				Logger: logger,
			}
		}, dig.Group(logsieve.GroupParsers))
	},

	JsonSchema: func() (map[string]any, error) {
		return map[string]any{
			"type": "object",
			"properties": map[string]any{
				"extractor": map[string]any{
					"type":        "string",
					"description": "A regular expression with named capture groups which will be matched against the first line of the payload.",
				},
				"timeGroup": map[string]any{
					"type":        "string",
					"description": "The name of the capture group containing the timestamp of the event.",
				},
			},
		}, nil
	},
}
