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
	"log/slog"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/logsieve/logsieve/pkg/logsieve"
	"github.com/logsieve/logsieve/pkg/logsieve/parser"
)

var Plugin = logsieve.Plugin{
	Name: "@logsieve/jsonparser",
	Provide: func(c *dig.Container, logger *slog.Logger) error {
		return c.Provide(func(cfg JsonParserConfig, l *zap.Logger) parser.Parser {
			return &JsonParser{
				Cfg:    cfg,
				Logger: l,
			}
		}, dig.Group(logsieve.GroupParsers))
	},

	JsonSchema: func() (map[string]any, error) {
		return map[string]any{
			"type": "object",
			"properties": map[string]any{
				"timeField": map[string]any{
					"type":        "string",
					"description": "The name of the JSON field containing the timestamp of the event.",
				},
			},
		}, nil
	},
}
