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
	"log/slog"

	"go.uber.org/dig"

	"github.com/logsieve/logsieve/pkg/logsieve"
	"github.com/logsieve/logsieve/pkg/logsieve/pipeline"
)

var Plugin = logsieve.Plugin{
	Name: "@logsieve/procs",
	Provide: func(c *dig.Container, logger *slog.Logger) error {
		err := c.Provide(func() pipeline.Processor {
			return TrimProcessor{}
		}, dig.Group(logsieve.GroupProcessors))
		if err != nil {
			return err
		}
		err = c.Provide(func() pipeline.Processor {
			return Base64Processor{}
		}, dig.Group(logsieve.GroupProcessors))
		if err != nil {
			return err
		}
		err = c.Provide(func() pipeline.Processor {
			return HexProcessor{}
		}, dig.Group(logsieve.GroupProcessors))
		if err != nil {
			return err
		}
		return nil
	},
}
