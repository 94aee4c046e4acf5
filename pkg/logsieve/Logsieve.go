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

package logsieve

import (
	"log/slog"

	"go.uber.org/dig"
)

// Dig group names plugins provide their implementations into. The host
// resolves these groups to collect all registered parsers and processors.
const (
	GroupParsers    = "parsers"
	GroupProcessors = "processors"
)

type ProviderFunc func(c *dig.Container, logger *slog.Logger) error

// Plugin is the registration surface a plugin package exports. How plugins
// are discovered and loaded is up to the host; a plugin only describes what
// it provides.
type Plugin struct {
	Name    string
	Provide ProviderFunc

	JsonSchema func() (map[string]any, error)
}
