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

package parseerr

// Aliases kept from before the error types were renamed. They are plain type
// aliases, so behavior is identical; new code should use the current names.

// Deprecated: use Error instead.
type SieveError = Error

// Deprecated: use Reason instead.
type SieveReason = Reason

// Deprecated: use DataKind instead.
type SieveDataKind = DataKind
