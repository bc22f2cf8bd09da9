// Copyright 2025 Poiesic Systems
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

package ai

import "context"

// Responder generates a single free-text reply from a system instruction
// and a user message. Implementations must be safe for concurrent use.
type Responder interface {
	// Reply sends the prompts to the model and returns the generated
	// text. maxTokens bounds the response length; zero means the
	// implementation's default.
	Reply(ctx context.Context, system, user string, maxTokens int) (string, error)
}
