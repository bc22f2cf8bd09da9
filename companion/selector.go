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

package companion

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/poiesic/materna/ai"
	"github.com/poiesic/materna/core"
)

const defaultMaxTokens = 160

const systemPrompt = "Você é uma doula virtual acolhedora que acompanha uma gestante ou mãe recente. " +
	"Responda em português brasileiro, em tom caloroso e encorajador, " +
	"em no máximo três frases curtas. Nunca dê conselhos médicos; " +
	"sugira procurar um profissional de saúde quando o relato indicar algo preocupante."

// Response is one supportive message for the user.
type Response struct {
	Text string
	// Remote reports whether the text came from the remote generator
	// rather than the local pools. Display treats both identically.
	Remote bool
}

// Option configures a Selector.
type Option func(*Selector)

// WithResponder enables the remote-generation path.
func WithResponder(responder ai.Responder) Option {
	return func(s *Selector) {
		s.responder = responder
	}
}

// WithMaxTokens bounds remote reply length.
func WithMaxTokens(maxTokens int) Option {
	return func(s *Selector) {
		s.maxTokens = maxTokens
	}
}

// WithLogger sets the logger used by the selector.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Selector) {
		s.logger = logger.With("component", "companion")
	}
}

// WithPickFunc overrides pool selection. Tests use this to make
// selection deterministic; pick receives the pool size and must return
// an index in [0, n).
func WithPickFunc(pick func(n int) int) Option {
	return func(s *Selector) {
		s.pick = pick
	}
}

// Selector maps a journal entry's mood to one supportive message. The
// local path always succeeds; when a remote responder is configured it
// is tried first and any failure falls back silently to the local pool.
// Selectors are safe for concurrent use.
type Selector struct {
	responder ai.Responder
	maxTokens int
	pick      func(n int) int
	logger    *slog.Logger
}

// NewSelector creates a response selector. Without WithResponder the
// selector is purely local.
func NewSelector(options ...Option) *Selector {
	s := &Selector{
		maxTokens: defaultMaxTokens,
		pick:      rand.IntN,
		logger:    slog.Default().With("component", "companion"),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Reply produces a supportive message for the entry. The remote path is
// attempted when configured; on any failure the local pool for the
// entry's mood answers instead, so Reply never fails.
func (s *Selector) Reply(ctx context.Context, entry *core.JournalEntry) Response {
	if s.responder != nil {
		user := fmt.Sprintf("Humor: %s\n%s", entry.Mood.Label(), entry.Content)
		text, err := s.responder.Reply(ctx, systemPrompt, user, s.maxTokens)
		if err == nil && text != "" {
			return Response{Text: text, Remote: true}
		}
		s.logger.Debug("remote reply failed, using local pool", "mood", entry.Mood.Code(), "err", err)
	}

	return Response{Text: s.fromPool(entry.Mood)}
}

// fromPool picks a message from the mood's fixed pool. Unknown moods
// fall back to the calm pool so a response always exists.
func (s *Selector) fromPool(mood core.Mood) string {
	pool, ok := moodPools[mood]
	if !ok {
		pool = moodPools[core.MoodCalm]
	}
	return pool[s.pick(len(pool))]
}
