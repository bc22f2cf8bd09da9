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

package openai

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/poiesic/materna/ai"
)

// Responder implements ai.Responder against OpenAI-compatible chat APIs.
type Responder struct {
	client    llms.Model
	maxTokens int
	logger    *slog.Logger
}

// newResponder is an internal constructor that returns the concrete type.
func newResponder(config *ai.Config) (*Responder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that
	// don't require authentication.
	token := config.APIKey
	if token == "" {
		token = "none"
	}
	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Responder{
		client:    client,
		maxTokens: config.MaxTokens,
		logger:    slog.Default().With("component", "openai-responder"),
	}, nil
}

// NewResponder creates a responder using the provided configuration.
//
// Returns ai.Responder interface (not *Responder) to enforce abstraction
// and prevent coupling to OpenAI-specific implementation details.
func NewResponder(config *ai.Config) (ai.Responder, error) {
	return newResponder(config)
}

// Reply sends the system and user prompts to the chat model and returns
// the generated text.
func (r *Responder) Reply(ctx context.Context, system, user string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		maxTokens = r.maxTokens
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(system),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(user),
			},
		},
	}

	response, err := r.client.GenerateContent(ctx, content,
		llms.WithTemperature(0.7),
		llms.WithMaxTokens(maxTokens),
	)
	if err != nil {
		r.logger.Debug("content generation failed", "err", err)
		return "", err
	}
	if len(response.Choices) < 1 {
		return "", errors.New("openai responder: no choices returned")
	}

	text := strings.TrimSpace(response.Choices[0].Content)
	if text == "" {
		return "", errors.New("openai responder: empty response")
	}
	return text, nil
}
