// Package openai implements the ai.Responder interface against
// OpenAI-compatible chat completion APIs via langchaingo. It works with
// the hosted OpenAI API as well as local servers (Ollama, LocalAI,
// vLLM) that speak the same protocol.
package openai
