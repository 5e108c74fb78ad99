// Package llm provides a thin client for an OpenAI-compatible chat completion
// endpoint, plus helpers for digging structured data out of free-form model
// output.
//
// Completions are returned as raw strings. Downstream code treats them as
// untrusted input and runs them through the llmvalidate package before any
// value reaches application state.
package llm
