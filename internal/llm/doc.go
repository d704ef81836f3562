// Package llm is a minimal client for the Anthropic Messages API, used by the
// chat assistant and insight generator. It implements domain.Completer.
package llm
