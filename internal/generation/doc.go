// Package generation provides interfaces and errors for the external
// AI services that produce content items. It abstracts the details of the
// LLM integration (Gemini text and image models), so the task pipeline can
// generate items without coupling to a specific provider.
package generation
