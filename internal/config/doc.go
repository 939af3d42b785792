// Package config loads and validates the server's runtime settings: HTTP
// port, database URL, LLM credentials and model names, asset storage and
// the generation pipeline's worker, queue and batch limits. Settings come
// from an optional config.yaml and GAMEFORGE_ environment variables.
package config
