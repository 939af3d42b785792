// Package gemini implements the generation interfaces using Google's
// Gemini API for text and image models.
package gemini

import "encoding/json"

// itemEnvelope is the JSON envelope the model is instructed to return.
// The spec payload stays opaque; its shape depends on the item type.
type itemEnvelope struct {
	Type  string          `json:"type"`
	Lang  string          `json:"lang"`
	Title string          `json:"title,omitempty"`
	Spec  json.RawMessage `json:"spec"`
}
