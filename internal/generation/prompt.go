package generation

import "strings"

// DefaultPromptTemplate is the built-in fallback used when the prompt
// configuration store holds no template. It carries the same {{type}} and
// {{lang}} placeholders as a stored template.
const DefaultPromptTemplate = `You are a game content designer. Create one interactive content item of type "{{type}}" in language "{{lang}}".

Respond with a single JSON object and nothing else, using this envelope:
{"type": "{{type}}", "lang": "{{lang}}", "title": "...", "spec": { ... }}

Rules for the spec payload by type:
- word_search: {"grid": [[...]], "words": [...], "size": N} with 8-12 hidden words.
- quiz_mcq: {"questions": [{"q": "...", "choices": ["..."], "answer": 0}]} with at least 5 questions and 4 choices each.
- memory_match: {"pairs": [{"a": "...", "b": "..."}]} with 6-10 pairs.
- space_shooter: {"waves": [...], "targets": [...], "speed": N}.
- jigsaw: {"imageUrl": "", "rows": N, "cols": N} with 3-6 rows and columns.
- true_false: {"statements": [{"text": "...", "answer": true}]} with at least 8 statements.
- odd_one_out: {"groups": [{"options": ["..."], "odd": 0, "reason": "..."}]} with at least 5 groups.

Keep all text family friendly and self-contained. Do not wrap the JSON in markdown fences.`

// RenderPrompt substitutes the {{type}} and {{lang}} placeholders in the
// template. An empty template falls back to DefaultPromptTemplate.
func RenderPrompt(template, itemType, lang string) string {
	if template == "" {
		template = DefaultPromptTemplate
	}

	return strings.NewReplacer(
		"{{type}}", itemType,
		"{{lang}}", lang,
	).Replace(template)
}
