package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPromptSubstitutesPlaceholders(t *testing.T) {
	got := RenderPrompt("Make a {{type}} game in {{lang}} about {{type}}s.", "quiz_mcq", "de")
	assert.Equal(t, "Make a quiz_mcq game in de about quiz_mcqs.", got)
}

func TestRenderPromptFallsBackToDefault(t *testing.T) {
	got := RenderPrompt("", "word_search", "en")

	assert.NotContains(t, got, "{{type}}")
	assert.NotContains(t, got, "{{lang}}")
	assert.True(t, strings.Contains(got, `"word_search"`))
	assert.True(t, strings.Contains(got, `"en"`))
}
