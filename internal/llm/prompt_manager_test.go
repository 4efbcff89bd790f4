package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCodeReview(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)

	code := "def add(a, b):\n    return a + b"
	prompt, err := pm.RenderCodeReview(code, "math.py", "python")
	require.NoError(t, err)

	// All eight review criteria must be present.
	for _, criterion := range []string{
		"1) Short summary",
		"2) Potential bugs",
		"3) Security vulnerabilities",
		"4) Performance",
		"5) Style",
		"6) Concrete suggested fixes",
		"7) Suggested tests",
		"8) A final \"confidence\" line",
	} {
		assert.Contains(t, prompt, criterion)
	}

	assert.Contains(t, prompt, "filename: math.py, language: python")
	assert.Contains(t, prompt, "```python\n"+code+"\n```")
	assert.Contains(t, prompt, "---- End code ----")
}

func TestRenderCodeReviewInsertsCodeVerbatim(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)

	// Template-looking and HTML-looking content must pass through untouched.
	code := `fmt.Println("{{.Injected}} <script>alert(1)</script> & more")`
	prompt, err := pm.RenderCodeReview(code, "snippet", "go")
	require.NoError(t, err)

	assert.Contains(t, prompt, code)
}

func TestRenderCodeReviewIsDeterministic(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)

	first, err := pm.RenderCodeReview("print('hi')", "a.py", "python")
	require.NoError(t, err)
	second, err := pm.RenderCodeReview("print('hi')", "a.py", "python")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, strings.Count(first, "print('hi')"))
}
