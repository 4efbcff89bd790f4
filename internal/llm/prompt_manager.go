// Package llm provides the prompt templates and model providers used to
// generate code reviews.
package llm

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
)

//go:embed prompts/code_review.prompt
var codeReviewPrompt string

// PromptManager renders the embedded prompt templates.
type PromptManager struct {
	codeReview *template.Template
}

// codeReviewData carries the fields the code review template expects.
type codeReviewData struct {
	Filename string
	Language string
	Code     string
}

// NewPromptManager parses the embedded prompt templates.
func NewPromptManager() (*PromptManager, error) {
	tmpl, err := template.New("code_review").Parse(codeReviewPrompt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse code review prompt: %w", err)
	}
	return &PromptManager{codeReview: tmpl}, nil
}

// RenderCodeReview builds the full review prompt for a snippet: the fixed
// instruction block followed by the code fenced with the language tag. The
// code body is inserted verbatim inside the fence.
func (pm *PromptManager) RenderCodeReview(code, filename, language string) (string, error) {
	var buf bytes.Buffer
	data := codeReviewData{Filename: filename, Language: language, Code: code}
	if err := pm.codeReview.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render code review prompt: %w", err)
	}
	return buf.String(), nil
}
