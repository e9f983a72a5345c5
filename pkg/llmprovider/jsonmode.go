package llmprovider

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
)

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// GenerateJSON sends a JSON-constrained generation request and decodes the
// response into out. Markdown code fences around the JSON are stripped
// before decoding. A decode failure returns a *ParseError carrying the raw
// model output.
func (m *Manager) GenerateJSON(ctx context.Context, req *Request, out any) error {
	req.JSONMode = true

	resp, err := m.GenerateContent(ctx, req)
	if err != nil {
		return err
	}

	raw := resp.Text()
	if strings.TrimSpace(raw) == "" {
		return ErrEmptyResponse
	}

	cleaned := SanitizeJSON(raw)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return &ParseError{RawContent: raw, Err: err}
	}

	return nil
}

// SanitizeJSON removes markdown code fences and leading/trailing prose that
// LLMs often add around JSON output.
func SanitizeJSON(text string) string {
	matches := fenceRe.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first [ or { and last ] or }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
