package util

import "strings"

var fenceReplacer = strings.NewReplacer("```json", "", "```JSON", "", "```", "")

// StripCodeFences removes markdown code-fence markers anywhere in text and trims the result.
func StripCodeFences(text string) string {
	return strings.TrimSpace(fenceReplacer.Replace(text))
}

// ExtractJSONObject reduces a model reply to the span between its first '{'
// and last '}'. Text without such a span is returned fence-stripped so the
// caller's parse reports the failure.
func ExtractJSONObject(text string) string {
	content := StripCodeFences(text)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end <= start {
		return content
	}
	return content[start : end+1]
}
