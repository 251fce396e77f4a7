package markdown

import "strings"

// dollarEntity is the numeric character reference for '$'.
const dollarEntity = "&#36;"

// Escape replaces every '$' with its entity encoding so the markdown renderer
// leaves math delimiters alone until MathJax runs in the browser.
//
// Escape is not idempotent across a decode round trip: text that was escaped,
// decoded back to '$' and escaped again is encoded twice over its lifetime.
func Escape(text string) string {
	if !strings.Contains(text, "$") {
		return text
	}
	return strings.ReplaceAll(text, "$", dollarEntity)
}
