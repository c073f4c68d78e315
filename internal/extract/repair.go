package extract

import "regexp"

var (
	trailingComma = regexp.MustCompile(`,(\s*[}\]])`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Repair removes trailing commas before '}' or ']' and, when collapse is
// set, folds every whitespace run into a single space. Repair is idempotent.
func Repair(text string, collapse bool) string {
	for {
		next := trailingComma.ReplaceAllString(text, "$1")
		if next == text {
			break
		}
		text = next
	}
	if collapse {
		text = whitespaceRun.ReplaceAllString(text, " ")
	}
	return text
}
