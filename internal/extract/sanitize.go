// Package extract locates, repairs and decodes the JSON payload embedded in
// free-form language model output.
package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Method records how a span was located.
type Method string

const (
	MethodFenced      Method = "fenced-block"
	MethodBraceScan   Method = "balanced-brace-scan"
	MethodArrayScan   Method = "array-scan"
	MethodPassThrough Method = "raw-pass-through"
)

// Span is the substring of a response believed to hold one JSON value.
type Span struct {
	Text   string
	Method Method
}

var fencedJSON = regexp.MustCompile("(?is)```json\\s*(.*?)\\s*```")

// Sanitize finds the JSON object in raw. A ```json fenced block wins;
// otherwise the first '{' is walked to its matching '}'. It returns false
// when there is no '{' or the braces never balance.
func Sanitize(raw string) (Span, bool) {
	raw = norm.NFC.String(raw)

	if m := fencedJSON.FindStringSubmatch(raw); m != nil && strings.TrimSpace(m[1]) != "" {
		return Span{Text: m[1], Method: MethodFenced}, true
	}

	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return Span{}, false
	}
	depth := 0
	for i := start; i < len(raw); i++ {
		switch raw[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return Span{Text: raw[start : i+1], Method: MethodBraceScan}, true
			}
		}
	}
	return Span{}, false
}

// SanitizeArray finds a JSON array in raw, from the first '[' to the last
// ']'. Used for name lists, where the model is asked for a bare array.
func SanitizeArray(raw string) (Span, bool) {
	raw = norm.NFC.String(raw)
	if m := fencedJSON.FindStringSubmatch(raw); m != nil {
		if inner := strings.TrimSpace(m[1]); strings.HasPrefix(inner, "[") {
			return Span{Text: inner, Method: MethodFenced}, true
		}
	}
	start := strings.IndexByte(raw, '[')
	end := strings.LastIndexByte(raw, ']')
	if start < 0 || end <= start {
		return Span{}, false
	}
	return Span{Text: raw[start : end+1], Method: MethodArrayScan}, true
}

// SanitizeOrRaw behaves like Sanitize but falls back to the trimmed raw
// text when no object span exists, leaving the verdict to the decoder.
func SanitizeOrRaw(raw string) Span {
	if span, ok := Sanitize(raw); ok {
		return span
	}
	return Span{Text: strings.TrimSpace(norm.NFC.String(raw)), Method: MethodPassThrough}
}
