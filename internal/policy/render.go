package policy

import (
	"html"
	"slices"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/sells-group/insight-cli/internal/model"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderHTML converts one policy's Markdown content to an HTML fragment.
func RenderHTML(doc model.PolicyDocument) (string, error) {
	var out strings.Builder
	if err := markdown.Convert([]byte(doc.Content), &out); err != nil {
		return "", eris.Wrapf(err, "policy: render %s", doc.PolicyType)
	}
	return out.String(), nil
}

// RenderSetHTML renders every generated policy into a single HTML page,
// one section per policy type in name order.
func RenderSetHTML(set model.PolicySet) (string, error) {
	types := make([]string, 0, len(set.GeneratedPolicies))
	for t := range set.GeneratedPolicies {
		types = append(types, t)
	}
	slices.Sort(types)

	var b strings.Builder
	b.WriteString("<!doctype html><html><head><meta charset='utf-8'><title>Policies</title></head><body>\n")
	for _, t := range types {
		body, err := RenderHTML(set.GeneratedPolicies[t])
		if err != nil {
			return "", err
		}
		b.WriteString("<section id=\"" + html.EscapeString(t) + "\">\n")
		b.WriteString("<h1>" + html.EscapeString(strings.ReplaceAll(t, "_", " ")) + "</h1>\n")
		b.WriteString(body)
		b.WriteString("</section>\n")
	}
	b.WriteString("</body></html>\n")
	return b.String(), nil
}
