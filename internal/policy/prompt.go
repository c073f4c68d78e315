package policy

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sells-group/insight-cli/internal/model"
)

// SystemPrompt is shared by every policy request.
const SystemPrompt = `You are a legal compliance and policy drafting assistant.
Output ONLY valid JSON.
Do NOT wrap it in markdown code fences (no ` + "```json ... ```" + `).
Do NOT add explanations or text outside the JSON.
The JSON must follow this schema:

{
  "policy_type": "<string, e.g., privacy_policy>",
  "content": "<policy text as a single string in Markdown, escape newlines with \\n>"
}`

const bestPractices = "Follow international best practices. Mention compliance frameworks only if highly relevant."

// Prompt asks for one policy document.
func Prompt(b model.BusinessDetails, policyType, language string, regions []string, strict bool) string {
	details, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		details = []byte("{}")
	}
	compliance := bestPractices
	if strict {
		compliance = "Ensure compliance with these frameworks: " + strings.Join(regions, ", ")
	}
	return fmt.Sprintf("Business Details:\n%s\n\nGenerate a comprehensive %s in %s.\n%s\n",
		details, strings.ReplaceAll(policyType, "_", " "), language, compliance)
}

// Placeholder is the document used when generation keeps failing.
func Placeholder(policyType string) model.PolicyDocument {
	return model.PolicyDocument{
		PolicyType: policyType,
		Content:    fmt.Sprintf("Failed to generate %s. Please retry later.", policyType),
	}
}
