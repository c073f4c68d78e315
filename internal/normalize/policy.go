package normalize

import (
	"github.com/sells-group/insight-cli/internal/extract"
	"github.com/sells-group/insight-cli/internal/model"
)

// Policy builds a policy document. The requested type fills in a missing
// policy_type.
func Policy(v extract.Value, policyType string, rep *model.Report) model.PolicyDocument {
	f := newFields(v, "", rep)
	return model.PolicyDocument{
		PolicyType: f.str("policy_type", policyType),
		Content:    f.str("content", ""),
	}
}
