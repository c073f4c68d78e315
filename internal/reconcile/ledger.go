package reconcile

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/sells-group/insight-cli/internal/model"
)

// LedgerGap returns |pending + paid - total| computed exactly in decimal,
// and whether it is within Tolerance.
func LedgerGap(total, pending, paid float64) (float64, bool, error) {
	parts, err := sum(pending, paid)
	if err != nil {
		return 0, false, err
	}
	t, err := decimalOf(total)
	if err != nil {
		return 0, false, err
	}
	diff, err := sub(parts, t)
	if err != nil {
		return 0, false, err
	}
	gap := new(apd.Decimal).Abs(diff)

	tol, _, _ := apd.NewFromString(Tolerance)
	f, err := floatOf(gap)
	if err != nil {
		return 0, false, err
	}
	return f, gap.Cmp(tol) <= 0, nil
}

// CheckLedger flags a ledger whose pending and paid amounts do not add up
// to its total. The summary is never adjusted; the violation is recorded
// on rep and the caller decides whether to reject. A gap that cannot be
// computed is recorded as a coercion failure on total_amount.
func CheckLedger(l model.LedgerSummary, rep *model.Report) bool {
	gap, ok, err := LedgerGap(l.TotalAmount, l.TotalAmountPending, l.TotalAmountPaid)
	if err != nil {
		rep.Add(model.IssueFieldCoercion, "total_amount", err.Error())
		return false
	}
	if ok {
		return true
	}
	rep.Add(model.IssueBusinessRule, "total_amount",
		fmt.Sprintf("total_amount_pending + total_amount_paid differs from total_amount by %.2f", gap))
	return false
}
