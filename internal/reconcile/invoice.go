package reconcile

import (
	"strconv"
	"strings"

	"github.com/sells-group/insight-cli/internal/model"
)

// taxKeywords mark a record whose unexplained difference is tax rather
// than an extra charge.
var taxKeywords = []string{"tax", "vat", "gst", "sales tax"}

// Inference names the bucket that received an inferred difference.
type Inference string

const (
	InferredNone  Inference = ""
	InferredTax   Inference = "tax_amount"
	InferredExtra Inference = "extra_charges"
)

// Invoice quantizes every amount on inv and, when the model reported
// neither tax nor extra charges, assigns total minus line items to one of
// them. source is the serialized decoded record; a tax keyword anywhere in
// it sends the difference to tax_amount, otherwise to extra_charges.
//
// An amount that cannot be quantized keeps its value and is recorded on
// rep; no difference is inferred from it.
func Invoice(inv *model.InvoiceDetails, source string, rep *model.Report) Inference {
	exact := true
	round := func(field string, v *float64) {
		q, err := Quantize(*v)
		if err != nil {
			rep.Add(model.IssueFieldCoercion, field, err.Error())
			exact = false
			return
		}
		*v = q
	}
	round("total_amount", &inv.TotalAmount)
	round("pending_amount", &inv.PendingAmount)
	round("tax_amount", &inv.TaxAmount)
	round("extra_charges", &inv.ExtraCharges)
	for i := range inv.LineItems {
		round("line_items["+strconv.Itoa(i)+"].amount", &inv.LineItems[i].Amount)
	}

	if !exact || inv.TaxAmount != 0 || inv.ExtraCharges != 0 {
		return InferredNone
	}

	diff, err := difference(inv)
	if err != nil {
		rep.Add(model.IssueFieldCoercion, "total_amount", err.Error())
		return InferredNone
	}
	if diff == 0 {
		return InferredNone
	}

	if mentionsTax(source) {
		inv.TaxAmount = diff
		return InferredTax
	}
	inv.ExtraCharges = diff
	return InferredExtra
}

// difference returns total minus the line items, quantized.
func difference(inv *model.InvoiceDetails) (float64, error) {
	amounts := make([]float64, len(inv.LineItems))
	for i, li := range inv.LineItems {
		amounts[i] = li.Amount
	}
	items, err := sum(amounts...)
	if err != nil {
		return 0, err
	}
	total, err := decimalOf(inv.TotalAmount)
	if err != nil {
		return 0, err
	}
	d, err := sub(total, items)
	if err != nil {
		return 0, err
	}
	q, err := quantize(d)
	if err != nil {
		return 0, err
	}
	return floatOf(q)
}

func mentionsTax(source string) bool {
	lower := strings.ToLower(source)
	for _, kw := range taxKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
