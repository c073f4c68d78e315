package normalize

import (
	"strings"

	"github.com/sells-group/insight-cli/internal/extract"
	"github.com/sells-group/insight-cli/internal/model"
)

// NoInvoiceMarker is the token a model returns when the input holds no
// invoice.
const NoInvoiceMarker = "no_invoice_found"

// EmptyInvoice is the fully defaulted invoice record.
func EmptyInvoice() model.InvoiceDetails {
	return Invoice(extract.EmptyObject(), nil)
}

// Invoice builds invoice details from a decoded response. Amounts are
// rounded to two places from their literals; line items without a
// description are dropped.
func Invoice(v extract.Value, rep *model.Report) model.InvoiceDetails {
	f := newFields(v, "", rep)

	inv := model.InvoiceDetails{
		InvoiceNumber: f.str("invoice_number", Unknown),
		Client:        f.str("client", Unknown),
		Date:          f.str("date", Unknown),
		PaymentTerms:  f.str("payment_terms", NotSpecified),
		Industry:      f.str("industry", NotSpecified),
		TotalAmount:   f.amount("total_amount"),
		Currency:      f.str("currency", Unknown),
		PendingAmount: f.amount("pending_amount"),
		TaxAmount:     f.amount("tax_amount"),
		ExtraCharges:  f.amount("extra_charges"),
		LineItems:     []model.LineItem{},
		SmallAnalysis: f.str("small_analysis", NotAvailable),
	}
	for _, item := range f.items("line_items") {
		desc := strings.TrimSpace(item.str("description", ""))
		if desc == "" {
			continue
		}
		inv.LineItems = append(inv.LineItems, model.LineItem{
			Description: desc,
			Amount:      item.amount("amount"),
		})
	}
	return inv
}

// IsNoInvoice reports whether raw model output declares that no invoice
// was found.
func IsNoInvoice(raw string) bool {
	return strings.Contains(strings.ToLower(raw), NoInvoiceMarker)
}
