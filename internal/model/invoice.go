package model

// InvoiceDetails is the normalized invoice record. Amounts are quantized to
// two decimal places by the reconciler.
type InvoiceDetails struct {
	InvoiceNumber string     `json:"invoice_number" yaml:"invoice_number"`
	Client        string     `json:"client" yaml:"client"`
	Date          string     `json:"date" yaml:"date"`
	PaymentTerms  string     `json:"payment_terms" yaml:"payment_terms"`
	Industry      string     `json:"industry" yaml:"industry"`
	TotalAmount   float64    `json:"total_amount" yaml:"total_amount"`
	Currency      string     `json:"currency" yaml:"currency"`
	PendingAmount float64    `json:"pending_amount" yaml:"pending_amount"`
	TaxAmount     float64    `json:"tax_amount" yaml:"tax_amount"`
	ExtraCharges  float64    `json:"extra_charges" yaml:"extra_charges"`
	LineItems     []LineItem `json:"line_items" yaml:"line_items"`
	SmallAnalysis string     `json:"small_analysis" yaml:"small_analysis"`
}

// LineItem is one billed line of an invoice.
type LineItem struct {
	Description string  `json:"description" yaml:"description"`
	Amount      float64 `json:"amount" yaml:"amount"`
}

// LineItemsTotal sums line item amounts without rounding.
func (d InvoiceDetails) LineItemsTotal() float64 {
	var total float64
	for _, li := range d.LineItems {
		total += li.Amount
	}
	return total
}
