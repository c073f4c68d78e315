package normalize

import (
	"github.com/sells-group/insight-cli/internal/extract"
	"github.com/sells-group/insight-cli/internal/model"
)

// Suppliers reads supplier listings from a decoded array. A single object
// is treated as a one-element list.
func Suppliers(v extract.Value, rep *model.Report) []model.SupplierListing {
	wrapped := extract.Object(extract.Field{Key: "suppliers", Value: v})
	if v.IsObject() {
		wrapped = extract.Object(extract.Field{Key: "suppliers", Value: extract.Array(v)})
	}
	f := fields{obj: wrapped, rep: rep}

	out := []model.SupplierListing{}
	for _, item := range f.items("suppliers") {
		out = append(out, supplier(item))
	}
	return out
}

func supplier(f fields) model.SupplierListing {
	d := f.sub("supplier_details")
	return model.SupplierListing{
		Title:   f.str("title", Unknown),
		Link:    f.str("link", ""),
		Snippet: f.str("snippet", ""),
		SupplierDetails: model.SupplierDetails{
			CompanyName:   d.str("company_name", Unknown),
			Location:      d.str("location", Unknown),
			PriceRange:    d.str("price_range", Unknown),
			MinimumOrder:  d.str("minimum_order", Unknown),
			DeliveryTime:  d.str("delivery_time", Unknown),
			ContactMethod: d.str("contact_method", Unknown),
		},
	}
}
