package procurement

// Source is a procurement platform buyers can source from.
type Source struct {
	Name     string
	Homepage string
}

// Essential procurement platforms.
const (
	IndiaMART      = "IndiaMART"
	TradeIndia     = "TradeIndia"
	AmazonBusiness = "Amazon Business"
	AlibabaIndia   = "Alibaba India"
	Udaan          = "Udaan"
)

// Sources lists the known procurement platforms.
var Sources = []Source{
	{IndiaMART, "https://www.indiamart.com"},
	{TradeIndia, "https://www.tradeindia.com"},
	{"ExportersIndia", "https://www.exportersindia.com"},
	{AlibabaIndia, "https://www.alibaba.com/countrysearch/IN"},
	{"Global Sources", "https://www.globalsources.com"},
	{"Made-in-China", "https://www.made-in-china.com"},
	{"DHgate", "https://www.dhgate.com"},
	{"EC21", "https://www.ec21.com"},
	{"eWorldTrade", "https://www.eworldtrade.com"},
	{"Go4WorldBusiness", "https://www.go4worldbusiness.com"},
	{"TradeFord", "https://www.tradeford.com"},
	{"Kompass", "https://www.kompass.com"},
	{AmazonBusiness, "https://business.amazon.in"},
	{Udaan, "https://udaan.com"},
	{"Direct Government Suppliers", "https://gem.gov.in"},
	{"Local Wholesale Markets", "Local/Regional Markets"},
}

var (
	essentials = []string{IndiaMART, TradeIndia, AmazonBusiness}
	// fallbackPlatforms is used when discovery fails outright.
	fallbackPlatforms = []string{IndiaMART, TradeIndia, AmazonBusiness, AlibabaIndia, Udaan}
)

type materialCategory struct {
	Category  string   `json:"category"`
	Materials []string `json:"materials"`
}

var materialCategories = []materialCategory{
	{"Textiles", []string{"Cotton", "Silk", "Polyester", "Wool", "Linen", "Synthetic fabrics"}},
	{"Metals", []string{"Steel", "Aluminum", "Copper", "Iron", "Brass", "Stainless steel"}},
	{"Plastics", []string{"PVC", "Polyethylene", "Polypropylene", "ABS", "Acrylic"}},
	{"Electronics", []string{"Semiconductors", "Circuit boards", "Cables", "Resistors", "Capacitors"}},
	{"Chemicals", []string{"Industrial chemicals", "Dyes", "Adhesives", "Solvents", "Lubricants"}},
	{"Food & Agriculture", []string{"Grains", "Spices", "Dairy products", "Oils", "Preservatives"}},
	{"Construction", []string{"Cement", "Sand", "Bricks", "Steel bars", "Paint"}},
	{"Packaging", []string{"Cardboard", "Plastic films", "Glass containers", "Metal cans"}},
	{"Automotive", []string{"Engine parts", "Tires", "Batteries", "Filters", "Bearings"}},
	{"Leather", []string{"Raw leather", "Processed leather", "Leather chemicals", "Tanning materials"}},
}

func homepage(name string) (string, bool) {
	for _, s := range Sources {
		if s.Name == name {
			return s.Homepage, true
		}
	}
	return "", false
}

func sourceNames() []string {
	names := make([]string, len(Sources))
	for i, s := range Sources {
		names[i] = s.Name
	}
	return names
}
