package market

// Platform is a marketplace the analyzer knows about.
type Platform struct {
	Name     string
	Homepage string
}

// Essential platform names.
const (
	Amazon         = "Amazon"
	Flipkart       = "Flipkart"
	ONDC           = "ONDC Network"
	IndiaMART      = "IndiaMART"
	AmazonBusiness = "Amazon Business"
	GeM            = "Government e-Marketplace (GeM)"
)

// Catalog lists every known platform, B2C first, then B2B and hybrid.
var Catalog = []Platform{
	{Amazon, "https://www.amazon.in"},
	{Flipkart, "https://www.flipkart.com"},
	{"Myntra", "https://www.myntra.com"},
	{"Ajio", "https://www.ajio.com"},
	{"Meesho", "https://www.meesho.com"},
	{"Snapdeal", "https://www.snapdeal.com"},
	{"Nykaa", "https://www.nykaa.com"},
	{"BigBasket", "https://www.bigbasket.com"},
	{"Grofers", "https://blinkit.com"},
	{"Paytm Mall", "https://paytmmall.com"},
	{"Shopclues", "https://www.shopclues.com"},
	{"Tata CLiQ", "https://www.tatacliq.com"},
	{"JioMart", "https://www.jiomart.com"},
	{"FirstCry", "https://www.firstcry.com"},

	{ONDC, "https://ondc.org"},
	{IndiaMART, "https://www.indiamart.com"},
	{"TradeIndia", "https://www.tradeindia.com"},
	{AmazonBusiness, "https://business.amazon.in"},
	{"Alibaba India", "https://www.alibaba.com/countrysearch/IN"},
	{GeM, "https://gem.gov.in"},
	{"Udaan", "https://udaan.com"},
	{"ExportersIndia", "https://www.exportersindia.com"},
	{"Global Sources", "https://www.globalsources.com"},
	{"DHgate", "https://www.dhgate.com"},
}

var (
	essentialB2B = []string{IndiaMART, AmazonBusiness, ONDC, GeM}
	essentialB2C = []string{Amazon, Flipkart, ONDC}
)

type categoryMapping struct {
	category  string
	platforms []string
}

// categoryPlatforms is a slice so discovery order is stable.
var categoryPlatforms = []categoryMapping{
	{"Industrial", []string{IndiaMART, "TradeIndia", AmazonBusiness, GeM, ONDC}},
	{"Safety Equipment", []string{IndiaMART, GeM, AmazonBusiness, "TradeIndia"}},
	{"Office Supplies", []string{AmazonBusiness, IndiaMART, "Udaan", GeM}},
	{"Manufacturing", []string{IndiaMART, "TradeIndia", "Alibaba India", "ExportersIndia", ONDC}},
	{"Construction", []string{IndiaMART, GeM, "TradeIndia", AmazonBusiness}},
	{"Medical Equipment", []string{IndiaMART, GeM, AmazonBusiness, "TradeIndia"}},
	{"Electronic Components", []string{IndiaMART, AmazonBusiness, "TradeIndia", "Alibaba India"}},
	{"Automotive Parts", []string{IndiaMART, "TradeIndia", AmazonBusiness, "Alibaba India"}},
	{"Chemicals", []string{IndiaMART, "TradeIndia", "ExportersIndia", "Alibaba India"}},
	{"Textiles", []string{IndiaMART, "TradeIndia", "ExportersIndia", ONDC}},
	{"Packaging", []string{IndiaMART, "TradeIndia", AmazonBusiness, "Alibaba India"}},

	{"Food & Grocery", []string{"BigBasket", "JioMart", "Grofers", ONDC}},
	{"Fashion", []string{"Myntra", "Ajio", Amazon, Flipkart, "Meesho"}},
	{"Beauty", []string{"Nykaa", Amazon, Flipkart, "Myntra"}},
	{"Electronics", []string{Amazon, Flipkart, "Tata CLiQ", "Paytm Mall"}},
	{"Baby & Kids", []string{"FirstCry", Amazon, Flipkart}},

	{"Handmade", []string{ONDC, "Meesho", Amazon, IndiaMART}},
	{"Local Products", []string{ONDC, "Meesho", "JioMart"}},
}

// Homepages maps catalog names to homepage URLs.
func Homepages() map[string]string {
	m := make(map[string]string, len(Catalog))
	for _, p := range Catalog {
		m[p.Name] = p.Homepage
	}
	return m
}

// Names returns catalog names in catalog order.
func Names() []string {
	names := make([]string, len(Catalog))
	for i, p := range Catalog {
		names[i] = p.Name
	}
	return names
}
