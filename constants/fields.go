package constants

// Keyword anchors for monetary lines, in normalized (lowercase, accent-free)
// form. A line containing one of these holds the value, or the line right
// after it does.
const (
	KeywordTotal             = "total"
	KeywordTripPrice         = "preco da viagem"
	KeywordIntermediationFee = "taxa de intermediacao"
	KeywordFixedCost         = "custo fixo"
	KeywordPromotion         = "promocao"
)

// Section labels that anchor the payment and trip-info blocks, also in
// normalized form.
const (
	SectionPayments = "pagamentos"
	SectionTripInfo = "informacoes da viagem"

	// TripSummaryPrefix starts the "você viajou ..." boilerplate that ends
	// address collection.
	TripSummaryPrefix = "voce viajou"
)

// PTMonths maps the first three letters of a Portuguese month name to its
// zero-padded number.
var PTMonths = map[string]string{
	"jan": "01",
	"fev": "02",
	"mar": "03",
	"abr": "04",
	"mai": "05",
	"jun": "06",
	"jul": "07",
	"ago": "08",
	"set": "09",
	"out": "10",
	"nov": "11",
	"dez": "12",
}
