// Package renderer turns computation results into markdown suitable for
// terminal display.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/etnz/orbtrade"
)

//go:embed *.md
var templates embed.FS

// Trade is the view of a computed trade, one row per leg.
type Trade struct {
	SellItem, BuyItem           string
	SellUnitPrice, BuyUnitPrice string
	SellQuantity, BuyQuantity   string
	SellTotal, BuyTotal         string
	Net                         string
	Verdict                     string
}

// Listing is the view of the full price catalog.
type Listing struct {
	Rows []ListingRow
}

type ListingRow struct {
	Name  string
	Price string
}

// Conversion is the view of a conversion result.
type Conversion struct {
	From, To  string
	Quantity  string
	Result    string
	Rate      string
	UnitValue string
}

// Verdict maps a trade status to its display label.
func Verdict(s orbtrade.Status) string {
	switch s {
	case orbtrade.Profit:
		return "PROFIT"
	case orbtrade.Loss:
		return "LOSS"
	default:
		return "BREAK EVEN"
	}
}

// NoSelection is the prompt shown when nothing has been selected yet.
const NoSelection = "Select items on at least one leg to calculate a trade.\n"

// TradeMarkdown renders a computed trade.
func TradeMarkdown(tr *Trade) string {
	return renderTemplate("trade", "trade.md", tr)
}

// ListingMarkdown renders the full catalog as a table.
func ListingMarkdown(l *Listing) string {
	return renderTemplate("listing", "listing.md", l)
}

// ConversionMarkdown renders a conversion result.
func ConversionMarkdown(cv *Conversion) string {
	return renderTemplate("conversion", "conversion.md", cv)
}

// renderTemplate is a generic utility to render one of the embedded templates.
func renderTemplate(templateName, file string, data any) string {
	content, err := templates.ReadFile(file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(templateName).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
