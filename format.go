package gochart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// formatter renders numbers for labels, tooltips and metric text.
type formatter struct {
	p *message.Printer
}

func newFormatter(locale string) *formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &formatter{p: message.NewPrinter(tag)}
}

// Number formats v with grouping and at most two fraction digits.
func (f *formatter) Number(v float64) string {
	return f.p.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// Percent formats a signed percentage with one fraction digit, e.g. "+50.0%".
func (f *formatter) Percent(pct float64) string {
	sign := ""
	if pct > 0 {
		sign = "+"
	}
	return f.p.Sprintf("%s%.1f%%", sign, pct)
}

// Share formats a 0..1 proportion as a whole percentage, e.g. "25%".
func (f *formatter) Share(share float64) string {
	return f.p.Sprint(number.Percent(share, number.MaxFractionDigits(0)))
}
