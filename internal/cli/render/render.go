package render

import (
	"embed"
	"io"
	"path"
	"text/template"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/budget/internal/record"
	"github.com/GustavoCaso/budget/internal/report"
	"github.com/GustavoCaso/budget/internal/util"
)

// content holds our static content.
//
//go:embed templates/*
var content embed.FS

const (
	thousandSeparator = "."
	decimalSeparator  = ","
)

type Renderer struct {
	currency  string
	templates map[string]*template.Template
}

func New(currency string) (*Renderer, error) {
	r := &Renderer{
		currency:  currency,
		templates: map[string]*template.Template{},
	}

	funcs := template.FuncMap{
		"money": r.money,
		"income": func(amount decimal.Decimal) string {
			return util.KindColor(record.Income, r.money(amount))
		},
		"expense": func(amount decimal.Decimal) string {
			return util.KindColor(record.Expense, r.money(amount))
		},
		"inc": func(i int) int {
			return i + 1
		},
	}

	entries, err := content.ReadDir("templates")
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		tmpl, err := content.ReadFile(path.Join("templates", entry.Name()))
		if err != nil {
			return nil, err
		}

		t, err := template.New(entry.Name()).Funcs(funcs).Parse(string(tmpl))
		if err != nil {
			return nil, err
		}

		r.templates[entry.Name()] = t
	}

	return r, nil
}

func (r *Renderer) money(amount decimal.Decimal) string {
	return util.FormatMoney(amount, thousandSeparator, decimalSeparator) + r.currency
}

// Records writes the numbered listing of the ledger.
func (r *Renderer) Records(out io.Writer, records []record.Record, skipped int) error {
	return r.templates["list.tmpl"].Execute(out, struct {
		Records []record.Record
		Skipped int
	}{
		Records: records,
		Skipped: skipped,
	})
}

func (r *Renderer) Summary(out io.Writer, source string, summary report.Summary) error {
	return r.templates["analysis.tmpl"].Execute(out, struct {
		Source  string
		Summary report.Summary
	}{
		Source:  source,
		Summary: summary,
	})
}

func (r *Renderer) Matches(out io.Writer, needle string, matches []record.Record) error {
	return r.templates["matches.tmpl"].Execute(out, struct {
		Needle  string
		Matches []record.Record
	}{
		Needle:  needle,
		Matches: matches,
	})
}
