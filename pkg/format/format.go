// Package format formata valores para exibição no padrão pt-BR.
//
// As funções devolvem o valor formatado e um booleano indicando se o dado
// era representável; quem chama decide como degradar ("0,00" ou null) em
// vez de confundir zero com dado ausente.
package format

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const layoutData = "02/01/2006"

var impressora = message.NewPrinter(language.BrazilianPortuguese)

// Moeda formata um valor monetário com agrupamento de milhar e duas casas
// decimais ("1.234,56"). ok=false quando o valor é nulo ou não representável.
func Moeda(v decimal.NullDecimal) (string, bool) {
	if !v.Valid {
		return "", false
	}
	return MoedaDecimal(v.Decimal), true
}

// MoedaDecimal formata um decimal não nulo no mesmo padrão de Moeda.
func MoedaDecimal(d decimal.Decimal) string {
	f, _ := d.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "0,00"
	}
	return impressora.Sprint(number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Data formata uma data como dd/mm/aaaa. ok=false para data ausente ou zero.
func Data(t *time.Time) (string, bool) {
	if t == nil || t.IsZero() {
		return "", false
	}
	return t.Format(layoutData), true
}

// DataValor formata uma data obrigatória como dd/mm/aaaa.
func DataValor(t time.Time) string {
	return t.Format(layoutData)
}
