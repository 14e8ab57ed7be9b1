package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimento financeiro.
const (
	MovimentoEntrada = "ENTRADA"
	MovimentoSaida   = "SAIDA"
)

// MovimentoFinanceiro lançamento financeiro ligado ao cliente apenas por
// nome/CNPJ desnormalizados. Valor pode vir nulo em registros importados.
type MovimentoFinanceiro struct {
	ID             int64
	NomeCliente    string
	CNPJCliente    string
	Tipo           string
	Valor          decimal.NullDecimal
	DataMovimento  time.Time
	FormaPagamento string
	Status         string
}
