package entity

import "github.com/shopspring/decimal"

// ItemPedido linha de um pedido, referenciada pelo número do pedido
// (referência fraca — sem integridade referencial no banco).
type ItemPedido struct {
	NumeroPedido     string
	Seq              int
	CodigoProduto    string
	DescricaoProduto string
	Quantidade       decimal.Decimal
	ValorUnitario    decimal.NullDecimal
	ValorTotal       decimal.NullDecimal
}
