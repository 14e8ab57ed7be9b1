package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// VendaProduto linha de venda de produto já cruzada com o pedido de origem
// (a data de emissão vem do pedido). Usada no histórico de compras.
type VendaProduto struct {
	NumeroPedido     string
	CodigoProduto    string
	DescricaoProduto string
	Quantidade       decimal.Decimal
	DataEmissao      time.Time
}
