package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de pedido.
const (
	StatusEmAndamento = "EM_ANDAMENTO"
	StatusConcluido   = "CONCLUIDO"
	StatusCancelado   = "CANCELADO"
)

// Pedido cabeçalho de pedido. NumeroPedido é a forma compacta ("1001");
// Referencia é a forma prefixada usada por outros subsistemas ("PED001").
// Nome e CNPJ do cliente são desnormalizados — não há chave estrangeira.
type Pedido struct {
	NumeroPedido       string
	Referencia         string
	NomeCliente        string
	CNPJCliente        string
	ValorTotal         decimal.NullDecimal
	QtdItens           int
	Status             string
	Faturado           bool
	NotaCancelada      bool
	DataEmissao        time.Time
	DataFaturamento    *time.Time
	DataCancelamento   *time.Time
	MotivoCancelamento string
}

// Cancelado indica cancelamento pelo código de status ou pela presença
// da data de cancelamento (as duas fontes divergem em registros antigos).
func (p Pedido) Cancelado() bool {
	return p.Status == StatusCancelado || p.DataCancelamento != nil
}
