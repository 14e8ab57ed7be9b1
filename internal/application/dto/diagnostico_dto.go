package dto

import "github.com/shopspring/decimal"

// DiagnosticoPedidoResponse resposta do diagnóstico de pedido. A mesma
// estrutura é usada para pedido encontrado, não encontrado e falha de
// consulta — o consumidor nunca precisa de um segundo schema.
type DiagnosticoPedidoResponse struct {
	Pedido           PedidoDiagnosticoDTO `json:"pedido"`
	Itens            ItensDiagnosticoDTO  `json:"itens"`
	PedidosSimilares []PedidoSimilarDTO   `json:"pedidos_similares"`
	Sugestoes        []string             `json:"sugestoes"`
}

// PedidoDiagnosticoDTO dados do pedido localizado. Valores monetários e
// datas já formatados para exibição; campos não representáveis ficam null.
type PedidoDiagnosticoDTO struct {
	Encontrado         bool    `json:"encontrado"`
	NumeroPedido       *string `json:"numero_pedido"`
	Referencia         *string `json:"referencia"`
	ChaveLocalizada    *string `json:"chave_localizada"`
	NomeCliente        *string `json:"nome_cliente"`
	ValorTotal         *string `json:"valor_total"`
	Status             *string `json:"status"`
	Faturado           bool    `json:"faturado"`
	NotaCancelada      bool    `json:"nota_cancelada"`
	PedidoCancelado    bool    `json:"pedido_cancelado"`
	DataEmissao        *string `json:"data_emissao"`
	DataFaturamento    *string `json:"data_faturamento"`
	DataCancelamento   *string `json:"data_cancelamento"`
	MotivoCancelamento *string `json:"motivo_cancelamento"`
}

// ItensDiagnosticoDTO itens do pedido na ordem da sequência de linha.
type ItensDiagnosticoDTO struct {
	Total    int                  `json:"total"`
	TemItens bool                 `json:"tem_itens"`
	Dados    []ItemDiagnosticoDTO `json:"dados"`
}

// ItemDiagnosticoDTO linha de item com valores formatados para exibição.
type ItemDiagnosticoDTO struct {
	Seq              int             `json:"seq"`
	CodigoProduto    string          `json:"codigo_produto"`
	DescricaoProduto string          `json:"descricao_produto"`
	Quantidade       decimal.Decimal `json:"quantidade"`
	ValorUnitario    *string         `json:"valor_unitario"`
	ValorTotal       *string         `json:"valor_total"`
}

// PedidoSimilarDTO candidato da busca de pedidos semelhantes.
type PedidoSimilarDTO struct {
	NumeroPedido string  `json:"numero_pedido"`
	Referencia   string  `json:"referencia"`
	NomeCliente  string  `json:"nome_cliente"`
	ValorTotal   *string `json:"valor_total"`
	DataEmissao  *string `json:"data_emissao"`
	TotalItens   int     `json:"total_itens"`
}
