package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClienteDTO cliente na resposta de resolução.
type ClienteDTO struct {
	ID           int64     `json:"id"`
	RazaoSocial  string    `json:"razao_social"`
	NomeFantasia string    `json:"nome_fantasia"`
	CNPJ         string    `json:"cnpj"`
	Endereco     string    `json:"endereco"`
	Cidade       string    `json:"cidade"`
	UF           string    `json:"uf"`
	Telefone     string    `json:"telefone"`
	Email        string    `json:"email"`
	DataCadastro time.Time `json:"data_cadastro"`
}

// PedidoDTO pedido nas respostas de resolução e listagem.
type PedidoDTO struct {
	NumeroPedido     string              `json:"numero_pedido"`
	Referencia       string              `json:"referencia"`
	NomeCliente      string              `json:"nome_cliente"`
	CNPJCliente      string              `json:"cnpj_cliente"`
	ValorTotal       decimal.NullDecimal `json:"valor_total"`
	QtdItens         int                 `json:"qtd_itens"`
	Status           string              `json:"status"`
	DataEmissao      time.Time           `json:"data_emissao"`
	DataFaturamento  *time.Time          `json:"data_faturamento"`
	DataCancelamento *time.Time          `json:"data_cancelamento"`
}

// ConsultaClienteResponse resolução de identificador: o primeiro cliente
// localizado (ou null) e a lista completa de pedidos, mais recentes primeiro.
type ConsultaClienteResponse struct {
	Cliente *ClienteDTO `json:"cliente"`
	Pedidos []PedidoDTO `json:"pedidos"`
}

// MovimentoDTO movimento financeiro na resposta.
type MovimentoDTO struct {
	ID             int64               `json:"id"`
	NomeCliente    string              `json:"nome_cliente"`
	CNPJCliente    string              `json:"cnpj_cliente"`
	Tipo           string              `json:"tipo"`
	Valor          decimal.NullDecimal `json:"valor"`
	DataMovimento  time.Time           `json:"data_movimento"`
	FormaPagamento string              `json:"forma_pagamento"`
	Status         string              `json:"status"`
}

// TotaisFinanceirosDTO totais derivados dos movimentos do cliente.
// saldo = total_entradas - total_saidas, sempre.
type TotaisFinanceirosDTO struct {
	TotalEntradas decimal.Decimal `json:"total_entradas"`
	TotalSaidas   decimal.Decimal `json:"total_saidas"`
	Saldo         decimal.Decimal `json:"saldo"`
}

// ConsultaFinanceiraResponse movimentos do cliente com os totais.
type ConsultaFinanceiraResponse struct {
	Movimentos []MovimentoDTO       `json:"movimentos"`
	Totais     TotaisFinanceirosDTO `json:"totais"`
}

// HistoricoProdutoDTO linha do histórico de compras por produto.
// Datas já formatadas para exibição (dd/mm/aaaa).
type HistoricoProdutoDTO struct {
	CodigoProduto    string          `json:"codigo_produto"`
	DescricaoProduto string          `json:"descricao_produto"`
	TotalPedidos     int             `json:"total_pedidos"`
	QuantidadeTotal  decimal.Decimal `json:"quantidade_total"`
	PrimeiraCompra   string          `json:"primeira_compra"`
	UltimaCompra     string          `json:"ultima_compra"`
}
