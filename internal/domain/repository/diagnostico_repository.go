package repository

import (
	"context"
	"time"

	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PedidoSimilar candidato retornado pela busca de pedidos parecidos com a
// referência informada (a referência aparece como substring em uma das
// chaves). Só entram candidatos com pelo menos um item.
type PedidoSimilar struct {
	NumeroPedido string
	Referencia   string
	NomeCliente  string
	ValorTotal   decimal.NullDecimal
	DataEmissao  time.Time
	TotalItens   int
}

// DiagnosticoDados resultado bruto da coleta sequencial do diagnóstico:
// pedido localizado (ou nil), a chave que o localizou, itens e candidatos.
type DiagnosticoDados struct {
	Pedido     *entity.Pedido
	ChaveUsada string
	Itens      []entity.ItemPedido
	Similares  []PedidoSimilar
}

// DiagnosticoRepository coleta os dados do diagnóstico de pedido em uma
// única sequência de consultas sobre a mesma conexão: busca pelo pedido
// (chaves candidatas em ordem, primeira que acertar vence), itens do pedido
// e busca de similares. Pedido não encontrado encerra a coleta; com pedido
// encontrado a busca de similares roda mesmo assim — a chave certa pode
// apontar para o pedido errado.
type DiagnosticoRepository interface {
	Coletar(ctx context.Context, referencia string, limiteSimilares int) (*DiagnosticoDados, error)
}
