package repository

import (
	"context"
	"time"

	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/entity"
)

// PedidoFiltro especificação tipada de filtros para listagem de pedidos.
// Cada campo é um predicado opcional; o compilador de consultas em
// infrastructure/postgres monta o WHERE parametrizado a partir dele.
type PedidoFiltro struct {
	NomeCliente string     // busca parcial, vazio = sem filtro
	DataEmissao *time.Time // igualdade por dia, nil = sem filtro
	OrdenarPor  string     // coluna de ordenação, validada contra allow-list
}

// PedidoRepository consultas de leitura sobre pedidos. Toda listagem retorna
// ordenada por data de emissão decrescente, salvo ordenação explícita.
type PedidoRepository interface {
	BuscarPorCNPJ(ctx context.Context, digitos string) ([]*entity.Pedido, error)
	BuscarPorTexto(ctx context.Context, texto string) ([]*entity.Pedido, error)
	Listar(ctx context.Context, filtro PedidoFiltro) ([]*entity.Pedido, error)
}
