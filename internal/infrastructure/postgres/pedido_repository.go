package postgres

import (
	"context"
	"fmt"

	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/entity"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

const colunasPedido = `numero_pedido, referencia, nome_cliente, cnpj_cliente, valor_total, qtd_itens,
		status, faturado, nota_cancelada, data_emissao, data_faturamento, data_cancelamento, motivo_cancelamento`

// PedidoRepo implementação de PedidoRepository sobre PostgreSQL.
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository constrói o adaptador. Aceita pool ou conexão (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// BuscarPorCNPJ igualdade exata sobre o CNPJ desnormalizado do pedido,
// normalizado dos dois lados. Mais recentes primeiro.
func (r *PedidoRepo) BuscarPorCNPJ(ctx context.Context, digitos string) ([]*entity.Pedido, error) {
	query := `
		SELECT ` + colunasPedido + `
		FROM pedidos
		WHERE ` + exprCNPJCanonico("cnpj_cliente") + ` = $1
		ORDER BY data_emissao DESC`
	return r.buscar(ctx, query, digitos)
}

// BuscarPorTexto busca parcial no nome ou CNPJ desnormalizados do pedido.
// Mais recentes primeiro.
func (r *PedidoRepo) BuscarPorTexto(ctx context.Context, texto string) ([]*entity.Pedido, error) {
	query := `
		SELECT ` + colunasPedido + `
		FROM pedidos
		WHERE nome_cliente ILIKE $1 OR cnpj_cliente ILIKE $1
		ORDER BY data_emissao DESC`
	return r.buscar(ctx, query, padraoParcial(texto))
}

// Listar compila o filtro tipado em WHERE parametrizado e lista os pedidos.
func (r *PedidoRepo) Listar(ctx context.Context, filtro repository.PedidoFiltro) ([]*entity.Pedido, error) {
	where, orderBy, args, err := compilarFiltroPedidos(filtro)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + colunasPedido + ` FROM pedidos` + where + ` ORDER BY ` + orderBy

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar pedidos: %w", err)
	}
	defer rows.Close()
	return scanPedidos(rows)
}

func (r *PedidoRepo) buscar(ctx context.Context, query string, arg any) ([]*entity.Pedido, error) {
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("buscar pedidos: %w", err)
	}
	defer rows.Close()
	return scanPedidos(rows)
}
