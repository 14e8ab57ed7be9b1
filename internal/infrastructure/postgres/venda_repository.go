package postgres

import (
	"context"
	"fmt"

	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/entity"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/repository"
)

var _ repository.VendaRepository = (*VendaRepo)(nil)

// VendaRepo implementação de VendaRepository sobre PostgreSQL.
//
// O join pedido/venda aceita as duas chaves do pedido (numero_pedido e
// referencia): subsistemas diferentes gravaram vendas apontando para formas
// diferentes do mesmo pedido.
type VendaRepo struct {
	q Querier
}

// NewVendaRepository constrói o adaptador. Aceita pool ou conexão (Querier).
func NewVendaRepository(q Querier) *VendaRepo {
	return &VendaRepo{q: q}
}

const consultaHistoricoBase = `
		SELECT v.numero_pedido, v.codigo_produto, v.descricao_produto, v.quantidade, p.data_emissao
		FROM vendas_produtos v
		JOIN pedidos p
		  ON p.numero_pedido = v.numero_pedido OR p.referencia = v.numero_pedido
		WHERE `

// HistoricoPorCNPJ linhas de venda dos pedidos do cliente (CNPJ canônico).
func (r *VendaRepo) HistoricoPorCNPJ(ctx context.Context, digitos string) ([]entity.VendaProduto, error) {
	query := consultaHistoricoBase + exprCNPJCanonico("p.cnpj_cliente") + ` = $1
		ORDER BY p.data_emissao DESC`
	return r.buscar(ctx, query, digitos)
}

// HistoricoPorTexto linhas de venda dos pedidos localizados por busca parcial.
func (r *VendaRepo) HistoricoPorTexto(ctx context.Context, texto string) ([]entity.VendaProduto, error) {
	query := consultaHistoricoBase + `(p.nome_cliente ILIKE $1 OR p.cnpj_cliente ILIKE $1)
		ORDER BY p.data_emissao DESC`
	return r.buscar(ctx, query, padraoParcial(texto))
}

func (r *VendaRepo) buscar(ctx context.Context, query string, arg any) ([]entity.VendaProduto, error) {
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("historico de vendas: %w", err)
	}
	defer rows.Close()

	var list []entity.VendaProduto
	for rows.Next() {
		var v entity.VendaProduto
		if err := rows.Scan(
			&v.NumeroPedido, &v.CodigoProduto, &v.DescricaoProduto, &v.Quantidade, &v.DataEmissao,
		); err != nil {
			return nil, fmt.Errorf("scan venda: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
