package postgres

import (
	"context"
	"fmt"

	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/entity"
	"github.com/ViniciusNNascimento/Sistema-de-Consulta/internal/domain/repository"
)

var _ repository.MovimentoRepository = (*MovimentoRepo)(nil)

const colunasMovimento = `id, nome_cliente, cnpj_cliente, tipo, valor, data_movimento, forma_pagamento, status`

// MovimentoRepo implementação de MovimentoRepository sobre PostgreSQL.
type MovimentoRepo struct {
	q Querier
}

// NewMovimentoRepository constrói o adaptador. Aceita pool ou conexão (Querier).
func NewMovimentoRepository(q Querier) *MovimentoRepo {
	return &MovimentoRepo{q: q}
}

// BuscarPorCNPJ movimentos do cliente pelo CNPJ canônico, mais recentes primeiro.
func (r *MovimentoRepo) BuscarPorCNPJ(ctx context.Context, digitos string) ([]*entity.MovimentoFinanceiro, error) {
	query := `
		SELECT ` + colunasMovimento + `
		FROM movimentos_financeiros
		WHERE ` + exprCNPJCanonico("cnpj_cliente") + ` = $1
		ORDER BY data_movimento DESC`
	return r.buscar(ctx, query, digitos)
}

// BuscarPorTexto movimentos por busca parcial no nome ou CNPJ desnormalizados.
func (r *MovimentoRepo) BuscarPorTexto(ctx context.Context, texto string) ([]*entity.MovimentoFinanceiro, error) {
	query := `
		SELECT ` + colunasMovimento + `
		FROM movimentos_financeiros
		WHERE nome_cliente ILIKE $1 OR cnpj_cliente ILIKE $1
		ORDER BY data_movimento DESC`
	return r.buscar(ctx, query, padraoParcial(texto))
}

func (r *MovimentoRepo) buscar(ctx context.Context, query string, arg any) ([]*entity.MovimentoFinanceiro, error) {
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("buscar movimentos: %w", err)
	}
	defer rows.Close()

	var list []*entity.MovimentoFinanceiro
	for rows.Next() {
		var m entity.MovimentoFinanceiro
		if err := rows.Scan(
			&m.ID, &m.NomeCliente, &m.CNPJCliente, &m.Tipo, &m.Valor,
			&m.DataMovimento, &m.FormaPagamento, &m.Status,
		); err != nil {
			return nil, fmt.Errorf("scan movimento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
